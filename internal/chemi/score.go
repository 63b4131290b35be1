package chemi

import "math"

const (
	totalWeight       = 0.4
	independentWeight = 0.6

	minAttributeScore = 10
	maxAttributeScore = 95

	offsetTotal = 0
)

// Seed builds the string every per-day draw is derived from.
func Seed(names Pair, dateKey string) string {
	return names[0] + "+" + names[1] + "@" + dateKey
}

// Scores is the numeric outcome of a single day.
type Scores struct {
	Seed       string
	BaseHash   uint32
	Total      int
	Attributes map[Attribute]int
}

// DeriveScores computes the total score (0-100) and the five attribute scores
// (10-95) for a normalized pair on the given date key.
func DeriveScores(names Pair, dateKey string) Scores {
	seed := Seed(names, dateKey)
	base := Hash(seed)
	total := HashToRange(base, 100, offsetTotal)

	attrs := make(map[Attribute]int, len(Attributes))
	for _, attr := range Attributes {
		independent := int(Hash(seed+":attr:"+string(attr)) % 101)
		attrs[attr] = clamp(blend(total, independent), minAttributeScore, maxAttributeScore)
	}

	return Scores{
		Seed:       seed,
		BaseHash:   base,
		Total:      total,
		Attributes: attrs,
	}
}

// blend rounds total*0.4 + independent*0.6 with halves going up. Both inputs
// are non-negative, so math.Round matches. The explicit conversions round each
// product so the compiler cannot fuse them into a multiply-add.
func blend(total, independent int) int {
	a := float64(float64(total) * totalWeight)
	b := float64(float64(independent) * independentWeight)
	return int(math.Round(a + b))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
