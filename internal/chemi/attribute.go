package chemi

// Attribute is one of the five chemistry axes.
type Attribute string

const (
	AttrTalk      Attribute = "talk"
	AttrHumor     Attribute = "humor"
	AttrEmotion   Attribute = "emotion"
	AttrStability Attribute = "stability"
	AttrPassion   Attribute = "passion"
)

// Attributes lists every axis in its fixed enumeration order.
var Attributes = [...]Attribute{AttrTalk, AttrHumor, AttrEmotion, AttrStability, AttrPassion}

var attributeLabels = map[Attribute]string{
	AttrTalk:      "대화력",
	AttrHumor:     "유머",
	AttrEmotion:   "감성",
	AttrStability: "안정감",
	AttrPassion:   "열정",
}

// Label returns the display label of the attribute.
func (a Attribute) Label() string {
	return attributeLabels[a]
}

// AttributeScore pairs an attribute with its score.
type AttributeScore struct {
	Attribute Attribute `json:"attribute"`
	Score     int       `json:"score"`
}

// StrongestAttribute returns the highest scoring attribute.
// Ties go to the attribute that comes first in Attributes.
func StrongestAttribute(scores map[Attribute]int) AttributeScore {
	best := AttributeScore{Attribute: AttrTalk, Score: -1}
	for _, attr := range Attributes {
		score, ok := scores[attr]
		if ok && score > best.Score {
			best = AttributeScore{Attribute: attr, Score: score}
		}
	}
	return best
}

// WeakestAttribute returns the lowest scoring attribute.
// Ties go to the attribute that comes first in Attributes.
func WeakestAttribute(scores map[Attribute]int) AttributeScore {
	worst := AttributeScore{Attribute: AttrTalk, Score: 101}
	for _, attr := range Attributes {
		score, ok := scores[attr]
		if ok && score < worst.Score {
			worst = AttributeScore{Attribute: attr, Score: score}
		}
	}
	return worst
}
