package chemi

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators keep internal buffers and must not be shared between goroutines.
var collators = sync.Pool{
	New: func() any {
		return collate.New(language.Korean)
	},
}

// Pair holds two names in a fixed order.
type Pair [2]string

// Script classes of a name's first character. Hangul sorts ahead of every
// other script, as in ICU's Korean ordering; digits and symbols are left to
// the collator.
const (
	classOther = iota
	classHangul
	classLetter
)

func scriptClass(name string) int {
	r, _ := utf8.DecodeRuneInString(name)
	switch {
	case unicode.Is(unicode.Hangul, r):
		return classHangul
	case unicode.IsLetter(r):
		return classLetter
	default:
		return classOther
	}
}

// CompareNames orders two names using Korean collation, with names starting
// in Hangul placed before names starting in any other script.
// Names that collate equal but differ are ordered by their bytes.
func CompareNames(a, b string) int {
	ca, cb := scriptClass(a), scriptClass(b)
	if ca != cb && ca != classOther && cb != classOther {
		if ca == classHangul {
			return -1
		}
		return 1
	}

	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)

	if cmp := c.CompareString(a, b); cmp != 0 {
		return cmp
	}
	return strings.Compare(a, b)
}

// Normalize trims both names and returns them as an order-independent pair
// alongside the trimmed names in the order they were given.
func Normalize(nameA, nameB string) (sorted, original Pair) {
	a := strings.TrimSpace(nameA)
	b := strings.TrimSpace(nameB)
	original = Pair{a, b}

	if CompareNames(a, b) <= 0 {
		return Pair{a, b}, original
	}
	return Pair{b, a}, original
}
