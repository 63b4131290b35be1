package helpers

import (
	"strings"
	"unicode/utf16"
)

// NameRules bounds the length of a name after trimming, counted in UTF-16 code
// units the way browser input fields count (an emoji outside the BMP counts as 2)
type NameRules struct {
	Min int
	Max int
}

// DefaultNameRules allows 2 to 10 characters
var DefaultNameRules = NameRules{Min: 2, Max: 10}

// NewNameRules creates rules, falling back to the defaults for non-positive bounds
func NewNameRules(min, max int) NameRules {
	rules := DefaultNameRules
	if min > 0 {
		rules.Min = min
	}
	if max >= rules.Min {
		rules.Max = max
	} else if rules.Max < rules.Min {
		rules.Max = rules.Min
	}
	return rules
}

// Valid reports whether name satisfies the rules
func (r NameRules) Valid(name string) bool {
	n := NameLength(name)
	return n >= r.Min && n <= r.Max
}

// NameLength returns the length of the trimmed name in UTF-16 code units
func NameLength(name string) int {
	n := 0
	for _, r := range strings.TrimSpace(name) {
		n += utf16.RuneLen(r)
	}
	return n
}

// FirstInvalid returns the index of the first name that breaks the rules, or -1
func (r NameRules) FirstInvalid(names ...string) int {
	for i, name := range names {
		if !r.Valid(name) {
			return i
		}
	}
	return -1
}
