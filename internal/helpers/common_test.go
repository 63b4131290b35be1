package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNameRules(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     NameRules
	}{
		{"defaults", 0, 0, NameRules{Min: 2, Max: 10}},
		{"custom", 1, 20, NameRules{Min: 1, Max: 20}},
		{"max below min keeps default max", 3, 1, NameRules{Min: 3, Max: 10}},
		{"min above default max", 12, 0, NameRules{Min: 12, Max: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNameRules(tt.min, tt.max))
		})
	}
}

func TestNameRulesValid(t *testing.T) {
	rules := DefaultNameRules

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"two hangul", "민준", true},
		{"single hangul", "준", false},
		{"padded single", "  준  ", false},
		{"ten characters", "가나다라마바사아자차", true},
		{"eleven characters", "가나다라마바사아자차카", false},
		{"latin", "Al", true},
		{"empty", "", false},
		{"astral emoji counts twice", "🧲", true},
		{"nine hangul and an astral emoji", "가나다라마바사아자🧲", false},
		{"eight hangul and an astral emoji", "가나다라마바사아🧲", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Valid(tt.input))
		})
	}
}

func TestNameRulesFirstInvalid(t *testing.T) {
	rules := DefaultNameRules
	assert.Equal(t, -1, rules.FirstInvalid("민준", "서연"))
	assert.Equal(t, 0, rules.FirstInvalid("민", "서연"))
	assert.Equal(t, 1, rules.FirstInvalid("민준", ""))
}

func TestNameLength(t *testing.T) {
	assert.Equal(t, 2, NameLength(" 민준 "))
	assert.Equal(t, 2, NameLength("🧲"))
	assert.Equal(t, 3, NameLength("a🧲"))
	assert.Equal(t, 0, NameLength("   "))
}
