package chemi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{100, LevelDestiny},
		{85, LevelDestiny},
		{84, LevelStrong},
		{70, LevelStrong},
		{69, LevelFlutter},
		{50, LevelFlutter},
		{49, LevelLukewarm},
		{30, LevelLukewarm},
		{29, LevelParallel},
		{0, LevelParallel},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForScore(tt.score))
		})
	}
}

func TestLevelInfo(t *testing.T) {
	assert.Equal(t, "운명의 끌림", LevelDestiny.Info().Name)
	assert.Equal(t, "#FF1744", LevelDestiny.Info().Color)
	assert.Equal(t, "평행선", LevelParallel.Info().Name)
	assert.Panics(t, func() { Level(0).Info() })
	assert.Panics(t, func() { Level(6).Info() })

	levels := Levels()
	require.Len(t, levels, 5)
	assert.Equal(t, LevelDestiny, levels[0].Level)
	assert.Equal(t, LevelParallel, levels[4].Level)
}

func TestBlend(t *testing.T) {
	tests := []struct {
		total, independent, want int
	}{
		{1, 56, 34},
		{1, 46, 28}, // 27.999999999999996
		{1, 37, 23}, // 22.599999999999998
		{1, 81, 49},
		{0, 0, 0},
		{100, 100, 100},
		{5, 0, 2},
		{0, 5, 3},
		{25, 0, 10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.independent), func(t *testing.T) {
			assert.Equal(t, tt.want, blend(tt.total, tt.independent))
		})
	}
}

func TestDeriveScoresSnapshot(t *testing.T) {
	scores := DeriveScores(Pair{"민준", "서연"}, "2024-06-10")

	assert.Equal(t, "민준+서연@2024-06-10", scores.Seed)
	assert.Equal(t, uint32(1242478721), scores.BaseHash)
	assert.Equal(t, 1, scores.Total)
	assert.Equal(t, map[Attribute]int{
		AttrTalk:      34,
		AttrHumor:     28,
		AttrEmotion:   23,
		AttrStability: 49,
		AttrPassion:   22,
	}, scores.Attributes)
}

func TestDeriveScoresMixedScript(t *testing.T) {
	names, _ := Normalize("Alex", "서아")
	require.Equal(t, Pair{"서아", "Alex"}, names)

	scores := DeriveScores(names, "2024-06-10")
	assert.Equal(t, "서아+Alex@2024-06-10", scores.Seed)
	assert.Equal(t, uint32(3054612771), scores.BaseHash)
	assert.Equal(t, 0, scores.Total)
	assert.Equal(t, LevelParallel, LevelForScore(scores.Total))
}

func TestDeriveScoresRanges(t *testing.T) {
	names := []string{"민준", "서연", "지우", "하준", "Alex", "Sam", "도윤", "서아"}
	dates := []string{"2024-01-01", "2024-02-29", "2024-06-10", "2025-12-31"}

	for i := range names {
		for j := i; j < len(names); j++ {
			for _, d := range dates {
				scores := DeriveScores(Pair{names[i], names[j]}, d)
				assert.GreaterOrEqual(t, scores.Total, 0)
				assert.LessOrEqual(t, scores.Total, 100)
				require.Len(t, scores.Attributes, len(Attributes))
				for attr, s := range scores.Attributes {
					assert.GreaterOrEqual(t, s, 10, "attribute %s", attr)
					assert.LessOrEqual(t, s, 95, "attribute %s", attr)
					assert.True(t, LevelForScore(s).Valid())
				}
			}
		}
	}
}

func TestDeriveScoresDateSensitive(t *testing.T) {
	pair := Pair{"민준", "서연"}
	assert.Equal(t, 37, DeriveScores(pair, "2024-01-01").Total)
	assert.Equal(t, 15, DeriveScores(pair, "2024-01-02").Total)
	assert.Equal(t, 94, DeriveScores(pair, "2024-01-03").Total)
}

func TestStrongestWeakestAttribute(t *testing.T) {
	scores := map[Attribute]int{
		AttrTalk:      80,
		AttrHumor:     40,
		AttrEmotion:   60,
		AttrStability: 20,
		AttrPassion:   90,
	}

	assert.Equal(t, AttributeScore{Attribute: AttrPassion, Score: 90}, StrongestAttribute(scores))
	assert.Equal(t, AttributeScore{Attribute: AttrStability, Score: 20}, WeakestAttribute(scores))

	t.Run("ties resolve in enumeration order", func(t *testing.T) {
		tied := map[Attribute]int{
			AttrTalk:      50,
			AttrHumor:     70,
			AttrEmotion:   30,
			AttrStability: 70,
			AttrPassion:   30,
		}
		assert.Equal(t, AttrHumor, StrongestAttribute(tied).Attribute)
		assert.Equal(t, AttrEmotion, WeakestAttribute(tied).Attribute)
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "대화력", AttrTalk.Label())
		assert.Equal(t, "열정", AttrPassion.Label())
	})
}
