package chemi

import (
	"fmt"
	"time"

	"github.com/palemoky/name-chemi/internal/content"
)

// Result is the full outcome for one pair of names on one date.
type Result struct {
	Names           Pair                    `json:"names"`
	OriginalNames   Pair                    `json:"original_names"`
	Score           int                     `json:"score"`
	Level           LevelInfo               `json:"level"`
	Attributes      map[Attribute]int       `json:"attributes"`
	AttributeLevels map[Attribute]LevelInfo `json:"attribute_levels"`
	EmojiPair       content.EmojiPair       `json:"emoji_pair"`
	OneLiner        string                  `json:"one_liner"`
	DateScenario    string                  `json:"date_scenario"`
	Date            string                  `json:"date"`
}

// Engine computes results against a fixed content table and clock.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	pools *content.Pools
	now   func() time.Time
	loc   *time.Location
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the time zone used to decide the current calendar date.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewEngine creates an engine. A nil pools argument selects the embedded content.
func NewEngine(pools *content.Pools, opts ...Option) *Engine {
	if pools == nil {
		pools = content.MustDefault()
	}
	e := &Engine{
		pools: pools,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Pools returns the content table the engine draws from.
func (e *Engine) Pools() *content.Pools {
	return e.pools
}

// Today returns the current time in the engine's location.
func (e *Engine) Today() time.Time {
	return e.now().In(e.loc)
}

// Calculate derives the result for two names. An empty dateKey means today.
func (e *Engine) Calculate(nameA, nameB, dateKey string) (*Result, error) {
	names, original, err := normalizeInput(nameA, nameB)
	if err != nil {
		return nil, err
	}

	if dateKey == "" {
		dateKey = DateKey(e.Today())
	} else if _, err := ParseDateKey(dateKey); err != nil {
		return nil, err
	}

	scores := DeriveScores(names, dateKey)
	level := LevelForScore(scores.Total)
	pools := e.pools.Level(int(level))

	return assemble(names, original, dateKey, scores, level, pools), nil
}

func assemble(names, original Pair, dateKey string, scores Scores, level Level, pools content.LevelPools) *Result {
	attrLevels := make(map[Attribute]LevelInfo, len(scores.Attributes))
	for attr, score := range scores.Attributes {
		attrLevels[attr] = LevelForScore(score).Info()
	}

	return &Result{
		Names:           names,
		OriginalNames:   original,
		Score:           scores.Total,
		Level:           level.Info(),
		Attributes:      scores.Attributes,
		AttributeLevels: attrLevels,
		EmojiPair:       pick(scores.BaseHash, pools.EmojiPairs, offsetEmoji),
		OneLiner:        pick(scores.BaseHash, pools.OneLiners, offsetOneLiner),
		DateScenario:    pick(scores.BaseHash, pools.DateScenarios, offsetScenario),
		Date:            dateKey,
	}
}

func normalizeInput(nameA, nameB string) (names, original Pair, err error) {
	names, original = Normalize(nameA, nameB)
	if names[0] == "" || names[1] == "" {
		return Pair{}, Pair{}, fmt.Errorf("%w: both names are required", ErrEmptyName)
	}
	return names, original, nil
}
