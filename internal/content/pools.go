// Package content holds the static text and emoji tables results are drawn from.
// Tables are loaded once at startup and never modified afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	MinLevel   = 1
	MaxLevel   = 5
	DaysInWeek = 7
)

// ErrInvalidPools is returned when a content file is missing a pool or holds malformed entries.
var ErrInvalidPools = errors.New("invalid content pools")

//go:embed pools.yaml
var defaultPoolsYAML []byte

// EmojiPair is the two emoji shown side by side for a pair of names.
type EmojiPair [2]string

// LevelPools holds the candidates for a single attraction level.
type LevelPools struct {
	EmojiPairs    []EmojiPair
	OneLiners     []string
	DateScenarios []string
}

// Pools is the full, validated content table.
type Pools struct {
	levels         [MaxLevel + 1]LevelPools
	weeklyMessages []string
	weeklyEmojis   []EmojiPair
	dayLabels      []string
}

type poolsFile struct {
	DayLabels []string          `yaml:"day_labels"`
	Levels    map[int]levelFile `yaml:"levels"`
	Weekly    weeklyFile        `yaml:"weekly"`
}

type levelFile struct {
	EmojiPairs    [][]string `yaml:"emoji_pairs"`
	OneLiners     []string   `yaml:"one_liners"`
	DateScenarios []string   `yaml:"date_scenarios"`
}

type weeklyFile struct {
	Messages   []string   `yaml:"messages"`
	EmojiPairs [][]string `yaml:"emoji_pairs"`
}

// Load parses and validates a YAML content table.
func Load(data []byte) (*Pools, error) {
	var f poolsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse content pools: %w", err)
	}

	p := &Pools{}
	for level := MinLevel; level <= MaxLevel; level++ {
		lf, ok := f.Levels[level]
		if !ok {
			return nil, fmt.Errorf("%w: level %d is missing", ErrInvalidPools, level)
		}

		pairs, err := toEmojiPairs(lf.EmojiPairs)
		if err != nil {
			return nil, fmt.Errorf("level %d emoji_pairs: %w", level, err)
		}

		lp := LevelPools{
			EmojiPairs:    pairs,
			OneLiners:     lf.OneLiners,
			DateScenarios: lf.DateScenarios,
		}
		if err := checkNonEmpty(fmt.Sprintf("level %d", level), lp); err != nil {
			return nil, err
		}
		p.levels[level] = lp
	}

	for level := range f.Levels {
		if level < MinLevel || level > MaxLevel {
			return nil, fmt.Errorf("%w: unknown level %d", ErrInvalidPools, level)
		}
	}

	weeklyEmojis, err := toEmojiPairs(f.Weekly.EmojiPairs)
	if err != nil {
		return nil, fmt.Errorf("weekly emoji_pairs: %w", err)
	}
	if len(weeklyEmojis) == 0 {
		return nil, fmt.Errorf("%w: weekly emoji_pairs is empty", ErrInvalidPools)
	}
	if err := checkStrings("weekly messages", f.Weekly.Messages); err != nil {
		return nil, err
	}
	if len(f.DayLabels) != DaysInWeek {
		return nil, fmt.Errorf("%w: day_labels needs %d entries, got %d", ErrInvalidPools, DaysInWeek, len(f.DayLabels))
	}
	if err := checkStrings("day_labels", f.DayLabels); err != nil {
		return nil, err
	}

	p.weeklyMessages = f.Weekly.Messages
	p.weeklyEmojis = weeklyEmojis
	p.dayLabels = f.DayLabels
	return p, nil
}

// LoadFile reads and validates a content table from disk.
func LoadFile(path string) (*Pools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Load(data)
}

// Open loads the pools from path, or the embedded table when path is empty.
func Open(path string) (*Pools, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

var (
	defaultOnce  sync.Once
	defaultPools *Pools
	defaultErr   error
)

// Default returns the embedded content table.
func Default() (*Pools, error) {
	defaultOnce.Do(func() {
		defaultPools, defaultErr = Load(defaultPoolsYAML)
	})
	return defaultPools, defaultErr
}

// MustDefault is like Default but panics if the embedded table is invalid.
func MustDefault() *Pools {
	p, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded content pools: %v", err))
	}
	return p
}

// Level returns the pools of the given level (1-5).
func (p *Pools) Level(level int) LevelPools {
	if level < MinLevel || level > MaxLevel {
		panic(fmt.Sprintf("content: level %d out of range", level))
	}
	return p.levels[level]
}

// WeeklyMessages returns the shared weekly forecast messages.
func (p *Pools) WeeklyMessages() []string { return p.weeklyMessages }

// WeeklyEmojis returns the shared weekly forecast emoji pairs.
func (p *Pools) WeeklyEmojis() []EmojiPair { return p.weeklyEmojis }

// DayLabels returns the Monday..Sunday labels.
func (p *Pools) DayLabels() []string { return p.dayLabels }

func toEmojiPairs(raw [][]string) ([]EmojiPair, error) {
	pairs := make([]EmojiPair, 0, len(raw))
	for i, r := range raw {
		if len(r) != 2 || r[0] == "" || r[1] == "" {
			return nil, fmt.Errorf("%w: entry %d must hold exactly two emoji", ErrInvalidPools, i)
		}
		pairs = append(pairs, EmojiPair{r[0], r[1]})
	}
	return pairs, nil
}

func checkNonEmpty(name string, lp LevelPools) error {
	if len(lp.EmojiPairs) == 0 {
		return fmt.Errorf("%w: %s emoji_pairs is empty", ErrInvalidPools, name)
	}
	if err := checkStrings(name+" one_liners", lp.OneLiners); err != nil {
		return err
	}
	return checkStrings(name+" date_scenarios", lp.DateScenarios)
}

func checkStrings(name string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidPools, name)
	}
	for i, v := range values {
		if v == "" {
			return fmt.Errorf("%w: %s entry %d is blank", ErrInvalidPools, name, i)
		}
	}
	return nil
}
