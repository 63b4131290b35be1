// Package recent keeps the most recent name pairs a client looked up.
// Storage is best effort: failures are logged and never reach the caller.
package recent

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/palemoky/name-chemi/internal/database"
	"github.com/palemoky/name-chemi/internal/logger"
)

// StorageKey is the key the list is stored under.
const StorageKey = "name-chemi-recent"

// DefaultLimit is the number of searches kept when no limit is configured.
const DefaultLimit = 5

// Search is one remembered lookup, with names in the order they were entered.
type Search struct {
	Name1     string `json:"name1"`
	Name2     string `json:"name2"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// Store persists the recent search list in the key-value table.
type Store struct {
	repo  database.RepositoryInterface
	limit int
	now   func() time.Time
	log   *zap.Logger

	mu sync.Mutex
}

// NewStore creates a store keeping at most limit searches.
func NewStore(repo database.RepositoryInterface, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		repo:  repo,
		limit: limit,
		now:   time.Now,
		log:   logger.Named("recent"),
	}
}

// SetClock replaces the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// List returns the stored searches, newest first. Any failure yields an empty list.
func (s *Store) List(ctx context.Context) []Search {
	list, err := s.load(ctx)
	if err != nil {
		s.log.Warn("Failed to load recent searches", zap.Error(err))
		return []Search{}
	}
	return list
}

// Add moves the pair to the front of the list, dropping an identical older entry
// and trimming the list to the limit.
func (s *Store) Add(ctx context.Context, name1, name2 string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		s.log.Warn("Failed to load recent searches, starting fresh", zap.Error(err))
		list = nil
	}

	updated := make([]Search, 0, s.limit)
	updated = append(updated, Search{Name1: name1, Name2: name2, Timestamp: s.now().UnixMilli()})
	for _, r := range list {
		if r.Name1 == name1 && r.Name2 == name2 {
			continue
		}
		if len(updated) == s.limit {
			break
		}
		updated = append(updated, r)
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		s.log.Warn("Failed to encode recent searches", zap.Error(err))
		return
	}
	if err := s.repo.Set(ctx, StorageKey, datatypes.JSON(raw)); err != nil {
		s.log.Warn("Failed to save recent searches", zap.Error(err))
	}
}

// Clear forgets every stored search.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, StorageKey); err != nil {
		s.log.Warn("Failed to clear recent searches", zap.Error(err))
	}
}

func (s *Store) load(ctx context.Context) ([]Search, error) {
	raw, err := s.repo.Get(ctx, StorageKey)
	if errors.Is(err, database.ErrNotFound) {
		return []Search{}, nil
	}
	if err != nil {
		return nil, err
	}

	var list []Search
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []Search{}
	}
	if len(list) > s.limit {
		list = list[:s.limit]
	}
	return list, nil
}
