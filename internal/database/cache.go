package database

import (
	"context"
	"sync"

	"gorm.io/datatypes"
)

// CachedRepository wraps Repository with a read-through cache of values
type CachedRepository struct {
	*Repository

	values   map[string]datatypes.JSON
	gens     map[string]uint64 // bumped by every write; a miss only fills an unchanged key
	valuesMu sync.RWMutex

	hits   int
	misses int
}

// NewCachedRepository creates a new cached repository
func NewCachedRepository(repo *Repository) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		values:     make(map[string]datatypes.JSON),
		gens:       make(map[string]uint64),
	}
}

// Get returns the cached value for key, loading it from the database on a miss
func (r *CachedRepository) Get(ctx context.Context, key string) (datatypes.JSON, error) {
	r.valuesMu.RLock()
	if v, ok := r.values[key]; ok {
		r.valuesMu.RUnlock()
		r.count(true)
		return v, nil
	}
	gen := r.gens[key]
	r.valuesMu.RUnlock()
	r.count(false)

	v, err := r.Repository.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	r.valuesMu.Lock()
	if r.gens[key] == gen {
		r.values[key] = v
	}
	r.valuesMu.Unlock()

	return v, nil
}

// Set writes through to the database and refreshes the cache
func (r *CachedRepository) Set(ctx context.Context, key string, value datatypes.JSON) error {
	if err := r.Repository.Set(ctx, key, value); err != nil {
		r.invalidate(key)
		return err
	}

	r.valuesMu.Lock()
	r.gens[key]++
	r.values[key] = value
	r.valuesMu.Unlock()

	return nil
}

// Delete removes key from the database and the cache
func (r *CachedRepository) Delete(ctx context.Context, key string) error {
	defer r.invalidate(key)
	return r.Repository.Delete(ctx, key)
}

// ClearCache clears all cached values
func (r *CachedRepository) ClearCache() {
	r.valuesMu.Lock()
	r.values = make(map[string]datatypes.JSON)
	r.valuesMu.Unlock()
}

// GetCacheStats returns statistics about cache usage
func (r *CachedRepository) GetCacheStats() map[string]int {
	r.valuesMu.RLock()
	defer r.valuesMu.RUnlock()

	return map[string]int{
		"entries": len(r.values),
		"hits":    r.hits,
		"misses":  r.misses,
	}
}

func (r *CachedRepository) count(hit bool) {
	r.valuesMu.Lock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
	r.valuesMu.Unlock()
}

func (r *CachedRepository) invalidate(key string) {
	r.valuesMu.Lock()
	r.gens[key]++
	delete(r.values, key)
	r.valuesMu.Unlock()
}
