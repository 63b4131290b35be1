package database

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupBenchDB creates an in-memory database for benchmarking
func setupBenchDB(b *testing.B) *Repository {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		b.Fatal(err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		b.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := NewDBFromGorm(gormDB)
	if err := db.Migrate(); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = db.Close() })

	return NewRepository(db)
}

var benchValue = datatypes.JSON(`[{"name1":"민준","name2":"서연","timestamp":1718000000000}]`)

// BenchmarkRepositoryGet benchmarks single key reads
func BenchmarkRepositoryGet(b *testing.B) {
	repo := setupBenchDB(b)
	ctx := context.Background()
	if err := repo.Set(ctx, "recent", benchValue); err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		_, _ = repo.Get(ctx, "recent")
	}
}

// BenchmarkRepositorySet benchmarks upserts over a small key space
func BenchmarkRepositorySet(b *testing.B) {
	repo := setupBenchDB(b)
	ctx := context.Background()

	i := 0
	for b.Loop() {
		_ = repo.Set(ctx, fmt.Sprintf("key-%d", i%16), benchValue)
		i++
	}
}

// BenchmarkCachedRepositoryGet benchmarks reads served from the cache
func BenchmarkCachedRepositoryGet(b *testing.B) {
	cached := NewCachedRepository(setupBenchDB(b))
	ctx := context.Background()
	if err := cached.Set(ctx, "recent", benchValue); err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		_, _ = cached.Get(ctx, "recent")
	}
}
