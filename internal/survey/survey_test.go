package survey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/name-chemi/internal/chemi"
	"github.com/palemoky/name-chemi/internal/database"
	"github.com/palemoky/name-chemi/internal/testutil"
)

var surveyNames = []string{"민준", "서연", "지호", "하은", "도윤", "서아", "Alex", "Mina"}

func TestGetBufferSizes(t *testing.T) {
	workBuf, resultBuf := getBufferSizes()

	assert.Greater(t, workBuf, 0, "workBuffer should be positive")
	assert.Greater(t, resultBuf, 0, "resultBuffer should be positive")
	assert.LessOrEqual(t, workBuf, resultBuf)
}

func TestNewSurveyor(t *testing.T) {
	engine := testutil.SetupTestEngine(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name        string
		workers     int
		wantDefault bool
	}{
		{name: "default workers", workers: 0, wantDefault: true},
		{name: "negative workers", workers: -3, wantDefault: true},
		{name: "specific workers", workers: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurveyor(engine, tt.workers)
			if tt.wantDefault {
				assert.Greater(t, s.workers, 0)
			} else {
				assert.Equal(t, tt.workers, s.workers)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []Job
	}{
		{name: "empty", names: nil, want: []Job{}},
		{name: "single", names: []string{"민준"}, want: []Job{}},
		{
			name:  "three names",
			names: []string{"민준", "서연", "지호"},
			want: []Job{
				{"민준", "서연"},
				{"민준", "지호"},
				{"서연", "지호"},
			},
		},
		{
			name:  "blanks and repeats skipped",
			names: []string{" 민준 ", "", "민준", "서연", "   "},
			want:  []Job{{"민준", "서연"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pairs(tt.names))
		})
	}
}

func TestSurveyor_Run(t *testing.T) {
	engine := testutil.SetupTestEngine(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	s := NewSurveyor(engine, 3)

	report, err := s.Run(context.Background(), surveyNames, "")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", report.Date)
	assert.Equal(t, len(surveyNames), report.Names)
	assert.Equal(t, 28, report.Pairs)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.Errors)

	var counted int
	for _, info := range chemi.Levels() {
		count, ok := report.Levels[info.Level]
		assert.True(t, ok, "level %d missing from report", info.Level)
		counted += count
	}
	assert.Equal(t, report.Pairs, counted)

	assert.GreaterOrEqual(t, report.ScoreMin, 0)
	assert.LessOrEqual(t, report.ScoreMax, 100)
	assert.LessOrEqual(t, report.ScoreMin, report.ScoreMax)
	assert.GreaterOrEqual(t, report.ScoreMean, float64(report.ScoreMin))
	assert.LessOrEqual(t, report.ScoreMean, float64(report.ScoreMax))

	require.Len(t, report.AttributeMeans, len(chemi.Attributes))
	for attr, mean := range report.AttributeMeans {
		assert.GreaterOrEqual(t, mean, 10.0, attr)
		assert.LessOrEqual(t, mean, 95.0, attr)
	}
	assert.Greater(t, report.OneLiners, 0)
	assert.Greater(t, report.Scenarios, 0)
}

func TestSurveyor_RunMatchesSequential(t *testing.T) {
	engine := testutil.SetupTestEngine(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	report, err := NewSurveyor(engine, 4).Run(context.Background(), surveyNames, "2024-01-02")
	require.NoError(t, err)

	levels := make(map[chemi.Level]int)
	sum := 0
	for _, job := range Pairs(surveyNames) {
		result, err := engine.Calculate(job.Name1, job.Name2, "2024-01-02")
		require.NoError(t, err)
		levels[result.Level.Level]++
		sum += result.Score
	}

	for level, count := range levels {
		assert.Equal(t, count, report.Levels[level], "level %d", level)
	}
	assert.InDelta(t, float64(sum)/float64(report.Pairs), report.ScoreMean, 1e-9)
}

func TestSurveyor_RunErrors(t *testing.T) {
	engine := testutil.SetupTestEngine(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	s := NewSurveyor(engine, 2)

	t.Run("invalid date", func(t *testing.T) {
		_, err := s.Run(context.Background(), surveyNames, "06/10/2024")
		assert.ErrorIs(t, err, chemi.ErrInvalidDateKey)
	})

	t.Run("too few names", func(t *testing.T) {
		_, err := s.Run(context.Background(), []string{"민준", " 민준", "", "민준"}, "")
		assert.EqualError(t, err, "need at least two distinct names, got 1")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Run(ctx, surveyNames, "")
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSaveAndLoadReport(t *testing.T) {
	_, repo := testutil.SetupTestDB(t)
	ctx := context.Background()

	engine := testutil.SetupTestEngine(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	report, err := NewSurveyor(engine, 2).Run(ctx, surveyNames[:4], "")
	require.NoError(t, err)

	require.NoError(t, SaveReport(ctx, repo, report))

	loaded, err := LoadReport(ctx, repo, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, report.Pairs, loaded.Pairs)
	assert.Equal(t, report.Levels, loaded.Levels)
	assert.Equal(t, report.AttributeMeans, loaded.AttributeMeans)

	_, err = LoadReport(ctx, repo, "2024-06-11")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
