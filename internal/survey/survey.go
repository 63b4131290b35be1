// Package survey runs the engine over every pair of a name list and reports how
// results spread across levels. Content authors use it to check that a pool
// change keeps the distribution sensible.
package survey

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/palemoky/name-chemi/internal/chemi"
	"github.com/palemoky/name-chemi/internal/logger"
)

const (
	// MaxErrorsToCollect bounds the errors kept for the report
	MaxErrorsToCollect = 100

	// SampleErrorCount is the number of errors logged at the end of a run
	SampleErrorCount = 5
)

// getBufferSizes returns channel capacities suited to the machine
func getBufferSizes() (workBuffer, resultBuffer int) {
	cpuCount := runtime.NumCPU()

	switch {
	case cpuCount <= 2:
		return 50, 500
	case cpuCount <= 8:
		return 100, 2000
	default:
		return 300, 5000
	}
}

// Job is one pair of names to evaluate
type Job struct {
	Name1 string
	Name2 string
}

// Report summarises a survey run
type Report struct {
	Date           string                      `json:"date"`
	Names          int                         `json:"names"`
	Pairs          int                         `json:"pairs"`
	Failed         int                         `json:"failed"`
	Levels         map[chemi.Level]int         `json:"levels"`
	ScoreMin       int                         `json:"score_min"`
	ScoreMax       int                         `json:"score_max"`
	ScoreMean      float64                     `json:"score_mean"`
	AttributeMeans map[chemi.Attribute]float64 `json:"attribute_means"`
	OneLiners      int                         `json:"distinct_one_liners"`
	Scenarios      int                         `json:"distinct_date_scenarios"`
	Duration       time.Duration               `json:"duration_ns"`
	Errors         []string                    `json:"errors,omitempty"`
}

// Surveyor evaluates pairs concurrently
type Surveyor struct {
	engine   *chemi.Engine
	workers  int
	progress io.Writer
}

// NewSurveyor creates a surveyor. Non-positive workers means one per CPU.
func NewSurveyor(engine *chemi.Engine, workers int) *Surveyor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Surveyor{
		engine:   engine,
		workers:  workers,
		progress: io.Discard,
	}
}

// SetProgressOutput sets where the progress bar is drawn. nil hides it.
func (s *Surveyor) SetProgressOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.progress = w
}

// Pairs returns every unordered pair of distinct names. Blank and repeated
// names are skipped.
func Pairs(names []string) []Job {
	unique := distinctNames(names)

	jobs := make([]Job, 0, len(unique)*(len(unique)-1)/2)
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			jobs = append(jobs, Job{Name1: unique[i], Name2: unique[j]})
		}
	}
	return jobs
}

// distinctNames trims names and drops blanks and repeats, keeping first-seen order
func distinctNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	return unique
}

// Run evaluates every pair of names on dateKey. An empty dateKey means the
// engine's today.
func (s *Surveyor) Run(ctx context.Context, names []string, dateKey string) (*Report, error) {
	if dateKey == "" {
		dateKey = chemi.DateKey(s.engine.Today())
	}
	if _, err := chemi.ParseDateKey(dateKey); err != nil {
		return nil, err
	}

	jobs := Pairs(names)
	if len(jobs) == 0 {
		return nil, fmt.Errorf("need at least two distinct names, got %d", len(distinctNames(names)))
	}

	started := time.Now()
	total := len(jobs)
	logger.Info("Surveying name pairs",
		zap.Int("pairs", total),
		zap.Int("workers", s.workers),
		zap.String("date", dateKey),
	)

	progress := mpb.New(
		mpb.WithOutput(s.progress),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	bar := progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Surveying: ", decor.WC{W: 11, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Name(" | "),
			decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}),
			decor.Name(" | "),
			decor.AverageSpeed(0, "%.0f pairs/s", decor.WC{W: 12}),
		),
	)

	workBuffer, resultBuffer := getBufferSizes()
	workCh := make(chan Job, workBuffer)
	resultCh := make(chan *chemi.Result, resultBuffer)
	errorCh := make(chan error, MaxErrorsToCollect)
	var wg sync.WaitGroup

	var errorCount atomic.Int64

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for job := range workCh {
				result, err := s.engine.Calculate(job.Name1, job.Name2, dateKey)
				bar.Increment()
				if err != nil {
					errorCount.Add(1)
					select {
					case errorCh <- fmt.Errorf("worker %d: %s+%s: %w", workerID, job.Name1, job.Name2, err):
					default:
					}
					continue
				}
				resultCh <- result
			}
		}(i)
	}

	tallyDone := make(chan *Report, 1)
	go func() {
		tallyDone <- tally(resultCh)
	}()

	go func() {
		defer close(workCh)
		for _, job := range jobs {
			select {
			case workCh <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(resultCh)
	report := <-tallyDone
	close(errorCh)

	if !bar.Completed() {
		bar.Abort(false)
	}
	progress.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("survey interrupted: %w", err)
	}

	for err := range errorCh {
		report.Errors = append(report.Errors, err.Error())
	}

	report.Date = dateKey
	report.Names = len(distinctNames(names))
	report.Failed = int(errorCount.Load())
	report.Duration = time.Since(started)

	if report.Failed > 0 {
		logger.Warn("Survey finished with errors",
			zap.Int("failed", report.Failed),
			zap.Int("pairs", total),
		)
		for i := 0; i < min(len(report.Errors), SampleErrorCount); i++ {
			logger.Warn("Sample error", zap.Int("n", i+1), zap.String("error", report.Errors[i]))
		}
		return report, fmt.Errorf("survey completed with %d errors", report.Failed)
	}

	logger.Info("Survey finished",
		zap.Int("pairs", report.Pairs),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// tally folds results into a report as they arrive
func tally(resultCh <-chan *chemi.Result) *Report {
	report := &Report{
		Levels:         make(map[chemi.Level]int, 5),
		AttributeMeans: make(map[chemi.Attribute]float64, len(chemi.Attributes)),
	}
	for _, info := range chemi.Levels() {
		report.Levels[info.Level] = 0
	}

	var scoreSum int
	attrSums := make(map[chemi.Attribute]int, len(chemi.Attributes))
	oneLiners := make(map[string]struct{})
	scenarios := make(map[string]struct{})

	for result := range resultCh {
		if report.Pairs == 0 || result.Score < report.ScoreMin {
			report.ScoreMin = result.Score
		}
		if result.Score > report.ScoreMax {
			report.ScoreMax = result.Score
		}
		report.Pairs++
		scoreSum += result.Score
		report.Levels[result.Level.Level]++

		for attr, score := range result.Attributes {
			attrSums[attr] += score
		}
		oneLiners[result.OneLiner] = struct{}{}
		scenarios[result.DateScenario] = struct{}{}
	}

	if report.Pairs > 0 {
		n := float64(report.Pairs)
		report.ScoreMean = float64(scoreSum) / n
		for _, attr := range chemi.Attributes {
			report.AttributeMeans[attr] = float64(attrSums[attr]) / n
		}
	}
	report.OneLiners = len(oneLiners)
	report.Scenarios = len(scenarios)
	return report
}
