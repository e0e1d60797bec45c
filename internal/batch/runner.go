// Package batch fans quick scans out over a collection of listings.
package batch

import (
	"context"
	"sync"

	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/scanner"
)

// DefaultMaxConcurrency bounds in-flight scans when the runner is given none.
const DefaultMaxConcurrency = 8

// ProgressFunc is called after each item completes with the number of items
// done so far. Calls are serialized.
type ProgressFunc func(done, total int)

// Runner scans items concurrently and returns results in input order.
type Runner struct {
	MaxConcurrency int
	scanner        *scanner.Scanner
	logger         logging.Logger
}

// NewRunner returns a Runner over s. maxConcurrency <= 0 uses the default.
func NewRunner(s *scanner.Scanner, maxConcurrency int, logger logging.Logger) *Runner {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Runner{
		MaxConcurrency: maxConcurrency,
		scanner:        s,
		logger:         logging.OrNop(logger).With(logging.Field{Key: "component", Value: "batch"}),
	}
}

// Run quick-scans every item against jurisdiction. results[i] always belongs
// to items[i] and carries its id. If ctx is canceled, Run stops starting new
// scans and returns the partial results with ctx.Err(); unscanned slots are
// zero Summaries.
func (r *Runner) Run(ctx context.Context, items []Item, jurisdiction string, progress ProgressFunc) ([]scanner.Summary, error) {
	results := make([]scanner.Summary, len(items))
	total := len(items)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	sem := make(chan struct{}, r.MaxConcurrency)

	r.logger.Debug("batch started",
		logging.Field{Key: "items", Value: total},
		logging.Field{Key: "jurisdiction", Value: jurisdiction})

loop:
	for i := range items {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			sum := r.scanner.QuickScan(items[i].Text, jurisdiction)
			sum.ID = items[i].ID
			results[i] = sum

			mu.Lock()
			done++
			if progress != nil {
				progress(done, total)
			}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		r.logger.Warn("batch canceled",
			logging.Field{Key: "done", Value: done},
			logging.Field{Key: "items", Value: total},
			logging.Field{Key: "error", Value: err})
		return results, err
	}
	r.logger.Debug("batch finished", logging.Field{Key: "items", Value: total})
	return results, nil
}
