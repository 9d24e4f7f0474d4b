// Package stats answers the read-only questions asked of the run log:
// latest run, recent runs, year-to-date distance and per-year distance
// histograms.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/padraicbc/runlog/models"
	"github.com/padraicbc/runlog/store"
)

// MinYear is the earliest year a histogram may be requested for.
const MinYear = 1900

// InvalidArgument reports a query parameter outside its allowed range.
type InvalidArgument struct {
	Arg    string
	Reason string
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Arg, e.Reason)
}

// Lister is the part of the record store the engine reads through.
type Lister interface {
	List(ctx context.Context, opts ...store.ListOption) ([]models.Run, error)
}

// Engine runs aggregate queries over stored runs.
type Engine struct {
	runs Lister
	now  func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an Engine reading from runs.
func New(runs Lister, opts ...Option) *Engine {
	e := &Engine{runs: runs, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) today() models.Date { return models.DateOf(e.now()) }

// Latest returns the run with the latest date. Runs sharing that date are
// decided by the highest runid.
func (e *Engine) Latest(ctx context.Context) (*models.Run, error) {
	runs, err := e.runs.List(ctx, store.NewestFirst(), store.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("latest run: %w", store.ErrNotFound)
	}
	return &runs[0], nil
}

// ListSince returns runs dated on or after today minus days, newest first.
func (e *Engine) ListSince(ctx context.Context, days int) ([]models.Run, error) {
	if days <= 0 {
		return nil, &InvalidArgument{Arg: "days", Reason: "must be a positive integer"}
	}
	return e.runs.List(ctx, store.Since(e.today().AddDays(-days)), store.NewestFirst())
}

// YearToDateDistance sums this year's distances expressed in target units
// (miles when target is empty). Runs in units missing from the conversion
// table are skipped.
func (e *Engine) YearToDateDistance(ctx context.Context, target string) (decimal.Decimal, error) {
	if target == "" {
		target = models.Miles
	}
	if !models.ValidUnits(target) {
		return decimal.Zero, &InvalidArgument{Arg: "units", Reason: fmt.Sprintf("unknown unit %q", target)}
	}

	jan1 := models.NewDate(e.today().Year(), time.January, 1)
	runs, err := e.runs.List(ctx, store.Since(jan1), store.HasDistance())
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, r := range runs {
		if d, ok := Convert(r.Distance, r.Units, target); ok {
			total = total.Add(d)
		}
	}
	return total, nil
}

// YearlyHistogram counts the runs of year by distance range in miles.
// Only ranges with at least one run appear in the result.
func (e *Engine) YearlyHistogram(ctx context.Context, year int) (map[string]int, error) {
	if current := e.today().Year(); year < MinYear || year > current {
		return nil, &InvalidArgument{
			Arg:    "year",
			Reason: fmt.Sprintf("must be between %d and %d", MinYear, current),
		}
	}

	runs, err := e.runs.List(ctx,
		store.Between(models.NewDate(year, time.January, 1), models.NewDate(year, time.December, 31)),
		store.HasDistance(),
		store.HasElapsed(),
	)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, r := range runs {
		miles, ok := Convert(r.Distance, r.Units, models.Miles)
		if !ok {
			continue
		}
		counts[BucketLabel(miles)]++
	}
	return counts, nil
}
