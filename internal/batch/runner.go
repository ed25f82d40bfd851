package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhand/poker"
)

// Options configures a Runner.
type Options struct {
	// Workers bounds the number of lines evaluated concurrently.
	Workers int
	// FailFast stops the run at the first line that cannot be evaluated.
	FailFast bool
	// Strict rejects hands containing the same card twice.
	Strict bool
}

// Comparison is the result for one input line.
type Comparison struct {
	Line          int
	Left          string
	Right         string
	LeftCategory  poker.Category
	RightCategory poker.Category
	Outcome       poker.Outcome
	Err           error
}

// Summary aggregates a run. Comparisons are in input order.
type Summary struct {
	Comparisons []Comparison
	Wins        int
	Losses      int
	Ties        int
	Failed      int
	StartedAt   time.Time
	Elapsed     time.Duration
}

// Runner compares pairs of hands concurrently.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
	opts   Options
}

// NewRunner creates a runner. Workers below one are treated as one.
func NewRunner(logger *log.Logger, clock quartz.Clock, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{
		logger: logger.WithPrefix("batch"),
		clock:  clock,
		opts:   opts,
	}
}

// Run compares every pair. Lines that fail to evaluate are recorded in the
// summary; with FailFast the first such failure aborts the run instead.
func (r *Runner) Run(ctx context.Context, pairs []Pair) (*Summary, error) {
	start := r.clock.Now()
	r.logger.Debug("Starting batch", "pairs", len(pairs), "workers", r.opts.Workers)

	results := make([]Comparison, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i, pair := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.compare(pair)
			if err := results[i].Err; err != nil && r.opts.FailFast {
				return fmt.Errorf("line %d: %w", pair.Line, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Comparisons: results,
		StartedAt:   start,
	}
	for _, c := range results {
		switch {
		case c.Err != nil:
			summary.Failed++
		case c.Outcome == poker.Win:
			summary.Wins++
		case c.Outcome == poker.Loss:
			summary.Losses++
		default:
			summary.Ties++
		}
	}
	summary.Elapsed = r.clock.Since(start)

	r.logger.Info("Batch complete",
		"pairs", len(results),
		"wins", summary.Wins,
		"losses", summary.Losses,
		"ties", summary.Ties,
		"failed", summary.Failed,
		"elapsed", summary.Elapsed)
	return summary, nil
}

func (r *Runner) compare(pair Pair) Comparison {
	c := Comparison{Line: pair.Line}

	left, right, err := SplitPair(pair.Text)
	if err != nil {
		c.Left = pair.Text
		c.Err = err
		r.logger.Warn("Skipping line", "line", pair.Line, "error", err)
		return c
	}
	c.Left, c.Right = left, right

	var opts []poker.Option
	if r.opts.Strict {
		opts = append(opts, poker.WithStrictCards())
	}
	lh := poker.FromString(left, opts...)
	rh := poker.FromString(right, opts...)

	if c.Outcome, c.Err = lh.Compare(rh); c.Err != nil {
		r.logger.Warn("Skipping line", "line", pair.Line, "error", c.Err)
		return c
	}
	// Both hands evaluated successfully above, so these cannot fail.
	c.LeftCategory, _ = lh.Category()
	c.RightCategory, _ = rh.Category()

	r.logger.Debug("Compared",
		"line", pair.Line,
		"left", left,
		"right", right,
		"outcome", c.Outcome)
	return c
}
