// Package verify exhaustively checks an evaluator against the known
// distribution of all 2,598,960 five-card hands.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/poker"
)

// TotalHands is C(52, 5).
const TotalHands = 2598960

// Expected is the number of five-card hands in each category.
var Expected = map[poker.Category]int{
	poker.StraightFlush: 40,
	poker.FourOfAKind:   624,
	poker.FullHouse:     3744,
	poker.Flush:         5108,
	poker.Straight:      10200,
	poker.ThreeOfAKind:  54912,
	poker.TwoPair:       123552,
	poker.Pair:          1098240,
	poker.HighCard:      1302540,
}

// Report is the outcome of a verification run.
type Report struct {
	Hands         int
	Counts        map[poker.Category]int
	DistinctRanks int
	Elapsed       time.Duration
}

// Check compares the report against the known distribution.
func (r *Report) Check() error {
	if r.Hands != TotalHands {
		return fmt.Errorf("evaluated %d hands, want %d", r.Hands, TotalHands)
	}
	for _, c := range poker.Categories {
		if got, want := r.Counts[c], Expected[c]; got != want {
			return fmt.Errorf("%s: %d hands, want %d", c, got, want)
		}
	}
	if r.DistinctRanks != int(poker.MaxHighCard) {
		return fmt.Errorf("%d distinct ranks, want %d", r.DistinctRanks, poker.MaxHighCard)
	}
	return nil
}

// Verifier enumerates every five-card hand across a pool of workers.
type Verifier struct {
	eval    *poker.Evaluator
	workers int
	clock   quartz.Clock
	logger  *log.Logger
}

// New creates a verifier. workers below 1 is treated as 1.
func New(eval *poker.Evaluator, workers int, clock quartz.Clock, logger *log.Logger) *Verifier {
	if workers < 1 {
		workers = 1
	}
	return &Verifier{
		eval:    eval,
		workers: workers,
		clock:   clock,
		logger:  logger.WithPrefix("verify"),
	}
}

type workerResult struct {
	hands  int
	counts [poker.HighCard + 1]int
	seen   [poker.MaxHighCard + 1]bool
}

// Run evaluates every hand and returns the tally. Hands are split between
// workers by the index of their first card. Cancelling ctx stops the run.
func (v *Verifier) Run(ctx context.Context) (*Report, error) {
	start := v.clock.Now()
	cards := poker.Fresh()

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *workerResult, v.workers)

	for w := 0; w < v.workers; w++ {
		g.Go(func() error {
			result, err := v.runWorker(ctx, cards, w)
			if err != nil {
				return err
			}
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	var total workerResult
	for result := range results {
		total.hands += result.hands
		for c, n := range result.counts {
			total.counts[c] += n
		}
		for hr, ok := range result.seen {
			total.seen[hr] = total.seen[hr] || ok
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Hands:   total.hands,
		Counts:  make(map[poker.Category]int, len(poker.Categories)),
		Elapsed: v.clock.Since(start),
	}
	for _, c := range poker.Categories {
		report.Counts[c] = total.counts[c]
	}
	for _, ok := range total.seen {
		if ok {
			report.DistinctRanks++
		}
	}
	v.logger.Debug("Enumeration finished", "hands", report.Hands, "elapsed", report.Elapsed)
	return report, nil
}

func (v *Verifier) runWorker(ctx context.Context, cards []poker.Card, worker int) (*workerResult, error) {
	result := &workerResult{}
	n := len(cards)
	for a := worker; a < n-4; a += v.workers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						hr, err := v.eval.Evaluate5(cards[a], cards[b], cards[c], cards[d], cards[e])
						if err != nil {
							return nil, err
						}
						result.hands++
						result.counts[hr.Category()]++
						result.seen[hr] = true
					}
				}
			}
		}
		v.logger.Debug("First card done", "worker", worker, "card", cards[a])
	}
	return result, nil
}
