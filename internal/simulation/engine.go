package simulation

import (
	"errors"
	"math/rand"
	"sort"
	"time"
)

// Mode selects which quantity a trial holds fixed.
type Mode int

const (
	// FixedHorizon fills a fixed number of days and counts completed work.
	FixedHorizon Mode = iota
	// FixedWork races to a fixed amount of work and counts elapsed days.
	FixedWork
)

// ErrAllZeroThroughput rejects fixed-work runs whose history can never
// accumulate work: the simulated race would loop forever.
var ErrAllZeroThroughput = errors.New("throughput history is all zeros; the remaining work would never complete")

// ErrEmptyHistory rejects runs with no samples to draw from.
var ErrEmptyHistory = errors.New("throughput history is empty")

// Engine performs the Monte-Carlo simulation by resampling the historical
// daily throughput with replacement.
type Engine struct {
	history []int
	rng     *rand.Rand
}

// NewEngine creates an engine over the given throughput history. A nil rng
// yields a time-seeded stream; tests inject a seeded source for
// reproducible outcomes.
func NewEngine(history []int, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		history: history,
		rng:     rng,
	}
}

// Run performs the requested number of independent trials and returns the
// outcomes sorted ascending, ready for percentile queries. The RNG stream
// advances exactly once per sample draw, so a seeded engine is
// bit-reproducible.
func (e *Engine) Run(mode Mode, target, trials int) ([]int, error) {
	if len(e.history) == 0 {
		return nil, ErrEmptyHistory
	}
	if mode == FixedWork && maxValue(e.history) == 0 {
		return nil, ErrAllZeroThroughput
	}

	outcomes := make([]int, trials)
	for i := 0; i < trials; i++ {
		switch mode {
		case FixedHorizon:
			outcomes[i] = e.fixedHorizonTrial(target)
		case FixedWork:
			outcomes[i] = e.fixedWorkTrial(target)
		}
	}

	sort.Ints(outcomes)
	return outcomes, nil
}

// sample draws one day's throughput uniformly at random from history.
func (e *Engine) sample() int {
	return e.history[e.rng.Intn(len(e.history))]
}

func (e *Engine) fixedHorizonTrial(days int) int {
	total := 0
	for d := 0; d < days; d++ {
		total += e.sample()
	}
	return total
}

func (e *Engine) fixedWorkTrial(remaining int) int {
	days := 0
	completed := 0

	for completed < remaining {
		days++
		completed += e.sample()
	}

	return days
}

func maxValue(values []int) int {
	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi
}
