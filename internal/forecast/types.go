package forecast

import (
	"math/rand"
	"time"

	"mc-forecast/internal/stats"
)

const (
	// DefaultConfidence is the confidence level used when none is given.
	DefaultConfidence = 85.0
	// DefaultSimulations is the trial count used when none is given.
	DefaultSimulations = 10000
)

// Config carries everything a forecast run needs besides its mode-specific
// target. It is built once per invocation and never mutated.
type Config struct {
	// Throughput is the historical daily completion counts, at least ten
	// non-negative entries.
	Throughput []int
	// Confidence is the requested confidence level, strictly between 0
	// and 100.
	Confidence float64
	// Simulations is the number of independent trials to run.
	Simulations int
	// Start anchors the forecast. Zero means "now".
	Start time.Time
	// RNG optionally injects a seeded random stream for reproducible
	// runs; nil selects a time-seeded stream.
	RNG *rand.Rand
}

// start resolves the effective start date.
func (c Config) start() time.Time {
	if c.Start.IsZero() {
		return time.Now()
	}
	return c.Start
}

// HowManyResult is the full outcome of a fixed-horizon forecast. Field names
// in the serialized form are part of the tool's contract.
type HowManyResult struct {
	StoriesAtConfidence int            `json:"stories_at_confidence"`
	ConfidenceLevel     float64        `json:"confidence_level"`
	Percentiles         map[string]int `json:"percentiles"`
	Mean                float64        `json:"mean"`
	Min                 int            `json:"min"`
	Max                 int            `json:"max"`
	DaysUntilTarget     int            `json:"days_until_target"`
	TargetDate          string         `json:"target_date"`
	StartDate           string         `json:"start_date"`
	NumSimulations      int            `json:"num_simulations"`
	ThroughputStats     stats.Summary  `json:"throughput_stats"`
}

// WhenResult is the full outcome of a fixed-work forecast, carrying both day
// counts and the calendar dates they map to.
type WhenResult struct {
	CompletionDateAtConfidence string            `json:"completion_date_at_confidence"`
	DaysAtConfidence           int               `json:"days_at_confidence"`
	ConfidenceLevel            float64           `json:"confidence_level"`
	PercentileDates            map[string]string `json:"percentile_dates"`
	DaysPercentiles            map[string]int    `json:"days_percentiles"`
	MeanDate                   string            `json:"mean_date"`
	MeanDays                   float64           `json:"mean_days"`
	MinDate                    string            `json:"min_date"`
	MinDays                    int               `json:"min_days"`
	MaxDate                    string            `json:"max_date"`
	MaxDays                    int               `json:"max_days"`
	StartDate                  string            `json:"start_date"`
	StoriesRemaining           int               `json:"stories_remaining"`
	NumSimulations             int               `json:"num_simulations"`
	ThroughputStats            stats.Summary     `json:"throughput_stats"`
}
