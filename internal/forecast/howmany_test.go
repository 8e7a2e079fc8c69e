package forecast

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

var sampleThroughput = []int{3, 5, 4, 2, 6, 4, 5, 3, 7, 4, 5, 6, 3, 4, 5}

func howManyConfig(seed int64) Config {
	return Config{
		Throughput:  sampleThroughput,
		Confidence:  85,
		Simulations: 10000,
		Start:       time.Date(2025, time.October, 27, 0, 0, 0, 0, time.UTC),
		RNG:         rand.New(rand.NewSource(seed)),
	}
}

func TestHowMany_Scenario(t *testing.T) {
	cfg := howManyConfig(42)
	target := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	res, err := HowMany(cfg, target)
	if err != nil {
		t.Fatalf("HowMany returned error: %v", err)
	}

	if res.DaysUntilTarget != 65 {
		t.Errorf("DaysUntilTarget = %d, want 65", res.DaysUntilTarget)
	}
	if res.NumSimulations != 10000 {
		t.Errorf("NumSimulations = %d, want 10000", res.NumSimulations)
	}

	// Mean throughput is 4.4/day over 65 days, so the 15th percentile of
	// the totals sits a little under 286.
	if res.StoriesAtConfidence < 230 || res.StoriesAtConfidence > 310 {
		t.Errorf("StoriesAtConfidence = %d, outside plausible band [230, 310]", res.StoriesAtConfidence)
	}
	if res.Min > res.StoriesAtConfidence || res.Max < res.StoriesAtConfidence {
		t.Errorf("confidence answer %d outside simulated range [%d, %d]",
			res.StoriesAtConfidence, res.Min, res.Max)
	}
	if res.Mean < float64(res.Min) || res.Mean > float64(res.Max) {
		t.Errorf("Mean %.1f outside range [%d, %d]", res.Mean, res.Min, res.Max)
	}

	// Every total is bounded by horizon * max(history).
	if res.Max > 65*7 {
		t.Errorf("Max = %d exceeds horizon*max(history) = %d", res.Max, 65*7)
	}
	if res.Min < 65*2 {
		t.Errorf("Min = %d below horizon*min(history) = %d", res.Min, 65*2)
	}

	if res.ThroughputStats.Samples != 15 || res.ThroughputStats.Min != 2 || res.ThroughputStats.Max != 7 {
		t.Errorf("unexpected throughput stats: %+v", res.ThroughputStats)
	}
	if res.TargetDate != "2025-12-31" || res.StartDate != "2025-10-27" {
		t.Errorf("unexpected dates: %s / %s", res.StartDate, res.TargetDate)
	}
}

func TestHowMany_PercentilesNonIncreasing(t *testing.T) {
	cfg := howManyConfig(7)
	target := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	res, err := HowMany(cfg, target)
	if err != nil {
		t.Fatalf("HowMany returned error: %v", err)
	}

	order := []string{"P5", "P25", "P50", "P70", "P85", "P95", "P99"}
	for i := 1; i < len(order); i++ {
		if res.Percentiles[order[i]] > res.Percentiles[order[i-1]] {
			t.Errorf("percentiles not non-increasing: %s=%d > %s=%d",
				order[i], res.Percentiles[order[i]],
				order[i-1], res.Percentiles[order[i-1]])
		}
	}
}

func TestHowMany_SeededRunsAreIdentical(t *testing.T) {
	target := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	first, err := HowMany(howManyConfig(99), target)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := HowMany(howManyConfig(99), target)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first.StoriesAtConfidence != second.StoriesAtConfidence ||
		first.Mean != second.Mean ||
		first.Min != second.Min ||
		first.Max != second.Max {
		t.Errorf("identically seeded runs diverged: %+v vs %+v", first, second)
	}
	for label, v := range first.Percentiles {
		if second.Percentiles[label] != v {
			t.Errorf("percentile %s diverged: %d vs %d", label, v, second.Percentiles[label])
		}
	}
}

func TestHowMany_ConfidenceMatchesInvertedPercentile(t *testing.T) {
	cfg := howManyConfig(5)
	target := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

	res, err := HowMany(cfg, target)
	if err != nil {
		t.Fatalf("HowMany returned error: %v", err)
	}

	// 85% confidence of "at least" is the 15th percentile, which the table
	// publishes under the P85 label.
	if res.StoriesAtConfidence != res.Percentiles["P85"] {
		t.Errorf("StoriesAtConfidence = %d, want P85 table value %d",
			res.StoriesAtConfidence, res.Percentiles["P85"])
	}
}

func TestHowMany_Validation(t *testing.T) {
	start := time.Date(2025, time.October, 27, 0, 0, 0, 0, time.UTC)
	target := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	base := Config{
		Throughput:  sampleThroughput,
		Confidence:  85,
		Simulations: 100,
		Start:       start,
		RNG:         rand.New(rand.NewSource(1)),
	}

	cases := []struct {
		name   string
		mutate func(*Config) time.Time
	}{
		{"nine samples", func(c *Config) time.Time {
			c.Throughput = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
			return target
		}},
		{"negative sample", func(c *Config) time.Time {
			c.Throughput = []int{3, 5, 4, -2, 6, 4, 5, 3, 7, 4}
			return target
		}},
		{"confidence zero", func(c *Config) time.Time {
			c.Confidence = 0
			return target
		}},
		{"confidence hundred", func(c *Config) time.Time {
			c.Confidence = 100
			return target
		}},
		{"zero simulations", func(c *Config) time.Time {
			c.Simulations = 0
			return target
		}},
		{"target equals start", func(c *Config) time.Time {
			return start
		}},
		{"target before start", func(c *Config) time.Time {
			return start.AddDate(0, 0, -5)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tgt := tc.mutate(&cfg)
			_, err := HowMany(cfg, tgt)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestHowMany_TenSamplesAccepted(t *testing.T) {
	cfg := Config{
		Throughput:  []int{3, 5, 4, 2, 6, 4, 5, 3, 7, 4},
		Confidence:  85,
		Simulations: 100,
		Start:       time.Date(2025, time.October, 27, 0, 0, 0, 0, time.UTC),
		RNG:         rand.New(rand.NewSource(1)),
	}
	target := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)

	if _, err := HowMany(cfg, target); err != nil {
		t.Fatalf("ten samples must be accepted, got %v", err)
	}
}

func TestHowMany_AllZeroHistoryAllowed(t *testing.T) {
	// Zero history is only degenerate for fixed-work; here every total is 0.
	cfg := Config{
		Throughput:  []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		Confidence:  85,
		Simulations: 100,
		Start:       time.Date(2025, time.October, 27, 0, 0, 0, 0, time.UTC),
		RNG:         rand.New(rand.NewSource(1)),
	}
	target := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)

	res, err := HowMany(cfg, target)
	if err != nil {
		t.Fatalf("HowMany returned error: %v", err)
	}
	if res.Max != 0 || res.StoriesAtConfidence != 0 {
		t.Errorf("expected zero forecast, got max=%d answer=%d", res.Max, res.StoriesAtConfidence)
	}
}
