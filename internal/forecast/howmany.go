package forecast

import (
	"time"

	"mc-forecast/internal/dates"
	"mc-forecast/internal/simulation"
	"mc-forecast/internal/stats"
)

// HowMany forecasts how much work will be completed by the target date. The
// answer at the requested confidence reads "at least this many", so it
// queries the inverted (100-confidence) percentile of the completed totals.
func HowMany(cfg Config, target time.Time) (*HowManyResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	start := cfg.start()
	if !target.After(start) {
		return nil, errTargetNotFuture()
	}

	horizon := dates.DaysBetween(start, target)
	if horizon <= 0 {
		return nil, errTargetNotFuture()
	}

	engine := simulation.NewEngine(cfg.Throughput, cfg.RNG)
	outcomes, err := engine.Run(simulation.FixedHorizon, horizon, cfg.Simulations)
	if err != nil {
		return nil, err
	}

	return &HowManyResult{
		StoriesAtConfidence: simulation.Percentile(outcomes, 100-cfg.Confidence),
		ConfidenceLevel:     cfg.Confidence,
		Percentiles:         simulation.HowManyPercentiles(outcomes),
		Mean:                stats.Mean(outcomes),
		Min:                 outcomes[0],
		Max:                 outcomes[len(outcomes)-1],
		DaysUntilTarget:     horizon,
		TargetDate:          target.Format(dates.ISO),
		StartDate:           start.Format(dates.ISO),
		NumSimulations:      cfg.Simulations,
		ThroughputStats:     stats.Summarize(cfg.Throughput),
	}, nil
}
