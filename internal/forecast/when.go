package forecast

import (
	"mc-forecast/internal/dates"
	"mc-forecast/internal/simulation"
	"mc-forecast/internal/stats"
)

// When forecasts the completion date for the remaining work. The answer at
// the requested confidence reads "done on or before", so it queries the
// confidence percentile of the elapsed-days distribution directly.
func When(cfg Config, remaining int) (*WhenResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if remaining <= 0 {
		return nil, errRemainingNotPositive()
	}

	start := cfg.start()

	engine := simulation.NewEngine(cfg.Throughput, cfg.RNG)
	outcomes, err := engine.Run(simulation.FixedWork, remaining, cfg.Simulations)
	if err != nil {
		return nil, err
	}

	daysAtConfidence := simulation.Percentile(outcomes, cfg.Confidence)
	daysPercentiles := simulation.WhenPercentiles(outcomes)

	percentileDates := make(map[string]string, len(daysPercentiles))
	for label, days := range daysPercentiles {
		percentileDates[label] = dates.AddDays(start, days).Format(dates.ISO)
	}

	meanDays := stats.Mean(outcomes)
	minDays := outcomes[0]
	maxDays := outcomes[len(outcomes)-1]

	return &WhenResult{
		CompletionDateAtConfidence: dates.AddDays(start, daysAtConfidence).Format(dates.ISO),
		DaysAtConfidence:           daysAtConfidence,
		ConfidenceLevel:            cfg.Confidence,
		PercentileDates:            percentileDates,
		DaysPercentiles:            daysPercentiles,
		MeanDate:                   dates.AddDays(start, int(meanDays)).Format(dates.ISO),
		MeanDays:                   meanDays,
		MinDate:                    dates.AddDays(start, minDays).Format(dates.ISO),
		MinDays:                    minDays,
		MaxDate:                    dates.AddDays(start, maxDays).Format(dates.ISO),
		MaxDays:                    maxDays,
		StartDate:                  start.Format(dates.ISO),
		StoriesRemaining:           remaining,
		NumSimulations:             cfg.Simulations,
		ThroughputStats:            stats.Summarize(cfg.Throughput),
	}, nil
}
