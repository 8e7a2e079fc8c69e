package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"mc-forecast/internal/dates"
	"mc-forecast/internal/forecast"
)

// HowManyArgs is the input contract of the forecast_how_many tool.
type HowManyArgs struct {
	Throughput  []int   `json:"throughput" jsonschema:"Daily completed story counts, one per historical day, at least 10 entries"`
	TargetDate  string  `json:"target_date" jsonschema:"Future date to forecast for, e.g. 2025-12-31"`
	Confidence  float64 `json:"confidence,omitempty" jsonschema:"Confidence level percentage, default 85"`
	Simulations int     `json:"simulations,omitempty" jsonschema:"Number of Monte Carlo trials, default 10000"`
	StartDate   string  `json:"start_date,omitempty" jsonschema:"Start date, defaults to today"`
}

// WhenArgs is the input contract of the forecast_when tool.
type WhenArgs struct {
	Throughput       []int   `json:"throughput" jsonschema:"Daily completed story counts, one per historical day, at least 10 entries"`
	StoriesRemaining int     `json:"stories_remaining" jsonschema:"Number of stories left to complete"`
	Confidence       float64 `json:"confidence,omitempty" jsonschema:"Confidence level percentage, default 85"`
	Simulations      int     `json:"simulations,omitempty" jsonschema:"Number of Monte Carlo trials, default 10000"`
	StartDate        string  `json:"start_date,omitempty" jsonschema:"Start date, defaults to today"`
}

func handleHowMany(ctx context.Context, req *sdk.CallToolRequest, args HowManyArgs) (*sdk.CallToolResult, *forecast.HowManyResult, error) {
	cfg, err := buildConfig(args.Throughput, args.Confidence, args.Simulations, args.StartDate)
	if err != nil {
		return nil, nil, err
	}

	target, err := dates.Parse(args.TargetDate)
	if err != nil {
		return nil, nil, err
	}

	res, err := forecast.HowMany(cfg, target)
	if err != nil {
		return nil, nil, err
	}

	log.Debug().Str("tool", "forecast_how_many").Int("stories", res.StoriesAtConfidence).Msg("Forecast complete")
	return nil, res, nil
}

func handleWhen(ctx context.Context, req *sdk.CallToolRequest, args WhenArgs) (*sdk.CallToolResult, *forecast.WhenResult, error) {
	cfg, err := buildConfig(args.Throughput, args.Confidence, args.Simulations, args.StartDate)
	if err != nil {
		return nil, nil, err
	}

	res, err := forecast.When(cfg, args.StoriesRemaining)
	if err != nil {
		return nil, nil, err
	}

	log.Debug().Str("tool", "forecast_when").Int("days", res.DaysAtConfidence).Msg("Forecast complete")
	return nil, res, nil
}

func buildConfig(throughput []int, confidence float64, simulations int, startDate string) (forecast.Config, error) {
	cfg := forecast.Config{
		Throughput:  throughput,
		Confidence:  confidence,
		Simulations: simulations,
	}
	if cfg.Confidence == 0 {
		cfg.Confidence = forecast.DefaultConfidence
	}
	if cfg.Simulations == 0 {
		cfg.Simulations = forecast.DefaultSimulations
	}
	if startDate != "" {
		start, err := dates.Parse(startDate)
		if err != nil {
			return forecast.Config{}, err
		}
		cfg.Start = start
	}
	return cfg, nil
}
