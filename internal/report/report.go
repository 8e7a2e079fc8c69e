// Package report renders forecast results as the sectioned text report and
// the JSON block the CLI prints side by side.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"mc-forecast/internal/forecast"
)

const rule = "============================================================"

// howManyDisplayOrder lists the percentile labels from conservative to
// coin-toss, the order the report shows them in.
var howManyDisplayOrder = []string{"P99", "P95", "P85", "P70", "P50"}

// whenDisplayOrder runs optimistic to conservative.
var whenDisplayOrder = []string{"P25", "P50", "P70", "P85", "P95", "P99"}

// HowMany renders the fixed-horizon forecast as human-readable text.
func HowMany(r *forecast.HowManyResult) string {
	var b strings.Builder

	header(&b, "MONTE CARLO 'HOW MANY' SIMULATION RESULTS")

	section(&b, "FORECAST SUMMARY")
	line(&b, "Target Date: %s", r.TargetDate)
	line(&b, "Start Date: %s", r.StartDate)
	line(&b, "Days Until Target: %d days", r.DaysUntilTarget)
	line(&b, "Simulations Run: %d", r.NumSimulations)
	b.WriteString("\n")

	section(&b, fmt.Sprintf("ANSWER AT %g%% CONFIDENCE", r.ConfidenceLevel))
	line(&b, "You will complete %d stories OR MORE", r.StoriesAtConfidence)
	line(&b, "by %s if you start on %s", r.TargetDate, r.StartDate)
	line(&b, "with %g%% confidence", r.ConfidenceLevel)
	line(&b, "(There's a %.0f%% chance of completing %d stories or more)", r.ConfidenceLevel, r.StoriesAtConfidence)
	b.WriteString("\n")

	section(&b, "PERCENTILE FORECAST")
	for _, label := range howManyDisplayOrder {
		if v, ok := r.Percentiles[label]; ok {
			line(&b, "%s: %d stories", label, v)
		}
	}
	b.WriteString("\n")

	section(&b, "STATISTICAL SUMMARY")
	line(&b, "Mean (Average): %.1f stories", r.Mean)
	line(&b, "Range: %d - %d stories", r.Min, r.Max)
	b.WriteString("\n")

	throughputSection(&b, r.ThroughputStats.Samples, r.ThroughputStats.Mean, r.ThroughputStats.Min, r.ThroughputStats.Max)

	b.WriteString(rule)
	return b.String()
}

// When renders the fixed-work forecast as human-readable text.
func When(r *forecast.WhenResult) string {
	var b strings.Builder

	header(&b, "MONTE CARLO 'WHEN' SIMULATION RESULTS")

	section(&b, "FORECAST SUMMARY")
	line(&b, "Stories Remaining: %d", r.StoriesRemaining)
	line(&b, "Start Date: %s", r.StartDate)
	line(&b, "Simulations Run: %d", r.NumSimulations)
	b.WriteString("\n")

	section(&b, fmt.Sprintf("ANSWER AT %g%% CONFIDENCE", r.ConfidenceLevel))
	line(&b, "You will complete the work on or before %s", r.CompletionDateAtConfidence)
	line(&b, "(%d days from start date)", r.DaysAtConfidence)
	line(&b, "with %g%% confidence", r.ConfidenceLevel)
	line(&b, "(There's a %.0f%% chance of finishing on or before this date)", r.ConfidenceLevel)
	b.WriteString("\n")

	section(&b, "PERCENTILE FORECAST (Dates)")
	for _, label := range whenDisplayOrder {
		if date, ok := r.PercentileDates[label]; ok {
			line(&b, "%s: %s (%d days)", label, date, r.DaysPercentiles[label])
		}
	}
	b.WriteString("\n")

	section(&b, "STATISTICAL SUMMARY")
	line(&b, "Mean (Average): %s (%.1f days)", r.MeanDate, r.MeanDays)
	line(&b, "Best Case: %s (%d days)", r.MinDate, r.MinDays)
	line(&b, "Worst Case: %s (%d days)", r.MaxDate, r.MaxDays)
	b.WriteString("\n")

	throughputSection(&b, r.ThroughputStats.Samples, r.ThroughputStats.Mean, r.ThroughputStats.Min, r.ThroughputStats.Max)

	b.WriteString(rule)
	return b.String()
}

// JSON renders any result as the indented machine-readable block.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data), nil
}

func header(b *strings.Builder, title string) {
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n\n")
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, "   "+format+"\n", args...)
}

func throughputSection(b *strings.Builder, samples int, mean float64, lo, hi int) {
	section(b, "HISTORICAL THROUGHPUT")
	line(b, "Sample Size: %d days", samples)
	line(b, "Average Daily: %.1f stories/day", mean)
	line(b, "Range: %d - %d stories/day", lo, hi)
	b.WriteString("\n")
}
