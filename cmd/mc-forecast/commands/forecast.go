package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"mc-forecast/internal/forecast"
	"mc-forecast/internal/report"
	"mc-forecast/internal/request"
)

// runOptions collects the flags shared by both forecast commands.
type runOptions struct {
	confidence  float64
	simulations int
	start       string
	seed        int64
	requestFile string
}

func addForecastFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().Float64Var(&opts.confidence, "confidence", forecast.DefaultConfidence, "confidence level percentage (exclusive 0-100)")
	cmd.Flags().IntVar(&opts.simulations, "simulations", forecast.DefaultSimulations, "number of Monte Carlo trials")
	cmd.Flags().StringVar(&opts.start, "start", "", "start date (defaults to today)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "RNG seed for reproducible runs (0 = time-based)")
	cmd.Flags().StringVar(&opts.requestFile, "request", "", "load the forecast request from a YAML or JSON file")
}

// loadRequest reads the request file when one was given.
func (o *runOptions) loadRequest() (*request.Request, error) {
	if o.requestFile == "" {
		return nil, nil
	}
	return request.Load(o.requestFile)
}

// resolveConfig merges flag, request-file and environment defaults.
// Precedence: explicit flag, then request file, then environment default.
func (o *runOptions) resolveConfig(cmd *cobra.Command, req *request.Request, throughput []int) forecast.Config {
	out := forecast.Config{
		Throughput:  throughput,
		Confidence:  cfg.DefaultConfidence,
		Simulations: cfg.DefaultSimulations,
	}

	if req != nil {
		if req.Confidence != 0 {
			out.Confidence = req.Confidence
		}
		if req.Simulations != 0 {
			out.Simulations = req.Simulations
		}
	}
	if cmd.Flags().Changed("confidence") {
		out.Confidence = o.confidence
	}
	if cmd.Flags().Changed("simulations") {
		out.Simulations = o.simulations
	}
	if o.seed != 0 {
		out.RNG = rand.New(rand.NewSource(o.seed))
	}
	return out
}

// startDateInput picks the start date string, flag first.
func (o *runOptions) startDateInput(req *request.Request) string {
	if o.start != "" {
		return o.start
	}
	if req != nil {
		return req.StartDate
	}
	return ""
}

// printResult writes the text report followed by the JSON block, mirroring
// each field of the report in machine-readable form.
func printResult(cmd *cobra.Command, text string, result any) error {
	jsonOut, err := report.JSON(result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "JSON Output:")
	fmt.Fprintln(out, jsonOut)
	return nil
}
