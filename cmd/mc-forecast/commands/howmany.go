package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mc-forecast/internal/dates"
	"mc-forecast/internal/forecast"
	"mc-forecast/internal/report"
	"mc-forecast/internal/request"
)

var howManyOpts runOptions

var howManyCmd = &cobra.Command{
	Use:   "how-many [throughput] [target-date]",
	Short: "Forecast how many stories will be done by a target date",
	Long: `Simulates total completed work over the days remaining until the target
date, by resampling the historical daily throughput with replacement. The
answer reads "at least N stories with the chosen confidence".`,
	Example: `  mc-forecast how-many "3,5,4,2,6,4,5,3,7,4,5,6,3,4,5" 2025-12-31 --confidence 85
  mc-forecast how-many --request plan.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := howManyOpts.loadRequest()
		if err != nil {
			return err
		}

		var throughput []int
		var targetInput string

		switch {
		case len(args) == 2:
			throughput, err = request.ParseThroughput(args[0])
			if err != nil {
				return err
			}
			targetInput = args[1]
		case len(args) == 0 && req != nil:
			throughput = req.Throughput
			targetInput = req.TargetDate
		default:
			return fmt.Errorf("expected <throughput> <target-date> arguments or --request")
		}
		if targetInput == "" {
			return fmt.Errorf("request is missing a target_date")
		}

		target, err := dates.Parse(targetInput)
		if err != nil {
			return err
		}

		fcfg := howManyOpts.resolveConfig(cmd, req, throughput)
		if startInput := howManyOpts.startDateInput(req); startInput != "" {
			fcfg.Start, err = dates.Parse(startInput)
			if err != nil {
				return err
			}
		}

		log.Debug().
			Int("samples", len(throughput)).
			Str("target", target.Format(dates.ISO)).
			Float64("confidence", fcfg.Confidence).
			Int("simulations", fcfg.Simulations).
			Msg("Running how-many forecast")

		res, err := forecast.HowMany(fcfg, target)
		if err != nil {
			return err
		}

		return printResult(cmd, report.HowMany(res), res)
	},
}

func init() {
	addForecastFlags(howManyCmd, &howManyOpts)
	rootCmd.AddCommand(howManyCmd)
}
