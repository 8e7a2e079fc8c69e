package commands

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mc-forecast/internal/dates"
	"mc-forecast/internal/forecast"
	"mc-forecast/internal/report"
	"mc-forecast/internal/request"
)

var whenOpts runOptions

var whenCmd = &cobra.Command{
	Use:   "when [throughput] [stories-remaining]",
	Short: "Forecast when a number of remaining stories will be done",
	Long: `Simulates the days needed to complete the remaining stories, by resampling
the historical daily throughput with replacement until the work is done.
The answer reads "done on or before this date with the chosen confidence".`,
	Example: `  mc-forecast when "3,5,4,2,6,4,5,3,7,4,5,6,3,4,5" 100 --confidence 85
  mc-forecast when --request backlog.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := whenOpts.loadRequest()
		if err != nil {
			return err
		}

		var throughput []int
		var remaining int

		switch {
		case len(args) == 2:
			throughput, err = request.ParseThroughput(args[0])
			if err != nil {
				return err
			}
			remaining, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stories-remaining value %q: %w", args[1], err)
			}
		case len(args) == 0 && req != nil:
			throughput = req.Throughput
			remaining = req.StoriesRemaining
		default:
			return fmt.Errorf("expected <throughput> <stories-remaining> arguments or --request")
		}

		fcfg := whenOpts.resolveConfig(cmd, req, throughput)
		if startInput := whenOpts.startDateInput(req); startInput != "" {
			fcfg.Start, err = dates.Parse(startInput)
			if err != nil {
				return err
			}
		}

		log.Debug().
			Int("samples", len(throughput)).
			Int("remaining", remaining).
			Float64("confidence", fcfg.Confidence).
			Int("simulations", fcfg.Simulations).
			Msg("Running when forecast")

		res, err := forecast.When(fcfg, remaining)
		if err != nil {
			return err
		}

		return printResult(cmd, report.When(res), res)
	},
}

func init() {
	addForecastFlags(whenCmd, &whenOpts)
	rootCmd.AddCommand(whenCmd)
}
