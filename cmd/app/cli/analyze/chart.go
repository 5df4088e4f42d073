package analyze

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"exusiai.dev/shufflestat/internal/model"
	"exusiai.dev/shufflestat/internal/model/types"
	"exusiai.dev/shufflestat/internal/util/rekuest"
)

func chartCommand(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "print the per-position Top-K chart model of a shuffle-statistics payload as JSON",
		Flags: []cli.Flag{
			fileFlag,
			&cli.IntFlag{
				Name:  "k",
				Usage: "number of top elements per position (default: SHUFFLESTAT_DEFAULT_TOP_K)",
			},
			&cli.BoolFlag{
				Name:  "percentage",
				Usage: "display frequencies as percentages",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "relative",
				Usage: "display frequencies relative to the displayed Top-K total",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}

			var resp model.ShuffleStatsResponse
			if err := readPayload(c.String("file"), &resp); err != nil {
				return err
			}

			params := types.ChartParams{
				K:             deps.Conf.DefaultTopK,
				UsePercentage: c.Bool("percentage"),
				ShowRelative:  c.Bool("relative"),
			}
			if c.IsSet("k") {
				params.K = c.Int("k")
			}
			if err := rekuest.Validate.Struct(&params); err != nil {
				return errors.Wrap(err, "invalid chart parameters")
			}

			if _, err := deps.DistributionService.Ingest(c.Context, &resp); err != nil {
				return err
			}
			chart, err := deps.DistributionService.CurrentChart(c.Context, params)
			if err != nil {
				return err
			}

			return writeJSON(c.App.Writer, chart)
		},
	}
}
