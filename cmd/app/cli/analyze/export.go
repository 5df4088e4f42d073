package analyze

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/shufflestat/internal/core/permutation"
	"exusiai.dev/shufflestat/internal/model"
)

func exportCommand(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the shuffledOnce permutation of a shuffle-statistics payload to a Key,Value CSV file",
		Flags: []cli.Flag{
			fileFlag,
			&cli.StringFlag{
				Name:  "out",
				Usage: "output `DIR`",
				Value: ".",
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

			if _, err := deps.DistributionService.Ingest(c.Context, &resp); err != nil {
				return err
			}
			export, err := deps.ExportService.CurrentPermutation(c.Context)
			if err != nil {
				return err
			}

			path := filepath.Join(c.String("out"), permutation.Filename(time.Now()))
			if err := os.WriteFile(path, []byte(export.CSV), 0o644); err != nil {
				return errors.Wrap(err, "failed to write export")
			}

			log.Info().
				Str("path", path).
				Int("rows", len(export.Rows)).
				Int("ambiguous", len(export.Ambiguous)).
				Msg("exported permutation")
			_, err = c.App.Writer.Write([]byte(path + "\n"))
			return err
		},
	}
}
