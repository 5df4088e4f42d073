package analyze

import (
	"github.com/urfave/cli/v2"

	"exusiai.dev/shufflestat/internal/core/accesspattern"
	"exusiai.dev/shufflestat/internal/model"
)

type summaryOutput struct {
	accesspattern.Summary
	RatioDisplay string `json:"ratioDisplay"`
	Runs         int    `json:"runs"`
}

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "print the obfuscation summary of one or more access-pattern payloads; several runs are averaged",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "access-pattern `FILE`, raw or in the {success, data} envelope; repeat to average runs",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			files := c.StringSlice("file")
			runs := make([]accesspattern.Counters, 0, len(files))
			for _, file := range files {
				var resp model.AccessPatternResponse
				if err := readPayload(file, &resp); err != nil {
					return err
				}
				runs = append(runs, accesspattern.FromResponse(&resp))
			}

			summary := accesspattern.Summarize(accesspattern.Average(runs))
			return writeJSON(c.App.Writer, summaryOutput{
				Summary:      summary,
				RatioDisplay: summary.RatioDisplay(),
				Runs:         len(runs),
			})
		},
	}
}
