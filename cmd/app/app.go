package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/shufflestat/cmd/app/cli/analyze"
	"exusiai.dev/shufflestat/cmd/app/server"
	"exusiai.dev/shufflestat/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "shufflestat",
		Usage:       "analyze the output distribution of a shuffle algorithm",
		Description: "Turns shuffle-statistics and access-pattern payloads into Top-K chart models, permutation CSV exports and obfuscation summaries. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: append([]*cli.Command{
			server.Command(),
		}, analyze.Commands()...),
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
