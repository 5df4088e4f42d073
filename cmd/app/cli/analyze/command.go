package analyze

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/shufflestat/cmd/app/cli"
	"exusiai.dev/shufflestat/internal/app/appconfig"
	"exusiai.dev/shufflestat/internal/service"
)

type CommandDeps struct {
	fx.In

	Conf                 *appconfig.Config
	DistributionService  *service.Distribution
	ExportService        *service.Export
	AccessPatternService *service.AccessPattern
}

func Commands() []*cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()

	return []*cli.Command{
		chartCommand(depsFn),
		exportCommand(depsFn),
		summaryCommand(),
	}
}

var fileFlag = &cli.StringFlag{
	Name:     "file",
	Aliases:  []string{"f"},
	Usage:    "shuffle-statistics `FILE`, raw or in the producer envelope",
	Required: true,
}
