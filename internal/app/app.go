package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/shufflestat/internal/app/appconfig"
	"exusiai.dev/shufflestat/internal/app/appcontext"
	"exusiai.dev/shufflestat/internal/controller"
	"exusiai.dev/shufflestat/internal/infra"
	"exusiai.dev/shufflestat/internal/pkg/logger"
	"exusiai.dev/shufflestat/internal/server"
	"exusiai.dev/shufflestat/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures: keep it before controllers so that Sentry is initialized
		// before any route is registered, as controllers are also fx#Invoke functions
		// which are called in the order of their registration.
		infra.Module(),

		// Servers
		server.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
