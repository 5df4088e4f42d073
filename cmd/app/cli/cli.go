package cli

import (
	"context"

	"go.uber.org/fx"

	"exusiai.dev/shufflestat/internal/app"
	"exusiai.dev/shufflestat/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// DepsFn populates T from the application graph on first use.
func DepsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := Start(fx.Populate(&deps))
		return deps, err
	}
}
