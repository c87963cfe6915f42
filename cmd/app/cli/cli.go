package cli

import (
	"context"

	"go.uber.org/fx"

	"sumstats.dev/explorer/internal/app"
	"sumstats.dev/explorer/internal/app/appcontext"
)

// Start builds the application graph without serving HTTP, for one-shot commands.
func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// DepsFn returns a function resolving T from the application graph.
func DepsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := Start(fx.Populate(&deps))
		return deps, err
	}
}
