package controller

import (
	"go.uber.org/fx"

	controllermeta "sumstats.dev/explorer/internal/controller/meta"
	controllerv1 "sumstats.dev/explorer/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
