package server

import (
	"go.uber.org/fx"

	"sumstats.dev/explorer/internal/server/httpserver"
	"sumstats.dev/explorer/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
