package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "sumstats.dev/explorer/cmd/app/cli"
	"sumstats.dev/explorer/cmd/app/cli/export"
	"sumstats.dev/explorer/cmd/app/cli/query"
	"sumstats.dev/explorer/cmd/app/server"
	"sumstats.dev/explorer/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "sumstats",
		Description: "Explorer of gnomAD per-sample summary statistics. Filters the precomputed quantile table, reshapes it for grouped box plots and serves the result over HTTP. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			query.Command(cliapp.DepsFn[query.CommandDeps]()),
			export.Command(cliapp.DepsFn[export.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
