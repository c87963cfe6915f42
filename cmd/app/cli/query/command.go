package query

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "sumstats.dev/explorer/cmd/app/cli"
	"sumstats.dev/explorer/internal/service"
)

type CommandDeps struct {
	fx.In

	ExplorerService *service.Explorer
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "run the pipeline once for a selection and print the result",
		Flags: append(cliapp.SelectionFlags(),
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: OutputSummary, Usage: "summary, table or json"},
		),
		Action: func(c *cli.Context) error {
			sel, accessible, err := cliapp.SelectionFromFlags(c)
			if err != nil {
				return err
			}
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(c, deps, sel, accessible)
		},
	}
}
