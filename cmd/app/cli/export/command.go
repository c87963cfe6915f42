package export

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "sumstats.dev/explorer/cmd/app/cli"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/archiver"
	"sumstats.dev/explorer/internal/service"
)

type CommandDeps struct {
	fx.In

	ExportService *service.Export
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "export the summary table of a selection to a local file or to s3://bucket/key",
		Flags: append(cliapp.SelectionFlags(),
			&cli.StringFlag{Name: "format", Value: string(model.ExportXLSX), Usage: "xlsx, csv or json"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "destination path or s3://bucket/key"},
			&cli.BoolFlag{Name: "overwrite", Usage: "replace an existing destination"},
		),
		Action: func(c *cli.Context) error {
			sel, _, err := cliapp.SelectionFromFlags(c)
			if err != nil {
				return err
			}
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(c, deps, sel)
		},
	}
}

func run(c *cli.Context, deps CommandDeps, sel model.Selection) error {
	format := model.ExportFormat(c.String("format"))
	out := c.String("out")
	overwrite := c.Bool("overwrite")

	if strings.HasPrefix(out, archiver.Scheme) {
		return deps.ExportService.Publish(c.Context, sel, format, out, overwrite)
	}

	res, err := deps.ExportService.Export(c.Context, sel, format)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(out, flags, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open export destination")
	}
	defer f.Close()

	if _, err := f.Write(res.Body); err != nil {
		return errors.Wrap(err, "failed to write export")
	}

	log.Info().
		Str("evt.name", "cli.export.written").
		Str("out", out).
		Str("format", string(format)).
		Int("size", len(res.Body)).
		Msg("export written")
	return nil
}
