package cli

import (
	"github.com/urfave/cli/v2"

	"sumstats.dev/explorer/internal/constant"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/model/types"
	"sumstats.dev/explorer/internal/util/rekuest"
)

// SelectionFlags are the filter flags shared by every pipeline command.
func SelectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "metric", Value: constant.DefaultMetric, Usage: "metric to plot"},
		&cli.BoolFlag{Name: "variant-qc-pass", Value: constant.DefaultVariantQCPass, Usage: "restrict to variants passing QC"},
		&cli.StringFlag{Name: "sex-chr-nonpar-group", Value: constant.DefaultSexChrNonParGroup, Usage: "autosome_or_par, x_nonpar or y_nonpar"},
		&cli.StringFlag{Name: "capture", Usage: "capture intervals"},
		&cli.StringFlag{Name: "csq-set", Usage: "consequence set; exclusive with --csq"},
		&cli.StringFlag{Name: "csq", Usage: "single consequence; exclusive with --csq-set"},
		&cli.StringFlag{Name: "loftee-label", Usage: "LOFTEE label"},
		&cli.StringFlag{Name: "loftee-flags", Usage: "LOFTEE flags"},
		&cli.StringFlag{Name: "max-af", Usage: "maximum allele frequency threshold"},
		&cli.BoolFlag{Name: "accessible", Usage: "use the color-blind friendly palette"},
	}
}

// SelectionFromFlags reads and validates the selection flags of c.
func SelectionFromFlags(c *cli.Context) (model.Selection, bool, error) {
	req := types.SelectionRequest{
		Metric:            c.String("metric"),
		VariantQCPass:     c.Bool("variant-qc-pass"),
		SexChrNonParGroup: c.String("sex-chr-nonpar-group"),
		Capture:           c.String("capture"),
		CsqSet:            c.String("csq-set"),
		Csq:               c.String("csq"),
		LofteeLabel:       c.String("loftee-label"),
		LofteeFlags:       c.String("loftee-flags"),
		MaxAF:             c.String("max-af"),
		Accessible:        c.Bool("accessible"),
	}
	if err := rekuest.Struct(req); err != nil {
		return model.Selection{}, false, err
	}
	return req.Selection(), req.Accessible, nil
}
