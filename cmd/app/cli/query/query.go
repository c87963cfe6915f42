package query

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"sumstats.dev/explorer/internal/model"
)

const (
	OutputSummary = "summary"
	OutputTable   = "table"
	OutputJSON    = "json"
)

func run(c *cli.Context, deps CommandDeps, sel model.Selection, accessible bool) error {
	view, _, err := deps.ExplorerService.View(c.Context, sel, accessible)
	if err != nil {
		return err
	}
	return write(c.App.Writer, c.String("output"), view)
}

func write(w io.Writer, output string, view *model.View) error {
	switch output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case OutputTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "subset\tgen_anc\tsex_chr_nonpar_group\tvariable\tvalue")
		for _, r := range view.Table {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Subset, r.GenAnc, r.SexChrNonParGroup, r.Variable, strconv.FormatFloat(r.Value, 'f', -1, 64))
		}
		return tw.Flush()
	case OutputSummary:
		fmt.Fprintf(w, "selection:        %s\n", view.Selection)
		fmt.Fprintf(w, "number of rows:   %d\n", view.RowCount)
		fmt.Fprintf(w, "long rows:        %d\n", view.LongRowCount)
		if view.GlobalMean.Error != nil {
			fmt.Fprintf(w, "full dataset mean: unavailable (%s: %s)\n", view.GlobalMean.Error.Code, view.GlobalMean.Error.Message)
		} else {
			fmt.Fprintf(w, "full dataset mean: %s\n", view.GlobalMean.Formatted)
		}
		return nil
	}
	return fmt.Errorf("unknown output %q: expect %s, %s or %s", output, OutputSummary, OutputTable, OutputJSON)
}
