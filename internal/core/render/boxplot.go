// Package render builds renderer-agnostic figure specifications.
package render

import (
	"github.com/samber/lo"

	"sumstats.dev/explorer/internal/core/palette"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

const (
	TraceTypeBox  = "box"
	BoxModeGroup  = "group"
	TemplateWhite = "simple_white"
)

// Boxplot groups long rows into one trace per rendered category, in display
// order, placing boxes of the same subset side by side. A row whose genetic
// ancestry is not rendered is an error.
func Boxplot(rows []model.LongRow, accessible bool) (*model.PlotSpec, error) {
	if bad, ok := lo.Find(rows, func(r model.LongRow) bool { return !palette.IsCanonical(r.GenAnc) }); ok {
		return nil, apperr.ErrUnknownCategory.Msg("genetic ancestry %q of subset %q cannot be rendered", bad.GenAnc, bad.Subset)
	}

	byCode := lo.GroupBy(rows, func(r model.LongRow) string { return r.GenAnc })

	cats := palette.Categories()
	traces := make([]model.BoxTrace, 0, len(cats))
	for _, c := range cats {
		members := byCode[c.Code]
		trace := model.BoxTrace{
			Type:           TraceTypeBox,
			Code:           c.Code,
			Name:           c.Name,
			X:              lo.Map(members, func(r model.LongRow, _ int) string { return r.Subset }),
			Y:              lo.Map(members, func(r model.LongRow, _ int) float64 { return r.Value }),
			MarkerColor:    c.ColorFor(accessible),
			QuartileMethod: model.QuartileMethodExclusive,
			Boxes:          []model.BoxStats{},
		}

		bySubset := lo.GroupBy(members, func(r model.LongRow) string { return r.Subset })
		for _, subset := range lo.Uniq(trace.X) {
			box, err := ExclusiveBox(lo.Map(bySubset[subset], func(r model.LongRow, _ int) float64 { return r.Value }))
			if err != nil {
				return nil, err
			}
			box.X = subset
			trace.Boxes = append(trace.Boxes, box)
		}

		traces = append(traces, trace)
	}

	return &model.PlotSpec{
		Traces: traces,
		Layout: model.PlotLayout{
			Template:    TemplateWhite,
			LegendTitle: "Genetic Ancestry",
			XAxisTitle:  "Subset",
			YAxisTitle:  "Value",
			ShowLegend:  true,
			BoxMode:     BoxModeGroup,
		},
	}, nil
}
