package pipeline

import (
	"math"

	"sumstats.dev/explorer/internal/core/palette"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

// ToLong emits one row per input row and box quantile, row-major, in
// model.BoxLabels order. Mean is not carried over.
func ToLong(rows []model.WideRow) []model.LongRow {
	long := make([]model.LongRow, 0, len(rows)*len(model.BoxLabels))
	for _, r := range rows {
		for i, v := range r.Box() {
			long = append(long, model.LongRow{
				RowKey:   r.RowKey,
				Variable: model.BoxLabels[i],
				Value:    v,
			})
		}
	}
	return long
}

// FromLong regroups long rows by their id columns in first-seen order.
// Mean is not recoverable and is NaN in the result.
func FromLong(long []model.LongRow) ([]model.WideRow, error) {
	index := map[model.RowKey]int{}
	rows := []model.WideRow{}
	for _, l := range long {
		i, ok := index[l.RowKey]
		if !ok {
			i = len(rows)
			index[l.RowKey] = i
			rows = append(rows, model.WideRow{RowKey: l.RowKey, Quantiles: model.Quantiles{Mean: math.NaN()}})
		}
		if l.Variable == model.LabelMean || !rows[i].Set(l.Variable, l.Value) {
			return nil, apperr.ErrSchema.Msg("unexpected quantile label %q", l.Variable)
		}
	}
	return rows, nil
}

// GlobalMean returns the Mean of the single row covering all genetic
// ancestries of the full gnomAD subset.
func GlobalMean(rows []model.WideRow) (float64, error) {
	var found []model.WideRow
	for _, r := range rows {
		if r.GenAnc == palette.GlobalCode && r.Subset == model.SubsetGnomad {
			found = append(found, r)
		}
	}

	switch len(found) {
	case 0:
		return 0, apperr.ErrNotFound.Msg("no %s/%s row in the filtered set", model.SubsetGnomad, palette.GlobalCode)
	case 1:
		return found[0].Mean, nil
	default:
		return 0, apperr.ErrDuplicate.Msg("%d %s/%s rows in the filtered set", len(found), model.SubsetGnomad, palette.GlobalCode)
	}
}
