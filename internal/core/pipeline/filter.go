// Package pipeline turns a selection into the rows, long table and global mean
// rendered by the explorer. All functions are pure over an immutable table.
package pipeline

import (
	"sumstats.dev/explorer/internal/core/table"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

// Validate rejects selections that refine by consequence set and single
// consequence at once.
func Validate(sel model.Selection) error {
	if sel.CsqSet != "" && sel.Csq != "" {
		return apperr.ErrInvalidSelection.Msg("csq_set %q and csq %q are mutually exclusive: choose one", sel.CsqSet, sel.Csq)
	}
	return nil
}

// Filter returns the rows of t whose filter columns equal sel exactly, with
// the statistics of sel.Metric under their canonical names. Rows keep source
// order. No match yields an empty, non-nil slice.
func Filter(t *table.Table, sel model.Selection) ([]model.WideRow, error) {
	if err := Validate(sel); err != nil {
		return nil, err
	}

	cols, err := t.StatColumns(sel.Metric)
	if err != nil {
		return nil, err
	}

	rows := []model.WideRow{}
	for i := 0; i < t.Len(); i++ {
		key := t.Key(i)
		if !sel.Matches(key) {
			continue
		}
		rows = append(rows, model.WideRow{
			RowKey: key,
			Quantiles: model.Quantiles{
				Minimum: t.Value(i, cols[0]),
				Q1:      t.Value(i, cols[1]),
				Median:  t.Value(i, cols[2]),
				Q3:      t.Value(i, cols[3]),
				Maximum: t.Value(i, cols[4]),
				Mean:    t.Value(i, cols[5]),
			},
		})
	}

	return rows, nil
}
