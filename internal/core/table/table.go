// Package table holds the immutable source table of per-sample summary statistics.
package table

import (
	"math"
	"strconv"
	"strings"

	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

// Table is safe for concurrent reads. It is never mutated after Parse returns.
type Table struct {
	keys    []model.RowKey
	values  [][]float64
	columns map[string]int
	metrics []string
	ignored []string
}

// Parse builds a Table from a header and its records.
//
// Every id column must be present. Any other column named {metric}_{stat},
// with stat one of min, q25, q50, q75, max, mean, belongs to metric, and a
// metric must carry all six. Remaining columns are reported by Ignored.
func Parse(header []string, records [][]string) (*Table, error) {
	idIdx := make(map[string]int, len(model.IDColumns))
	columns := make(map[string]int)
	statIdx := []int{}
	seen := map[string]map[string]bool{}
	var metrics, ignored []string

	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if isIDColumn(h) {
			if _, dup := idIdx[h]; dup {
				return nil, apperr.ErrSchema.Msg("duplicate column %q", h)
			}
			idIdx[h] = i
			continue
		}
		metric, stat, ok := splitStatColumn(h)
		if !ok {
			ignored = append(ignored, h)
			continue
		}
		if _, dup := columns[h]; dup {
			return nil, apperr.ErrSchema.Msg("duplicate column %q", h)
		}
		if seen[metric] == nil {
			seen[metric] = map[string]bool{}
			metrics = append(metrics, metric)
		}
		seen[metric][stat] = true
		columns[h] = len(statIdx)
		statIdx = append(statIdx, i)
	}

	for _, col := range model.IDColumns {
		if _, ok := idIdx[col]; !ok {
			return nil, apperr.ErrSchema.Msg("missing id column %q", col)
		}
	}
	for _, metric := range metrics {
		for _, stat := range model.StatSuffixes {
			if !seen[metric][stat] {
				return nil, apperr.ErrSchema.Msg("metric %q lacks column %q", metric, StatColumn(metric, stat))
			}
		}
	}

	t := &Table{
		keys:    make([]model.RowKey, 0, len(records)),
		values:  make([][]float64, 0, len(records)),
		columns: columns,
		metrics: metrics,
		ignored: ignored,
	}
	index := make(map[model.RowKey]int, len(records))

	for n, rec := range records {
		line := n + 2
		if len(rec) != len(header) {
			return nil, apperr.ErrSchema.Msg("line %d: expected %d fields, got %d", line, len(header), len(rec))
		}
		key := model.RowKey{
			Subset:            rec[idIdx[model.ColSubset]],
			GenAnc:            rec[idIdx[model.ColGenAnc]],
			SexChrNonParGroup: rec[idIdx[model.ColSexChrNonParGroup]],
			VariantQC:         rec[idIdx[model.ColVariantQC]],
			Capture:           rec[idIdx[model.ColCapture]],
			CsqSet:            rec[idIdx[model.ColCsqSet]],
			Csq:               rec[idIdx[model.ColCsq]],
			LofteeLabel:       rec[idIdx[model.ColLofteeLabel]],
			LofteeFlags:       rec[idIdx[model.ColLofteeFlags]],
			MaxAF:             rec[idIdx[model.ColMaxAF]],
		}
		if prev, dup := index[key]; dup {
			return nil, apperr.ErrDuplicate.Msg("line %d: id columns repeat line %d", line, prev+2)
		}
		index[key] = n

		vals := make([]float64, len(statIdx))
		for j, i := range statIdx {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, apperr.ErrSchema.Msg("line %d: column %q: %q is not a finite number", line, header[i], rec[i])
			}
			vals[j] = v
		}

		t.keys = append(t.keys, key)
		t.values = append(t.values, vals)
	}

	return t, nil
}

// StatColumn names the column holding stat of metric.
func StatColumn(metric, stat string) string {
	return metric + "_" + stat
}

func isIDColumn(name string) bool {
	for _, c := range model.IDColumns {
		if c == name {
			return true
		}
	}
	return false
}

func splitStatColumn(name string) (metric, stat string, ok bool) {
	i := strings.LastIndexByte(name, '_')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	metric, stat = name[:i], name[i+1:]
	for _, s := range model.StatSuffixes {
		if s == stat {
			return metric, stat, true
		}
	}
	return "", "", false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.keys)
}

// Key returns the id columns of row i.
func (t *Table) Key(i int) model.RowKey {
	return t.keys[i]
}

// Metrics lists the tracked metrics in header order.
func (t *Table) Metrics() []string {
	return append([]string(nil), t.metrics...)
}

// Ignored lists header columns that are neither id nor statistic columns.
func (t *Table) Ignored() []string {
	return append([]string(nil), t.ignored...)
}

// HasMetric reports whether all six statistics of metric are present.
func (t *Table) HasMetric(metric string) bool {
	_, err := t.StatColumns(metric)
	return err == nil
}

// StatColumns resolves the six statistic columns of metric, in model.StatSuffixes order.
func (t *Table) StatColumns(metric string) ([6]int, error) {
	var cols [6]int
	for i, stat := range model.StatSuffixes {
		c, ok := t.columns[StatColumn(metric, stat)]
		if !ok {
			return cols, apperr.ErrSchema.Msg("column %q not found in source table", StatColumn(metric, stat))
		}
		cols[i] = c
	}
	return cols, nil
}

// Value returns the statistic at column col, as resolved by StatColumns, of row i.
func (t *Table) Value(i, col int) float64 {
	return t.values[i][col]
}
