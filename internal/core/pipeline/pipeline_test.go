package pipeline

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sumstats.dev/explorer/internal/core/table"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
	"sumstats.dev/explorer/internal/pkg/testentry"
)

func fixture(t *testing.T) *table.Table {
	t.Helper()
	f, err := os.Open(testentry.FixturePath())
	require.NoError(t, err)
	defer f.Close()

	tbl, err := table.ReadCSV(f)
	require.NoError(t, err)
	return tbl
}

func defaultSelection() model.Selection {
	return model.Selection{
		Metric:            "n_non_ref",
		VariantQCPass:     true,
		SexChrNonParGroup: "autosome_or_par",
	}
}

func TestFilterExactMatch(t *testing.T) {
	tbl := fixture(t)
	sel := defaultSelection()

	rows, err := Filter(tbl, sel)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, r := range rows {
		assert.True(t, sel.Matches(r.RowKey))
		assert.Equal(t, "pass", r.VariantQC)
		assert.Equal(t, "autosome_or_par", r.SexChrNonParGroup)
		assert.Empty(t, r.Capture)
		assert.Empty(t, r.CsqSet)
		assert.Empty(t, r.Csq)
		assert.Empty(t, r.MaxAF)
	}

	assert.Equal(t, model.Quantiles{Minimum: 10, Q1: 20, Median: 30, Q3: 40, Maximum: 50, Mean: 42.3}, rows[0].Quantiles)
	assert.Equal(t, "afr", rows[1].GenAnc)
}

func TestFilterIsSubsetOfTable(t *testing.T) {
	tbl := fixture(t)
	selections := []model.Selection{
		defaultSelection(),
		{Metric: "n_non_ref", SexChrNonParGroup: "autosome_or_par"},
		{Metric: "r_ti_tv", VariantQCPass: true, SexChrNonParGroup: "x_nonpar"},
		{Metric: "n_non_ref", VariantQCPass: true, SexChrNonParGroup: "autosome_or_par", CsqSet: "lof"},
		{Metric: "n_non_ref", VariantQCPass: true, SexChrNonParGroup: "autosome_or_par", Csq: "missense_variant", MaxAF: "0.01"},
	}

	for _, sel := range selections {
		rows, err := Filter(tbl, sel)
		require.NoError(t, err, sel.String())

		expected := 0
		for i := 0; i < tbl.Len(); i++ {
			if sel.Matches(tbl.Key(i)) {
				expected++
			}
		}
		assert.Len(t, rows, expected, sel.String())
		assert.NotZero(t, expected, sel.String())
	}
}

func TestFilterQCFlag(t *testing.T) {
	tbl := fixture(t)
	sel := defaultSelection()
	sel.VariantQCPass = false

	rows, err := Filter(tbl, sel)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].VariantQC)
	assert.Equal(t, 44.1, rows[0].Mean)
}

func TestFilterEmptyIsNotWildcard(t *testing.T) {
	tbl := fixture(t)
	sel := defaultSelection()
	sel.SexChrNonParGroup = ""

	rows, err := Filter(tbl, sel)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Empty(t, ToLong(rows))
}

func TestFilterCaseSensitive(t *testing.T) {
	tbl := fixture(t)
	sel := defaultSelection()
	sel.SexChrNonParGroup = "AUTOSOME_OR_PAR"

	rows, err := Filter(tbl, sel)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFilterMutualExclusivity(t *testing.T) {
	tbl := fixture(t)

	for _, sel := range []model.Selection{
		{Metric: "n_non_ref", CsqSet: "lof", Csq: "stop_gained"},
		{Metric: "n_non_ref", VariantQCPass: true, SexChrNonParGroup: "autosome_or_par", CsqSet: "lof", Csq: "stop_gained", MaxAF: "0.01"},
		// validation precedes the metric lookup
		{Metric: "does_not_exist", CsqSet: "lof", Csq: "stop_gained"},
	} {
		rows, err := Filter(tbl, sel)
		assert.ErrorIs(t, err, apperr.ErrInvalidSelection)
		assert.Nil(t, rows)
	}
}

func TestFilterUnknownMetric(t *testing.T) {
	tbl := fixture(t)
	sel := defaultSelection()
	sel.Metric = "n_snp"

	_, err := Filter(tbl, sel)
	assert.ErrorIs(t, err, apperr.ErrSchema)
}

func TestToLong(t *testing.T) {
	tbl := fixture(t)
	rows, err := Filter(tbl, defaultSelection())
	require.NoError(t, err)

	long := ToLong(rows)
	require.Len(t, long, 5*len(rows))

	assert.Equal(t, []string{"Minimum", "Q1", "Median", "Q3", "Maximum"}, []string{
		long[0].Variable, long[1].Variable, long[2].Variable, long[3].Variable, long[4].Variable,
	})
	assert.Equal(t, rows[0].RowKey, long[4].RowKey)
	assert.Equal(t, rows[1].RowKey, long[5].RowKey)
	for _, l := range long {
		assert.NotEqual(t, model.LabelMean, l.Variable)
	}

	assert.Equal(t, long, ToLong(rows))
}

func TestLongRoundTrip(t *testing.T) {
	tbl := fixture(t)
	for _, metric := range tbl.Metrics() {
		sel := defaultSelection()
		sel.Metric = metric
		rows, err := Filter(tbl, sel)
		require.NoError(t, err)

		back, err := FromLong(ToLong(rows))
		require.NoError(t, err)
		require.Len(t, back, len(rows))
		for i := range rows {
			assert.Equal(t, rows[i].RowKey, back[i].RowKey)
			assert.Equal(t, rows[i].Box(), back[i].Box())
			assert.True(t, math.IsNaN(back[i].Mean))
		}
	}
}

func TestFromLongRejectsUnknownLabel(t *testing.T) {
	_, err := FromLong([]model.LongRow{{Variable: "Mean", Value: 1}})
	assert.ErrorIs(t, err, apperr.ErrSchema)

	_, err = FromLong([]model.LongRow{{Variable: "q25", Value: 1}})
	assert.ErrorIs(t, err, apperr.ErrSchema)
}

func TestGlobalMean(t *testing.T) {
	tbl := fixture(t)
	rows, err := Filter(tbl, defaultSelection())
	require.NoError(t, err)

	mean, err := GlobalMean(rows)
	require.NoError(t, err)
	assert.Equal(t, 42.3, mean)

	again, err := GlobalMean(rows)
	require.NoError(t, err)
	assert.Equal(t, mean, again)
}

func TestGlobalMeanNotFound(t *testing.T) {
	tbl := fixture(t)
	sel := defaultSelection()
	sel.Capture = "broad"

	rows, err := Filter(tbl, sel)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = GlobalMean(rows)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = GlobalMean(nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGlobalMeanDuplicate(t *testing.T) {
	global := model.WideRow{RowKey: model.RowKey{Subset: "gnomad", GenAnc: "global"}, Quantiles: model.Quantiles{Mean: 1}}
	other := global
	other.Capture = "broad"
	other.Mean = 2

	_, err := GlobalMean([]model.WideRow{global, other})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestSingleRowScenario(t *testing.T) {
	header := append(append([]string{}, model.IDColumns...),
		"n_non_ref_min", "n_non_ref_q25", "n_non_ref_q50", "n_non_ref_q75", "n_non_ref_max", "n_non_ref_mean")
	tbl, err := table.Parse(header, [][]string{
		{"gnomad", "global", "autosome_or_par", "pass", "", "", "", "", "", "", "1", "2", "3", "4", "5", "42.3"},
	})
	require.NoError(t, err)

	rows, err := Filter(tbl, defaultSelection())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Len(t, ToLong(rows), 5)

	mean, err := GlobalMean(rows)
	require.NoError(t, err)
	assert.Equal(t, 42.3, mean)
}
