package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
)

const header = "subset,gen_anc,sex_chr_nonpar_group,variant_qc,capture,csq_set,csq,loftee_label,loftee_flags,max_af"

func csvOf(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestReadCSV(t *testing.T) {
	src := csvOf(
		header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean,n_samples",
		"gnomad,global,autosome_or_par,pass,,,,,,,1,2,3,4,5,3.5,100",
		"gnomad,afr,autosome_or_par,pass,,lof,,HC,,0.001,2,3,4,5,6,4.5,50",
	)

	tbl, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"n_het"}, tbl.Metrics())
	assert.Equal(t, []string{"n_samples"}, tbl.Ignored())
	assert.True(t, tbl.HasMetric("n_het"))
	assert.False(t, tbl.HasMetric("n_snp"))

	k := tbl.Key(1)
	assert.Equal(t, model.RowKey{
		Subset:            "gnomad",
		GenAnc:            "afr",
		SexChrNonParGroup: "autosome_or_par",
		VariantQC:         "pass",
		CsqSet:            "lof",
		LofteeLabel:       "HC",
		MaxAF:             "0.001",
	}, k)

	cols, err := tbl.StatColumns("n_het")
	require.NoError(t, err)
	assert.Equal(t, 2.0, tbl.Value(1, cols[0]))
	assert.Equal(t, 4.5, tbl.Value(1, cols[5]))
}

func TestReadCSVMetricNamesWithUnderscores(t *testing.T) {
	src := csvOf(
		header+",n_non_ref_alleles_min,n_non_ref_alleles_q25,n_non_ref_alleles_q50,n_non_ref_alleles_q75,n_non_ref_alleles_max,n_non_ref_alleles_mean",
		"gnomad,global,autosome_or_par,pass,,,,,,,1,2,3,4,5,3",
	)

	tbl, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"n_non_ref_alleles"}, tbl.Metrics())
}

func TestSchemaErrors(t *testing.T) {
	cases := map[string]string{
		"missing id column": csvOf(
			"subset,gen_anc,n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean",
			"gnomad,global,1,2,3,4,5,3",
		),
		"incomplete metric": csvOf(
			header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max",
			"gnomad,global,autosome_or_par,pass,,,,,,,1,2,3,4,5",
		),
		"non numeric statistic": csvOf(
			header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean",
			"gnomad,global,autosome_or_par,pass,,,,,,,1,2,x,4,5,3",
		),
		"empty statistic": csvOf(
			header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean",
			"gnomad,global,autosome_or_par,pass,,,,,,,1,2,,4,5,3",
		),
		"nan statistic": csvOf(
			header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean",
			"gnomad,global,autosome_or_par,pass,,,,,,,1,2,NaN,4,5,3",
		),
		"ragged row": csvOf(
			header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean",
			"gnomad,global,autosome_or_par,pass,,,,,,,1,2,3,4,5",
		),
		"empty input": "",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(src))
			assert.ErrorIs(t, err, apperr.ErrSchema)
		})
	}
}

func TestDuplicateKey(t *testing.T) {
	src := csvOf(
		header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean",
		"gnomad,global,autosome_or_par,pass,,,,,,,1,2,3,4,5,3",
		"gnomad,afr,autosome_or_par,pass,,,,,,,1,2,3,4,5,3",
		"gnomad,global,autosome_or_par,pass,,,,,,,6,7,8,9,10,8",
	)

	_, err := ReadCSV(strings.NewReader(src))
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
	assert.Contains(t, err.Error(), "line 4")
}

func TestStatColumnsUnknownMetric(t *testing.T) {
	tbl, err := Parse(strings.Split(header+",n_het_min,n_het_q25,n_het_q50,n_het_q75,n_het_max,n_het_mean", ","), nil)
	require.NoError(t, err)

	_, err = tbl.StatColumns("n_snp")
	assert.ErrorIs(t, err, apperr.ErrSchema)
	assert.Equal(t, 0, tbl.Len())
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"subset", "gen_anc", "sex_chr_nonpar_group", "variant_qc", "capture", "csq_set", "csq", "loftee_label", "loftee_flags", "max_af",
			"n_het_min", "n_het_q25", "n_het_q50", "n_het_q75", "n_het_max", "n_het_mean"},
		{"gnomad", "global", "autosome_or_par", "pass", "", "", "", "", "", "", 1, 2, 3, 4, 5, 3.5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	cols, err := tbl.StatColumns("n_het")
	require.NoError(t, err)
	assert.Equal(t, 3.5, tbl.Value(0, cols[5]))
	assert.Equal(t, "global", tbl.Key(0).GenAnc)
}
