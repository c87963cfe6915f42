package repo

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sumstats.dev/explorer/internal/app/appconfig"
	"sumstats.dev/explorer/internal/pkg/apperr"
	"sumstats.dev/explorer/internal/pkg/testentry"
)

func sourceFor(path string) *Source {
	return NewSource(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{DataPath: path}}, nil)
}

func TestLoadDatasetFromLocalCSV(t *testing.T) {
	testentry.QuietLogger(t)

	ds, err := LoadDataset(sourceFor(testentry.FixturePath()))
	require.NoError(t, err)
	assert.Equal(t, 10, ds.Len())
	assert.ElementsMatch(t, []string{"n_non_ref", "r_ti_tv"}, ds.Metrics())
	assert.Equal(t, testentry.FixturePath(), ds.Location)
	assert.False(t, ds.LoadedAt.IsZero())
}

func TestLoadDatasetMissingFile(t *testing.T) {
	testentry.QuietLogger(t)

	_, err := LoadDataset(sourceFor(filepath.Join(t.TempDir(), "absent.csv")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDatasetRejectsBadSchema(t *testing.T) {
	testentry.QuietLogger(t)

	p := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(p, []byte("subset,gen_anc\ngnomad,global\n"), 0o644))

	_, err := LoadDataset(sourceFor(p))
	assert.ErrorIs(t, err, apperr.ErrSchema)
}

func TestParsePicksReaderByExtension(t *testing.T) {
	csvBytes, err := os.ReadFile(testentry.FixturePath())
	require.NoError(t, err)

	fromCSV, err := Parse("s3://bucket/sumstats.csv", csvBytes)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(csvBytes)).ReadAll()
	require.NoError(t, err)

	f := excelize.NewFile()
	defer f.Close()
	for i, rec := range records {
		cells := make([]interface{}, len(rec))
		for j, v := range rec {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &cells))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	fromXLSX, err := Parse("data/SUMSTATS.XLSX", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, fromCSV.Len(), fromXLSX.Len())
	assert.Equal(t, fromCSV.Key(0), fromXLSX.Key(0))

	// a workbook is not valid CSV
	_, err = Parse("data/sumstats.csv", buf.Bytes())
	assert.Error(t, err)
}

func TestRetryableS3Error(t *testing.T) {
	assert.False(t, retryableS3Error(errors.Wrap(&smithy.GenericAPIError{Code: "NoSuchKey"}, "failed to invoke GetObject")))
	assert.False(t, retryableS3Error(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.True(t, retryableS3Error(&smithy.GenericAPIError{Code: "SlowDown"}))
	assert.True(t, retryableS3Error(errors.New("connection reset by peer")))
	assert.False(t, retryableS3Error(errors.Wrap(context.Canceled, "failed to invoke GetObject")))
}
