package table

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"sumstats.dev/explorer/internal/pkg/apperr"
)

// ReadCSV parses a comma separated table with a header line.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	// ragged lines are reported by Parse with their line number
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, apperr.ErrSchema.Msg("source table is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv records")
	}

	return Parse(header, records)
}

// ReadXLSX parses the first sheet of a workbook with a header row.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.ErrSchema.Msg("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}
	if len(rows) == 0 {
		return nil, apperr.ErrSchema.Msg("sheet %q is empty", sheets[0])
	}

	header := rows[0]
	records := rows[1:]
	// excelize drops trailing empty cells
	for i, rec := range records {
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			records[i] = padded
		}
	}

	return Parse(header, records)
}
