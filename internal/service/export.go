package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"sumstats.dev/explorer/internal/core/pipeline"
	"sumstats.dev/explorer/internal/model"
	"sumstats.dev/explorer/internal/pkg/apperr"
	"sumstats.dev/explorer/internal/pkg/archiver"
)

const (
	SheetLong      = "long"
	SheetWide      = "wide"
	SheetSelection = "selection"

	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMECSV  = "text/csv; charset=utf-8"
	MIMEJSON = "application/json"
)

type Export struct {
	ExplorerService *Explorer
	Archive         func(dest string, overwrite bool) (*archiver.Archiver, error)
}

func NewExport(explorerService *Explorer, s3Client *s3.Client) *Export {
	return &Export{
		ExplorerService: explorerService,
		Archive: func(dest string, overwrite bool) (*archiver.Archiver, error) {
			return archiver.New(s3Client, dest, overwrite)
		},
	}
}

// Export encodes the summary table of sel. Workbooks additionally carry the regrouped
// wide rows and the selection itself.
func (s *Export) Export(ctx context.Context, sel model.Selection, format model.ExportFormat) (*model.ExportResult, error) {
	long, err := s.ExplorerService.Long(ctx, sel)
	if err != nil {
		return nil, err
	}
	rows, err := TableRows(long)
	if err != nil {
		return nil, err
	}

	base := "sumstats_" + sel.Metric
	switch format {
	case model.ExportCSV:
		b, err := encodeCSV(rows)
		if err != nil {
			return nil, err
		}
		return &model.ExportResult{Filename: base + ".csv", ContentType: MIMECSV, Body: b}, nil
	case model.ExportJSON:
		b, err := json.Marshal(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal table rows")
		}
		return &model.ExportResult{Filename: base + ".json", ContentType: MIMEJSON, Body: b}, nil
	case model.ExportXLSX:
		wide, err := pipeline.FromLong(long)
		if err != nil {
			return nil, err
		}
		b, err := encodeXLSX(sel, rows, wide)
		if err != nil {
			return nil, err
		}
		return &model.ExportResult{Filename: base + ".xlsx", ContentType: MIMEXLSX, Body: b}, nil
	}
	return nil, apperr.ErrInvalidReq.Msg("unknown export format %q", format)
}

// Publish exports sel and uploads it to an s3://bucket/key destination.
func (s *Export) Publish(ctx context.Context, sel model.Selection, format model.ExportFormat, dest string, overwrite bool) error {
	a, err := s.Archive(dest, overwrite)
	if err != nil {
		return err
	}
	res, err := s.Export(ctx, sel, format)
	if err != nil {
		return err
	}
	return a.Publish(ctx, res.Body, res.ContentType)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func encodeCSV(rows []model.TableRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(model.TableColumns); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Subset, r.GenAnc, r.SexChrNonParGroup, r.Variable, formatFloat(r.Value)}); err != nil {
			return nil, errors.Wrap(err, "failed to write csv record")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(ss []string) []interface{} {
	cells := make([]interface{}, len(ss))
	for i, s := range ss {
		cells[i] = s
	}
	return cells
}

func encodeXLSX(sel model.Selection, rows []model.TableRow, wide []model.WideRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetLong); err != nil {
		return nil, errors.Wrap(err, "failed to rename sheet")
	}
	for _, name := range []string{SheetWide, SheetSelection} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrapf(err, "failed to create sheet %q", name)
		}
	}

	if err := writeRow(f, SheetLong, 1, toCells(model.TableColumns)); err != nil {
		return nil, errors.Wrap(err, "failed to write long header")
	}
	for i, r := range rows {
		if err := writeRow(f, SheetLong, i+2, []interface{}{r.Subset, r.GenAnc, r.SexChrNonParGroup, r.Variable, r.Value}); err != nil {
			return nil, errors.Wrap(err, "failed to write long row")
		}
	}

	if err := writeRow(f, SheetWide, 1, toCells(append(append([]string{}, model.IDColumns...), model.BoxLabels...))); err != nil {
		return nil, errors.Wrap(err, "failed to write wide header")
	}
	for i, w := range wide {
		cells := toCells(w.Values())
		for _, v := range w.Box() {
			cells = append(cells, v)
		}
		if err := writeRow(f, SheetWide, i+2, cells); err != nil {
			return nil, errors.Wrap(err, "failed to write wide row")
		}
	}

	selection := [][]interface{}{
		{"metric", sel.Metric},
		{model.ColVariantQC, sel.VariantQC()},
		{model.ColSexChrNonParGroup, sel.SexChrNonParGroup},
		{model.ColCapture, sel.Capture},
		{model.ColCsqSet, sel.CsqSet},
		{model.ColCsq, sel.Csq},
		{model.ColLofteeLabel, sel.LofteeLabel},
		{model.ColLofteeFlags, sel.LofteeFlags},
		{model.ColMaxAF, sel.MaxAF},
	}
	for i, kv := range selection {
		if err := writeRow(f, SheetSelection, i+1, kv); err != nil {
			return nil, errors.Wrap(err, "failed to write selection")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}
	return buf.Bytes(), nil
}

// ContentDisposition is the attachment header value for res.
func ContentDisposition(res *model.ExportResult) string {
	return fmt.Sprintf("attachment; filename=%q", res.Filename)
}
