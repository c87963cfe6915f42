package model

// ExportFormat names a downloadable table encoding.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// ExportResult is an encoded table ready to be sent or stored.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}
