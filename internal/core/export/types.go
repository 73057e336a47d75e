package export

import (
	"io"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "xls"
)

// SupportedFormats lists every format a request may ask for, in display order
var SupportedFormats = []ExportFormat{FormatPDF, FormatExcel}

// Valid reports whether f is one of SupportedFormats
func (f ExportFormat) Valid() bool {
	for _, s := range SupportedFormats {
		if f == s {
			return true
		}
	}
	return false
}

// Exporter is the interface for all export formats
type Exporter interface {
	Export(report *Report, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// Report is everything a generator needs to render one export
type Report struct {
	Title     string
	Author    string
	CreatedAt time.Time
	// DocumentID is written into document metadata so two exports can be told apart
	DocumentID string

	KPIs   []analytics.KPI
	Series []analytics.MonthlySeries
}

// Document is a rendered export ready to be written to a response
type Document struct {
	Data        []byte
	ContentType string
	Filename    string
}

// SelectedItems names the dashboard tables and graphs the user ticked in the export dialog
type SelectedItems struct {
	Data   []string `json:"data"`
	Graphs []string `json:"graphs"`
}

// ExportRequest is the body of an export call
type ExportRequest struct {
	TabTitle      string        `json:"tabTitle"`
	SelectedItems SelectedItems `json:"selectedItems"`
	Format        ExportFormat  `json:"format"`
}

// ReportTitle is the heading rendered at the top of the document
func (r ExportRequest) ReportTitle() string {
	title := strings.TrimSpace(r.TabTitle)
	if title == "" {
		return "Dashboard Report"
	}
	return title + " Report"
}

// SuggestedFilename follows the dashboard download naming: report-<tab>.<ext>
func SuggestedFilename(tabTitle string, format ExportFormat) string {
	ext := ".pdf"
	if format == FormatExcel {
		ext = ".xlsx"
	}
	name := strings.Join(strings.Fields(strings.ToLower(tabTitle)), "-")
	if name == "" {
		return "report" + ext
	}
	return "report-" + name + ext
}
