package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
)

// Service provides high-level export functionality
type Service struct {
	exporters map[ExportFormat]Exporter
	author    string
	now       func() time.Time
}

// ServiceOption customises a Service
type ServiceOption func(*Service)

// WithExporter overrides the exporter used for a format
func WithExporter(format ExportFormat, exporter Exporter) ServiceOption {
	return func(s *Service) {
		s.exporters[format] = exporter
	}
}

// WithAuthor sets the author written into document metadata
func WithAuthor(author string) ServiceOption {
	return func(s *Service) {
		s.author = author
	}
}

// WithClock sets the time source used for document creation dates
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new export service
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		exporters: map[ExportFormat]Exporter{
			FormatPDF:   NewPDFExporter(),
			FormatExcel: NewExcelExporter(),
		},
		author: "Marketing Insights",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewReport assembles the generator input for one export
func (s *Service) NewReport(title string, kpis []analytics.KPI, series []analytics.MonthlySeries) *Report {
	return &Report{
		Title:      title,
		Author:     s.author,
		CreatedAt:  s.now(),
		DocumentID: uuid.NewString(),
		KPIs:       kpis,
		Series:     series,
	}
}

// Generate renders report in the given format. Rendering failures come back as *GenerationError.
func (s *Service) Generate(format ExportFormat, report *Report) (*Document, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, &ValidationError{Fields: []FieldError{{
			Field:   "format",
			Message: fmt.Sprintf("%q is not supported, must be one of %s", string(format), AllowedFormatsText()),
		}}}
	}

	var buf bytes.Buffer
	if err := exporter.Export(report, &buf); err != nil {
		return nil, &GenerationError{Format: format, Err: err}
	}

	return &Document{
		Data:        buf.Bytes(),
		ContentType: exporter.GetContentType(),
		Filename:    "report" + exporter.GetFileExtension(),
	}, nil
}

// GetContentType returns the content type for the given format
func (s *Service) GetContentType(format ExportFormat) string {
	if exporter, ok := s.exporters[format]; ok {
		return exporter.GetContentType()
	}
	return "application/octet-stream"
}

// GetFileExtension returns the file extension for the given format
func (s *Service) GetFileExtension(format ExportFormat) string {
	if exporter, ok := s.exporters[format]; ok {
		return exporter.GetFileExtension()
	}
	return ".bin"
}
