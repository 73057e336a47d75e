package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
)

// Layout in points on an A4 portrait page. y is the text baseline measured from the top.
const (
	pdfFontFamily   = "Helvetica"
	pdfMarginLeft   = 50.0
	pdfDataIndent   = 60.0
	pdfTopBaseline  = 60.0
	pdfMarginBottom = 50.0
	pdfLineHeight   = 20.0
	pdfSectionGap   = 20.0

	pdfTitleSize   = 24.0
	pdfHeadingSize = 16.0
	pdfBodySize    = 12.0

	pdfQRSize = 64.0
)

const (
	kpiSectionTitle    = "Key Performance Indicators"
	seriesSectionTitle = "Monthly Data"
)

// PDFExporter implements PDF export using gofpdf
type PDFExporter struct {
	orientation string
	pageSize    string
	compress    bool
	linkURL     string
}

// PDFOption customises a PDFExporter
type PDFOption func(*PDFExporter)

// WithCompression toggles stream compression. Disabling it keeps page text greppable.
func WithCompression(enabled bool) PDFOption {
	return func(p *PDFExporter) {
		p.compress = enabled
	}
}

// WithDashboardLink stamps a QR code linking to url in the top right corner of the first page
func WithDashboardLink(url string) PDFOption {
	return func(p *PDFExporter) {
		p.linkURL = url
	}
}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter(opts ...PDFOption) *PDFExporter {
	p := &PDFExporter{
		orientation: "P", // Portrait
		pageSize:    "A4",
		compress:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// pdfLayout tracks the vertical cursor and starts a new page once it passes the bottom margin
type pdfLayout struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	y      float64
	bottom float64
}

func (l *pdfLayout) line(x float64, style string, size float64, text string) {
	if l.y > l.bottom {
		l.pdf.AddPage()
		l.y = pdfTopBaseline
	}
	l.pdf.SetFont(pdfFontFamily, style, size)
	l.pdf.Text(x, l.y, l.tr(text))
	l.y += pdfLineHeight
}

func (l *pdfLayout) gap() {
	l.y += pdfSectionGap
}

// Export exports data to PDF format
func (p *PDFExporter) Export(report *Report, writer io.Writer) error {
	pdf := gofpdf.New(p.orientation, "pt", p.pageSize, "")
	pdf.SetCompression(p.compress)
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetTitle(report.Title, true)
	pdf.SetAuthor(report.Author, true)
	pdf.SetCreator("marketing-insights export", true)
	if report.DocumentID != "" {
		pdf.SetKeywords("document-id:"+report.DocumentID, true)
	}
	if !report.CreatedAt.IsZero() {
		pdf.SetCreationDate(report.CreatedAt)
	}

	pdf.AddPage()

	if p.linkURL != "" {
		if err := p.drawLinkQR(pdf); err != nil {
			return err
		}
	}

	_, pageHeight := pdf.GetPageSize()
	layout := &pdfLayout{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""), // cp1252, covers the euro sign
		y:      pdfTopBaseline,
		bottom: pageHeight - pdfMarginBottom,
	}

	layout.line(pdfMarginLeft, "B", pdfTitleSize, report.Title)
	layout.gap()

	layout.line(pdfMarginLeft, "B", pdfHeadingSize, kpiSectionTitle)
	for _, kpi := range report.KPIs {
		layout.line(pdfDataIndent, "", pdfBodySize, kpiLine(kpi))
	}
	layout.gap()

	layout.line(pdfMarginLeft, "B", pdfHeadingSize, seriesSectionTitle)
	for _, s := range report.Series {
		layout.line(pdfDataIndent, "", pdfBodySize, seriesLine(s))
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to lay out PDF: %w", err)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

func (p *PDFExporter) drawLinkQR(pdf *gofpdf.Fpdf) error {
	png, err := encodeQR(p.linkURL)
	if err != nil {
		return err
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("dashboard-qr", opts, bytes.NewReader(png))

	pageWidth, _ := pdf.GetPageSize()
	x := pageWidth - pdfMarginLeft - pdfQRSize
	y := pdfTopBaseline - pdfTitleSize
	pdf.ImageOptions("dashboard-qr", x, y, pdfQRSize, pdfQRSize, false, opts, 0, p.linkURL)
	return nil
}

func kpiLine(kpi analytics.KPI) string {
	return fmt.Sprintf("%s: %s (Trend: %s)", kpi.Name, kpi.Value, kpi.Trend)
}

func seriesLine(s analytics.MonthlySeries) string {
	return fmt.Sprintf("- %s: Revenue %s%.2f / Expenses %s%.2f",
		s.Month, analytics.CurrencySymbol, s.Revenue, analytics.CurrencySymbol, s.Expenses)
}

// GetContentType returns the MIME type for PDF files
func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}
