package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	kpiSheetName    = "KPIs"
	seriesSheetName = "Monthly Data"

	// excelize built-in number format 2 is "0.00"
	twoDecimalNumFmt = 2
)

var (
	kpiHeaders    = []interface{}{"Metric", "Value", "Trend"}
	seriesHeaders = []interface{}{"Month", "Revenue (€)", "Expenses (€)"}

	kpiColumnWidths    = map[string]float64{"A": 32, "B": 18, "C": 12}
	seriesColumnWidths = map[string]float64{"A": 14, "B": 16, "C": 16}
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes a workbook with a KPIs sheet and a Monthly Data sheet.
// The report title only goes into the document properties.
func (e *ExcelExporter) Export(report *Report, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", kpiSheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(seriesSheetName); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", seriesSheetName, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimalNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}

	if err := writeHeader(f, kpiSheetName, kpiHeaders, headerStyle, kpiColumnWidths); err != nil {
		return err
	}
	for i, kpi := range report.KPIs {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(kpiSheetName, cell, &[]interface{}{kpi.Name, kpi.Value, kpi.Trend}); err != nil {
			return fmt.Errorf("failed to write KPI row %d: %w", i+1, err)
		}
	}

	if err := writeHeader(f, seriesSheetName, seriesHeaders, headerStyle, seriesColumnWidths); err != nil {
		return err
	}
	for i, s := range report.Series {
		row := i + 2
		if err := f.SetSheetRow(seriesSheetName, fmt.Sprintf("A%d", row), &[]interface{}{s.Month, s.Revenue, s.Expenses}); err != nil {
			return fmt.Errorf("failed to write series row %d: %w", i+1, err)
		}
		if err := f.SetCellStyle(seriesSheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), numberStyle); err != nil {
			return fmt.Errorf("failed to style series row %d: %w", i+1, err)
		}
	}

	if err := f.SetDocProps(docProps(report)); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	f.SetActiveSheet(0)

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []interface{}, style int, widths map[string]float64) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set %s column %s width: %w", sheet, col, err)
		}
	}
	return nil
}

func docProps(report *Report) *excelize.DocProperties {
	created := report.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return &excelize.DocProperties{
		Title:       report.Title,
		Creator:     report.Author,
		Identifier:  report.DocumentID,
		Created:     created.UTC().Format(time.RFC3339),
		Description: "Marketing dashboard export",
	}
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}
