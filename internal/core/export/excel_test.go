package export

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func renderWorkbook(t *testing.T, report *Report) (*excelize.File, []byte) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewExcelExporter().Export(report, &buf))

	data := buf.Bytes()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, data
}

func TestExcelExporter_OfflineScenario(t *testing.T) {
	f, data := renderWorkbook(t, sampleReport("Offline Report"))

	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
	assert.Equal(t, []string{"KPIs", "Monthly Data"}, f.GetSheetList())

	kpiRows, err := f.GetRows("KPIs")
	require.NoError(t, err)
	require.Len(t, kpiRows, 4)
	assert.Equal(t, []string{"Metric", "Value", "Trend"}, kpiRows[0])
	assert.Equal(t, []string{"Total Revenue", "€125,430.50", "+12.5%"}, kpiRows[1])
	assert.Equal(t, []string{"Active Campaigns", "12", "+20.0%"}, kpiRows[3])

	seriesRows, err := f.GetRows("Monthly Data")
	require.NoError(t, err)
	require.Len(t, seriesRows, 4)
	assert.Equal(t, []string{"Month", "Revenue (€)", "Expenses (€)"}, seriesRows[0])
	assert.Equal(t, "Jan 2026", seriesRows[1][0])
	assert.Equal(t, "Mar 2026", seriesRows[3][0])
}

func TestExcelExporter_NumericSeriesCells(t *testing.T) {
	f, _ := renderWorkbook(t, sampleReport("Offline Report"))

	for i, s := range sampleSeries() {
		row := strconv.Itoa(i + 2)
		for cell, want := range map[string]float64{"B" + row: s.Revenue, "C" + row: s.Expenses} {
			cellType, err := f.GetCellType("Monthly Data", cell)
			require.NoError(t, err)
			assert.NotEqual(t, excelize.CellTypeSharedString, cellType, cell)
			assert.NotEqual(t, excelize.CellTypeInlineString, cellType, cell)

			raw, err := f.GetCellValue("Monthly Data", cell, excelize.Options{RawCellValue: true})
			require.NoError(t, err)
			got, err := strconv.ParseFloat(raw, 64)
			require.NoError(t, err, cell)
			assert.InDelta(t, want, got, 0.0001, cell)

			styleID, err := f.GetCellStyle("Monthly Data", cell)
			require.NoError(t, err)
			style, err := f.GetStyle(styleID)
			require.NoError(t, err)
			assert.Equal(t, twoDecimalNumFmt, style.NumFmt, cell)
		}
	}
}

func TestExcelExporter_TitleOnlyInProperties(t *testing.T) {
	f, _ := renderWorkbook(t, sampleReport("Offline Report"))

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Offline Report", props.Title)
	assert.Equal(t, "Marketing Insights", props.Creator)

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		for _, row := range rows {
			assert.NotContains(t, row, "Offline Report")
		}
	}
}

func TestExcelExporter_RowCountsFollowInput(t *testing.T) {
	report := sampleReport("Big")
	report.KPIs = manyKPIs(25)
	report.Series = report.Series[:1]

	f, _ := renderWorkbook(t, report)

	kpiRows, err := f.GetRows("KPIs")
	require.NoError(t, err)
	assert.Len(t, kpiRows, 26)
	assert.Equal(t, "Metric 024", kpiRows[25][0])

	seriesRows, err := f.GetRows("Monthly Data")
	require.NoError(t, err)
	assert.Len(t, seriesRows, 2)
}

func TestExcelExporter_StructurallyStable(t *testing.T) {
	first, _ := renderWorkbook(t, sampleReport("Offline Report"))
	second, _ := renderWorkbook(t, sampleReport("Offline Report"))

	for _, sheet := range []string{"KPIs", "Monthly Data"} {
		a, err := first.GetRows(sheet)
		require.NoError(t, err)
		b, err := second.GetRows(sheet)
		require.NoError(t, err)
		assert.Equal(t, a, b, sheet)
	}
}

func TestExcelExporter_Metadata(t *testing.T) {
	e := NewExcelExporter()
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", e.GetContentType())
	assert.Equal(t, ".xlsx", e.GetFileExtension())
}
