package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPDF(t *testing.T, exporter *PDFExporter, report *Report) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, exporter.Export(report, &buf))
	return buf.Bytes()
}

func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestPDFExporter_Export(t *testing.T) {
	data := renderPDF(t, NewPDFExporter(), sampleReport("Offline Report"))

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(data))
}

func TestPDFExporter_ContentInOrder(t *testing.T) {
	data := renderPDF(t, NewPDFExporter(WithCompression(false)), sampleReport("Offline Report"))

	ordered := []string{
		"Offline Report",
		kpiSectionTitle,
		"Total Revenue: ",
		"Conversion Rate: ",
		"Active Campaigns: ",
		seriesSectionTitle,
		"- Jan 2026: Revenue ",
		"- Feb 2026: Revenue ",
		"- Mar 2026: Revenue ",
	}

	last := -1
	for _, s := range ordered {
		idx := bytes.Index(data, []byte(s))
		require.GreaterOrEqual(t, idx, 0, "missing %q", s)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}

	assert.Contains(t, string(data), "3.4% \\(Trend: +9.7%\\)")
	assert.Contains(t, string(data), "/ Expenses \x8011630.10")
}

func TestPDFExporter_FlowsOntoNewPages(t *testing.T) {
	report := sampleReport("Long Report")
	report.KPIs = manyKPIs(120)

	data := renderPDF(t, NewPDFExporter(WithCompression(false)), report)

	assert.Greater(t, pageCount(data), 1)
	assert.Contains(t, string(data), "Metric 000: ")
	assert.Contains(t, string(data), "Metric 119: ")
	assert.Contains(t, string(data), "- Mar 2026: Revenue ")
}

func TestPDFExporter_EmptyLists(t *testing.T) {
	report := sampleReport("Empty")
	report.KPIs = nil
	report.Series = nil

	data := renderPDF(t, NewPDFExporter(WithCompression(false)), report)

	assert.Contains(t, string(data), kpiSectionTitle)
	assert.Contains(t, string(data), seriesSectionTitle)
}

func TestPDFExporter_DashboardLink(t *testing.T) {
	url := "https://dashboard.example.com/?tab=offline"
	data := renderPDF(t, NewPDFExporter(WithCompression(false), WithDashboardLink(url)), sampleReport("Offline Report"))

	assert.Contains(t, string(data), "/Subtype /Image")
	assert.Contains(t, string(data), url)
}

func TestPDFExporter_Metadata(t *testing.T) {
	e := NewPDFExporter()
	assert.Equal(t, "application/pdf", e.GetContentType())
	assert.Equal(t, ".pdf", e.GetFileExtension())
}
