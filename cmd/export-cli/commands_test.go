package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/export"
)

func testProvider() analytics.Provider {
	return analytics.NewSimulatedProviderWithClock(3, func() time.Time {
		return time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	})
}

func execute(t *testing.T, provider analytics.Provider, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWithProvider(provider)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReportCmd_XLS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "offline.xlsx")

	out, err := execute(t, testProvider(), "report", "--format", "xls", "--title", "Offline", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly Data")
	require.NoError(t, err)
	assert.Len(t, rows, 1+3)
	assert.Equal(t, "Mar 2026", rows[3][0])
}

func TestReportCmd_DefaultFilename(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, testProvider(), "report", "--format", "pdf", "--title", "Social Media")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "report-social-media.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportCmd_RejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	_, err := execute(t, testProvider(), "report", "--format", "csv", "--out", path)

	var verr *export.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), `"pdf", "xls"`)
	assert.NoFileExists(t, path)
}

func TestReportCmd_ProviderFailure(t *testing.T) {
	failing := analytics.ProviderFunc(func(ctx context.Context) ([]analytics.KPI, []analytics.MonthlySeries, error) {
		return nil, nil, errors.New("analytics backend unavailable")
	})

	_, err := execute(t, failing, "report", "--out", filepath.Join(t.TempDir(), "r.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analytics backend unavailable")
}

func TestFormatsCmd(t *testing.T) {
	out, err := execute(t, testProvider(), "formats")
	require.NoError(t, err)

	assert.Contains(t, out, "application/pdf")
	assert.Contains(t, out, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	assert.Contains(t, out, ".xlsx")
}
