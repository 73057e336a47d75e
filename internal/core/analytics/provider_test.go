package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func TestSimulatedProvider_Fetch(t *testing.T) {
	p := NewSimulatedProviderWithClock(3, fixedClock)

	kpis, series, err := p.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []KPI{
		{Name: "Total Revenue", Value: "€125,430.50", Trend: "+12.5%"},
		{Name: "Conversion Rate", Value: "3.4%", Trend: "+9.7%"},
		{Name: "Active Campaigns", Value: "12", Trend: "+20.0%"},
		{Name: "Customer Acquisition Cost", Value: "€42.75", Trend: "-5.0%"},
	}, kpis)

	require.Len(t, series, 3)
	assert.Equal(t, "Jan 2026", series[0].Month)
	assert.Equal(t, "Feb 2026", series[1].Month)
	assert.Equal(t, "Mar 2026", series[2].Month)
	assert.InDelta(t, 18500.00, series[0].Revenue, 0.001)
	assert.InDelta(t, 11630.10, series[1].Expenses, 0.001)
}

func TestSimulatedProvider_FreshSlicesPerCall(t *testing.T) {
	p := NewSimulatedProviderWithClock(2, fixedClock)

	first, _, err := p.Fetch(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, _, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Total Revenue", second[0].Name)
}

func TestSimulatedProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewSimulatedProvider().Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderFunc(t *testing.T) {
	called := false
	var p Provider = ProviderFunc(func(ctx context.Context) ([]KPI, []MonthlySeries, error) {
		called = true
		return nil, nil, nil
	})

	_, _, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestMonthLabels_YearBoundary(t *testing.T) {
	labels := MonthLabels(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 4)
	assert.Equal(t, []string{"Nov 2025", "Dec 2025", "Jan 2026", "Feb 2026"}, labels)
	assert.Empty(t, MonthLabels(fixedClock(), 0))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		num    float64
		format string
		want   string
	}{
		{1234.5, "currency", "€1,234.50"},
		{3.14159, "percentage", "3.1%"},
		{48210, "number", "48,210"},
		{2.5, "", "2.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.num, tt.format))
	}
}

func TestFormatTrend(t *testing.T) {
	assert.Equal(t, "+50.0%", FormatTrend(150, 100))
	assert.Equal(t, "-25.0%", FormatTrend(75, 100))
	assert.Equal(t, "0.0%", FormatTrend(100, 100))
	assert.Equal(t, "0.0%", FormatTrend(10, 0))
}
