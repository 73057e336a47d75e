package analytics

import (
	"context"
	"time"
)

// DefaultMonths is how many months of series data the simulated provider returns
const DefaultMonths = 6

// SimulatedProvider stands in for the analytics backend. It returns a fixed set of
// marketing KPIs and a monthly revenue/expense series ending at the current month.
type SimulatedProvider struct {
	months int
	now    func() time.Time
}

// NewSimulatedProvider creates a provider returning DefaultMonths of data
func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{
		months: DefaultMonths,
		now:    time.Now,
	}
}

// NewSimulatedProviderWithClock creates a provider with a custom month count and clock
func NewSimulatedProviderWithClock(months int, now func() time.Time) *SimulatedProvider {
	if months <= 0 {
		months = DefaultMonths
	}
	if now == nil {
		now = time.Now
	}
	return &SimulatedProvider{months: months, now: now}
}

var simulatedMetrics = []MetricConfig{
	{Name: "Total Revenue", Format: "currency", Current: 125430.50, Previous: 111494.00},
	{Name: "Conversion Rate", Format: "percentage", Current: 3.4, Previous: 3.1},
	{Name: "Active Campaigns", Format: "number", Current: 12, Previous: 10},
	{Name: "Customer Acquisition Cost", Format: "currency", Current: 42.75, Previous: 45.00},
}

var (
	baseRevenue  = 18500.00
	baseExpenses = 11200.00
)

// Fetch builds fresh KPI and series slices on every call
func (p *SimulatedProvider) Fetch(ctx context.Context) ([]KPI, []MonthlySeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	kpis := make([]KPI, 0, len(simulatedMetrics))
	for _, m := range simulatedMetrics {
		kpis = append(kpis, ToKPI(m))
	}

	labels := MonthLabels(p.now(), p.months)
	series := make([]MonthlySeries, 0, len(labels))
	for i, label := range labels {
		step := float64(i)
		series = append(series, MonthlySeries{
			Month:    label,
			Revenue:  baseRevenue + step*1250.25,
			Expenses: baseExpenses + step*430.10,
		})
	}

	return kpis, series, nil
}
