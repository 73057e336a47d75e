package analytics

import "context"

// KPI is a named metric whose value and trend are already formatted for display
type KPI struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

// MonthlySeries is one month of revenue and expenses
type MonthlySeries struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// Provider supplies the dashboard figures an export is rendered from
type Provider interface {
	Fetch(ctx context.Context) ([]KPI, []MonthlySeries, error)
}

// ProviderFunc adapts a plain function to the Provider interface
type ProviderFunc func(ctx context.Context) ([]KPI, []MonthlySeries, error)

// Fetch calls f(ctx)
func (f ProviderFunc) Fetch(ctx context.Context) ([]KPI, []MonthlySeries, error) {
	return f(ctx)
}

// MetricConfig describes how a raw metric is turned into a KPI
type MetricConfig struct {
	Name     string
	Format   string // "number", "currency", "percentage"
	Current  float64
	Previous float64
}
