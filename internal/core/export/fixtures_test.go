package export

import (
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
)

func sampleKPIs() []analytics.KPI {
	return []analytics.KPI{
		{Name: "Total Revenue", Value: "€125,430.50", Trend: "+12.5%"},
		{Name: "Conversion Rate", Value: "3.4%", Trend: "+9.7%"},
		{Name: "Active Campaigns", Value: "12", Trend: "+20.0%"},
	}
}

func sampleSeries() []analytics.MonthlySeries {
	return []analytics.MonthlySeries{
		{Month: "Jan 2026", Revenue: 18500, Expenses: 11200},
		{Month: "Feb 2026", Revenue: 19750.25, Expenses: 11630.1},
		{Month: "Mar 2026", Revenue: 21000.5, Expenses: 12060.2},
	}
}

func sampleReport(title string) *Report {
	return &Report{
		Title:      title,
		Author:     "Marketing Insights",
		CreatedAt:  time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		DocumentID: "7a393015-15b8-4bcf-8ce6-840f753bfb1c",
		KPIs:       sampleKPIs(),
		Series:     sampleSeries(),
	}
}

func manyKPIs(n int) []analytics.KPI {
	kpis := make([]analytics.KPI, n)
	for i := range kpis {
		kpis[i] = analytics.KPI{Name: fmt.Sprintf("Metric %03d", i), Value: "1", Trend: "0.0%"}
	}
	return kpis
}
