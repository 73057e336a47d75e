package analytics

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// CurrencySymbol is prefixed to every currency-formatted value
const CurrencySymbol = "€"

// ToKPI formats a metric and its change versus the previous period
func ToKPI(cfg MetricConfig) KPI {
	return KPI{
		Name:  cfg.Name,
		Value: FormatValue(cfg.Current, cfg.Format),
		Trend: FormatTrend(cfg.Current, cfg.Previous),
	}
}

// FormatValue renders a number as currency, percentage or plain count
func FormatValue(num float64, format string) string {
	switch format {
	case "currency":
		return CurrencySymbol + humanize.FormatFloat("#,###.##", num)
	case "percentage":
		return fmt.Sprintf("%.1f%%", num)
	case "number":
		return humanize.FormatFloat("#,###.", num)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}

// FormatTrend returns the signed percentage change from previous to current.
// A zero previous value has no meaningful change and renders as "0.0%".
func FormatTrend(current, previous float64) string {
	if previous == 0 {
		return "0.0%"
	}
	change := ((current - previous) / previous) * 100
	if change == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", change)
}
