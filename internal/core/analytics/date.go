package analytics

import "time"

// MonthLabels returns labels for the n months ending with the month of end,
// oldest first (e.g. "Jan 2026").
func MonthLabels(end time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}

	labels := make([]string, 0, n)
	current := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).AddDate(0, -(n - 1), 0)

	for i := 0; i < n; i++ {
		labels = append(labels, current.Format("Jan 2006"))
		current = current.AddDate(0, 1, 0)
	}

	return labels
}
