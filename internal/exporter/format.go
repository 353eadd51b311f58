package exporter

import (
	"fmt"
)

// formatRevenue formats a summed revenue cell with exactly 2 decimal places
// so values like 13.4 appear as 13.40 in every export format.
func formatRevenue(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
