package exporter

import (
	"strings"

	"revcli/pkg/contracts/domain"
)

// Cells flattens a summary table into its export cell grid: a header row
// followed by one row per entry. Missing key cells render as empty strings.
func Cells(table *domain.SummaryTable) [][]string {
	out := make([][]string, 0, len(table.Rows)+1)
	out = append(out, append([]string{}, table.Columns...))

	keyCols := len(table.Columns) - 1
	for _, row := range table.Rows {
		cells := make([]string, 0, len(table.Columns))
		for i := 0; i < keyCols; i++ {
			if i < len(row.Keys) {
				cells = append(cells, row.Keys[i])
			} else {
				cells = append(cells, "")
			}
		}
		cells = append(cells, formatRevenue(row.Revenue))
		out = append(out, cells)
	}
	return out
}

// WriteTSV renders a summary table as tab-separated text, one line per row,
// header first. Every line is newline-terminated.
func WriteTSV(table *domain.SummaryTable) string {
	var b strings.Builder
	for _, row := range Cells(table) {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// ParseTSV parses tab-separated text back into its cell grid. It is the
// inverse of WriteTSV: parse(write(t)) reproduces the cell strings exactly.
func ParseTSV(s string) [][]string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Split(line, "\t")
	}
	return out
}
