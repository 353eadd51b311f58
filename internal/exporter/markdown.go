package exporter

import (
	"strings"

	"revcli/pkg/contracts/domain"
)

// WriteMarkdown renders a summary table as a minimal pipe-delimited markup
// table: header row, "---" separator rule, then one row per entry. Literal
// pipes in cell values are escaped so the table layout never corrupts.
func WriteMarkdown(table *domain.SummaryTable) string {
	cells := Cells(table)
	header := cells[0]

	lines := make([]string, 0, len(cells)+1)
	lines = append(lines, "| "+joinEscaped(header)+" |")

	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(seps, " | ")+" |")

	for _, row := range cells[1:] {
		lines = append(lines, "| "+joinEscaped(row)+" |")
	}
	return strings.Join(lines, "\n")
}

func joinEscaped(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return strings.Join(escaped, " | ")
}
