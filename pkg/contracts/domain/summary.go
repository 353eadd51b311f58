package domain

// SummaryRow is one grouped row of a summary table: the group-key tuple plus
// the summed revenue for that group, rounded to 2 decimal places for display.
type SummaryRow struct {
	Keys    []string `json:"keys"`
	Revenue float64  `json:"revenue"`
}

// SummaryTable is a named, ordered list of grouped revenue rows, sorted
// descending by revenue and truncated to the caller's row cap. Tables are
// produced fresh per request and never cached.
type SummaryTable struct {
	Name    string       `json:"name"`
	Columns []string     `json:"columns"`
	Rows    []SummaryRow `json:"rows"`
}

// Empty reports whether the table has no rows.
func (t *SummaryTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}
