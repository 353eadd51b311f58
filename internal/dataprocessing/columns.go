package dataprocessing

import (
	"regexp"
	"strings"

	"revcli/internal/errors"
	"revcli/pkg/contracts/domain"
)

var nonAlnumRun = regexp.MustCompile(`[^0-9a-z]+`)

// canonicalize normalizes a column header for fuzzy matching: lower-case,
// collapse every non-alphanumeric run to a single space, trim.
func canonicalize(col string) string {
	s := strings.ToLower(strings.TrimSpace(col))
	s = nonAlnumRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// columnAlias binds one canonical column to its candidate spellings, tried in
// priority order: the exact-match synonym first, the most generic last.
type columnAlias struct {
	canonical  string
	candidates []string
}

// columnAliases is the full alias table. Alias-list order is the tie-break
// when several candidates match, not raw-header order.
var columnAliases = []columnAlias{
	{domain.FieldDate, []string{"date est", "date"}},
	{domain.FieldChannel, []string{"rtb channel", "channel"}},
	{domain.FieldAdvertiser, []string{"rtb advertiser", "advertiser"}},
	{domain.FieldSSP, []string{"rtb ssp", "ssp"}},
	{domain.FieldSystem, []string{"system"}},
	{domain.FieldDealID, []string{"rtb deal id", "deal id", "deal"}},
	{domain.FieldCreativeID, []string{"rtb creative id", "creative id", "creative"}},
	{domain.FieldRevenue, []string{"revenue", "rev", "amount"}},
}

// MapColumns resolves raw file headers to the canonical column set.
// A canonical name already present verbatim is accepted without alias lookup.
// If any canonical column stays unresolved the whole mapping fails with a
// MissingColumnsError naming every missing column, not just the first.
func MapColumns(headers []string) (map[string]string, error) {
	verbatim := make(map[string]bool, len(headers))
	incoming := make(map[string]string, len(headers))
	for _, h := range headers {
		trimmed := strings.TrimSpace(h)
		verbatim[trimmed] = true
		key := canonicalize(h)
		if _, seen := incoming[key]; !seen {
			incoming[key] = trimmed
		}
	}

	mapping := make(map[string]string, len(columnAliases))
	var missing []string
	for _, alias := range columnAliases {
		if verbatim[alias.canonical] {
			mapping[alias.canonical] = alias.canonical
			continue
		}
		resolved := false
		for _, candidate := range alias.candidates {
			if raw, ok := incoming[candidate]; ok {
				mapping[alias.canonical] = raw
				resolved = true
				break
			}
		}
		if !resolved {
			missing = append(missing, alias.canonical)
		}
	}

	if len(missing) > 0 {
		return nil, &errors.MissingColumnsError{Columns: missing}
	}
	return mapping, nil
}
