package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revcli/internal/errors"
	"revcli/pkg/contracts/domain"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "date est", "date est"},
		{"mixed case and punctuation", "Date - EST", "date est"},
		{"parentheses", "DATE (EST)", "date est"},
		{"underscores and dashes", "RTB__Deal--ID", "rtb deal id"},
		{"leading and trailing junk", "  **Revenue**  ", "revenue"},
		{"empty", "", ""},
		{"only punctuation", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalize(tt.in))
		})
	}
}

func TestMapColumns_VerbatimHeaders(t *testing.T) {
	headers := []string{
		"Date - EST", "RTB Channel", "RTB Advertiser", "RTB SSP",
		"System", "RTB Deal ID", "RTB Creative ID", "Revenue",
	}

	mapping, err := MapColumns(headers)
	require.NoError(t, err)
	require.Len(t, mapping, len(domain.RequiredColumns))

	for _, col := range domain.RequiredColumns {
		assert.Equal(t, col, mapping[col], "verbatim header must map to itself")
	}
}

func TestMapColumns_FuzzyHeaders(t *testing.T) {
	headers := []string{
		"DATE (EST)", "Rtb-Channel", "advertiser", "SSP",
		"system", "Deal ID", "creative_id", "Amount ($)",
	}

	mapping, err := MapColumns(headers)
	require.NoError(t, err)

	assert.Equal(t, "DATE (EST)", mapping[domain.FieldDate])
	assert.Equal(t, "Rtb-Channel", mapping[domain.FieldChannel])
	assert.Equal(t, "advertiser", mapping[domain.FieldAdvertiser])
	assert.Equal(t, "SSP", mapping[domain.FieldSSP])
	assert.Equal(t, "system", mapping[domain.FieldSystem])
	assert.Equal(t, "Deal ID", mapping[domain.FieldDealID])
	assert.Equal(t, "creative_id", mapping[domain.FieldCreativeID])
	assert.Equal(t, "Amount ($)", mapping[domain.FieldRevenue])
}

func TestMapColumns_AliasPriority(t *testing.T) {
	// Both a specific and a generic alias are present; the specific one wins
	// because alias order, not header order, is the tie-break.
	headers := []string{"Date", "RTB Channel", "RTB Advertiser", "RTB SSP",
		"System", "Deal", "RTB Deal ID", "RTB Creative ID", "Revenue"}

	mapping, err := MapColumns(headers)
	require.NoError(t, err)
	assert.Equal(t, "RTB Deal ID", mapping[domain.FieldDealID])
}

func TestMapColumns_MissingListsAll(t *testing.T) {
	_, err := MapColumns([]string{"Date", "Revenue"})
	require.Error(t, err)

	mc, ok := errors.AsMissingColumns(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		domain.FieldChannel, domain.FieldAdvertiser, domain.FieldSSP,
		domain.FieldSystem, domain.FieldDealID, domain.FieldCreativeID,
	}, mc.Columns)
}

func TestMapColumns_DuplicateHeadersFirstWins(t *testing.T) {
	headers := []string{"Revenue ($)", "revenue", "Date", "RTB Channel",
		"RTB Advertiser", "RTB SSP", "System", "RTB Deal ID", "RTB Creative ID"}

	mapping, err := MapColumns(headers)
	require.NoError(t, err)
	assert.Equal(t, "Revenue ($)", mapping[domain.FieldRevenue])
}
