package dataprocessing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"revcli/internal/errors"
	"revcli/pkg/contracts/domain"
)

const sampleCSV = `Date - EST,RTB Channel,RTB Advertiser,RTB SSP,System,RTB Deal ID,RTB Creative ID,Revenue
2025-01-10,PMP,Acme,Magnite,DSP-1,D1,C1,"$1,000.50"
2025-01-12,Open Exchange,Globex,PubMatic,DSP-1,D2,C2,250
,,,,,,,
not-a-date,Open,Initech,Magnite,DSP-2,D3,C3,(75)
`

func TestReader_ReadSource_CSV(t *testing.T) {
	r := NewReader(nil)

	ds, err := r.ReadSource(context.Background(), strings.NewReader(sampleCSV), "revenue.csv")
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len(), "blank row must be skipped")

	first := ds.Records[0]
	assert.Equal(t, day(2025, 1, 10), first.Date)
	assert.Equal(t, "PMP", first.Channel)
	assert.Equal(t, "Acme", first.Advertiser)
	assert.InDelta(t, 1000.50, first.Revenue, 1e-9)

	// Unparseable date degrades to the sentinel; parenthesized revenue keeps
	// its magnitude.
	third := ds.Records[2]
	assert.True(t, third.Date.IsZero())
	assert.InDelta(t, 75, third.Revenue, 1e-9)
}

func TestReader_ReadSource_FuzzyHeaders(t *testing.T) {
	csv := "DATE (EST),channel,advertiser,ssp,System,deal_id,creative id,Amount\n" +
		"2025-03-01,PMP,Acme,Magnite,DSP-1,D1,C1,12.5\n"

	r := NewReader(nil)
	ds, err := r.ReadSource(context.Background(), strings.NewReader(csv), "export.csv")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.InDelta(t, 12.5, ds.Records[0].Revenue, 1e-9)
	assert.Equal(t, "Acme", ds.Records[0].Advertiser)
}

func TestReader_ReadSource_MissingColumns(t *testing.T) {
	csv := "Date,Revenue\n2025-01-01,5\n"

	r := NewReader(nil)
	_, err := r.ReadSource(context.Background(), strings.NewReader(csv), "broken.csv")
	require.Error(t, err)

	mc, ok := errors.AsMissingColumns(err)
	require.True(t, ok)
	assert.Contains(t, mc.Columns, domain.FieldChannel)
	assert.Contains(t, mc.Columns, domain.FieldCreativeID)
}

func TestReader_ReadSource_Latin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	raw := "Date - EST,RTB Channel,RTB Advertiser,RTB SSP,System,RTB Deal ID,RTB Creative ID,Revenue\n" +
		"2025-01-10,PMP,Caf\xe9 Media,Magnite,DSP-1,D1,C1,10\n"

	r := NewReader(nil)
	ds, err := r.ReadSource(context.Background(), strings.NewReader(raw), "legacy.csv")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Café Media", ds.Records[0].Advertiser)
}

func TestReader_ReadSource_EmptySource(t *testing.T) {
	r := NewReader(nil)
	ds, err := r.ReadSource(context.Background(), strings.NewReader(""), "empty.csv")
	require.NoError(t, err)
	assert.True(t, ds.Empty())
}

func TestReader_ReadSource_Spreadsheet(t *testing.T) {
	f := excelize.NewFile()
	headers := []interface{}{"Date - EST", "RTB Channel", "RTB Advertiser", "RTB SSP",
		"System", "RTB Deal ID", "RTB Creative ID", "Revenue"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	row := []interface{}{"2025-01-10", "PMP", "Acme", "Magnite", "DSP-1", "D1", "C1", 42.5}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	r := NewReader(nil)
	ds, err := r.ReadSource(context.Background(), &buf, "upload.xlsx")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Acme", ds.Records[0].Advertiser)
	assert.InDelta(t, 42.5, ds.Records[0].Revenue, 1e-9)
}

func TestReader_ReadSource_LegacyXLSRejected(t *testing.T) {
	r := NewReader(nil)
	_, err := r.ReadSource(context.Background(), strings.NewReader("\xd0\xcf\x11\xe0"), "legacy.xls")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnreadableSource)
	assert.Contains(t, err.Error(), ".xlsx or CSV")
}

func TestReader_ReadSource_UnreadableSpreadsheet(t *testing.T) {
	r := NewReader(nil)
	_, err := r.ReadSource(context.Background(), strings.NewReader("this is not a zip"), "bad.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnreadableSource)
}

func TestReader_ReadFile_Missing(t *testing.T) {
	r := NewReader(nil)
	_, err := r.ReadFile(context.Background(), "/does/not/exist.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnreadableSource)
}
