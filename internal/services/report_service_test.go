package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"revcli/internal/dataprocessing"
	"revcli/internal/errors"
	"revcli/pkg/contracts/domain"
)

const analysisCSV = `Date - EST,RTB Channel,RTB Advertiser,RTB SSP,System,RTB Deal ID,RTB Creative ID,Revenue
2025-01-10,PMP,Acme,Magnite,DSP-1,D1,C1,"$1,000.50"
2025-01-12,Open Exchange,Globex,PubMatic,DSP-1,D2,C2,250
2025-01-20,PMP,Acme,PubMatic,DSP-2,D1,C3,25
`

func TestReportService_Analyze(t *testing.T) {
	svc := NewReportService(nil, nil)

	result, err := svc.Analyze(context.Background(), strings.NewReader(analysisCSV), "revenue.csv", domain.ReportParams{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.Rows)
	assert.InDelta(t, 1275.5, result.Stats.TotalRevenue, 1e-9)
	assert.Equal(t, 2, result.Stats.Advertisers)

	require.Len(t, result.Sections, 7)
	assert.Equal(t, dataprocessing.SectionRevenueByDate, result.Sections[0].Name)
	assert.Equal(t, domain.FormatTSV, result.Sections[0].Format)
	assert.True(t, strings.HasPrefix(result.Sections[0].Content, "Date\tRevenue\n"))

	assert.NotEmpty(t, result.Reports.Totals)
	assert.NotEmpty(t, result.Reports.Advertisers)
	assert.NotEmpty(t, result.Reports.MonthWeek)
	require.Len(t, result.Tables, 7)
}

func TestReportService_Analyze_MarkdownFormat(t *testing.T) {
	svc := NewReportService(nil, nil)

	result, err := svc.Analyze(context.Background(), strings.NewReader(analysisCSV), "revenue.csv",
		domain.ReportParams{Format: domain.FormatMarkdown})
	require.NoError(t, err)

	assert.Equal(t, domain.FormatMarkdown, result.Sections[0].Format)
	assert.True(t, strings.HasPrefix(result.Sections[0].Content, "| Date | Revenue |"))
}

func TestReportService_Analyze_DateFilter(t *testing.T) {
	svc := NewReportService(nil, nil)

	params := domain.ReportParams{
		StartDate: mustDate("2025-01-11"),
		EndDate:   mustDate("2025-01-31"),
	}
	result, err := svc.Analyze(context.Background(), strings.NewReader(analysisCSV), "revenue.csv", params)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.Rows)
	assert.InDelta(t, 275, result.Stats.TotalRevenue, 1e-9)
}

func TestReportService_Analyze_MissingColumns(t *testing.T) {
	svc := NewReportService(nil, nil)

	_, err := svc.Analyze(context.Background(), strings.NewReader("Date,Revenue\n2025-01-01,1\n"), "broken.csv", domain.ReportParams{})
	require.Error(t, err)
	_, ok := errors.AsMissingColumns(err)
	assert.True(t, ok)
}

func TestReportService_Analyze_UnreadableSource(t *testing.T) {
	svc := NewReportService(nil, nil)

	_, err := svc.Analyze(context.Background(), strings.NewReader("not a workbook"), "upload.xlsx", domain.ReportParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnreadableSource)
}

func TestReportService_WriteWorkbook(t *testing.T) {
	svc := NewReportService(nil, nil)

	result, err := svc.Analyze(context.Background(), strings.NewReader(analysisCSV), "revenue.csv", domain.ReportParams{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteWorkbook(context.Background(), &buf, result.Tables))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 7)
}

func TestReportService_WriteWorkbook_NoTables(t *testing.T) {
	svc := NewReportService(nil, nil)
	var buf bytes.Buffer
	assert.Error(t, svc.WriteWorkbook(context.Background(), &buf, nil))
}

func mustDate(s string) (t time.Time) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
