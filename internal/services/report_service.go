package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"revcli/internal/dataprocessing"
	"revcli/internal/exporter"
	"revcli/internal/infrastructure"
	"revcli/internal/report"
	"revcli/pkg/contracts/domain"
)

// SectionExport is one summary table rendered in the requested text format.
type SectionExport struct {
	Name    string `json:"name"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

// Reports holds the three fixed-width breakout reports.
type Reports struct {
	Totals      string `json:"totals"`
	Advertisers string `json:"advertisers"`
	MonthWeek   string `json:"month_week"`
}

// AnalysisResult is the complete outcome of one analysis run.
type AnalysisResult struct {
	Stats    dataprocessing.Stats   `json:"stats"`
	Sections []SectionExport        `json:"sections"`
	Reports  Reports                `json:"reports"`
	Tables   []*domain.SummaryTable `json:"-"`
}

// ReportService orchestrates the full analysis: ingest, date filter,
// summaries, text exports, and the breakout reports.
type ReportService struct {
	reader     *dataprocessing.Reader
	summarizer *dataprocessing.Summarizer
	excel      *exporter.ExcelWriter
	metrics    *infrastructure.BusinessMetrics
	logger     *slog.Logger
}

// NewReportService creates a report service. The metrics handle may be nil,
// in which case no metrics are recorded (the CLI path).
func NewReportService(logger *slog.Logger, metrics *infrastructure.BusinessMetrics) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		reader:     dataprocessing.NewReader(logger),
		summarizer: dataprocessing.NewSummarizer(logger),
		excel:      exporter.NewExcelWriter(logger),
		metrics:    metrics,
		logger:     logger,
	}
}

// Analyze runs the whole pipeline over one uploaded source.
func (s *ReportService) Analyze(ctx context.Context, src io.Reader, filename string, params domain.ReportParams) (*AnalysisResult, error) {
	params = params.Normalize()

	ingestStart := time.Now()
	ds, err := s.reader.ReadSource(ctx, src, filename)
	infrastructure.RecordIngestMetrics(ctx, s.metrics, filename, ds.Len(), time.Since(ingestStart), err)
	if err != nil {
		return nil, err
	}

	ds = ds.FilterDateRange(params.StartDate, params.EndDate)

	renderStart := time.Now()
	tables := s.summarizer.Sections(ctx, ds, params.TopN)

	sections := make([]SectionExport, 0, len(tables))
	for _, table := range tables {
		var content string
		switch params.Format {
		case domain.FormatMarkdown:
			content = exporter.WriteMarkdown(table)
		default:
			content = exporter.WriteTSV(table)
		}
		sections = append(sections, SectionExport{
			Name:    table.Name,
			Format:  params.Format,
			Content: content,
		})
	}

	result := &AnalysisResult{
		Stats:    ds.Stats(),
		Sections: sections,
		Reports:  s.buildReports(ds, params),
		Tables:   tables,
	}
	infrastructure.RecordReportMetrics(ctx, s.metrics, "analysis", time.Since(renderStart))

	s.logger.InfoContext(ctx, "analysis complete",
		slog.String("filename", filename),
		slog.Int("rows", result.Stats.Rows),
		slog.Float64("total_revenue", result.Stats.TotalRevenue))

	return result, nil
}

// buildReports renders the three OE/PMP breakout reports from one snapshot.
func (s *ReportService) buildReports(ds *dataprocessing.Dataset, params domain.ReportParams) Reports {
	totalOE := s.summarizer.TotalByChannel(ds, domain.BucketOE)
	totalPMP := s.summarizer.TotalByChannel(ds, domain.BucketPMP)

	oePairs := s.summarizer.AdvertiserPairsByChannel(ds, domain.BucketOE)
	pmpPairs := s.summarizer.AdvertiserPairsByChannel(ds, domain.BucketPMP)

	monthsOE, dataOE := s.summarizer.AdvertiserByMonthWeek(ds, domain.BucketOE)
	monthsPMP, dataPMP := s.summarizer.AdvertiserByMonthWeek(ds, domain.BucketPMP)

	return Reports{
		Totals: report.TotalsBreakout(totalOE, totalPMP, params.AmountCol, params.PageWidth),
		Advertisers: report.AdvertiserBreakout(
			oePairs, pmpPairs, params.TopN, params.AmountCol, params.PageWidth),
		MonthWeek: report.MonthWeekBreakout(
			monthsOE, dataOE, monthsPMP, dataPMP,
			params.TopN, params.AmountCol, params.PageWidth),
	}
}

// WriteWorkbook streams the xlsx workbook for a previous analysis to w.
func (s *ReportService) WriteWorkbook(ctx context.Context, w io.Writer, tables []*domain.SummaryTable) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}
	return s.excel.WriteWorkbook(ctx, w, tables)
}
