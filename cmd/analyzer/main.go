package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"revcli/internal/config"
	"revcli/internal/infrastructure"
	"revcli/internal/services"
	"revcli/pkg/contracts/domain"
)

func main() {
	inPath := flag.String("in", "", "input revenue file (.csv, .xlsx, .xls)")
	outDir := flag.String("out", "out", "output directory for exports and reports")
	format := flag.String("format", domain.FormatTSV, "section export format: tsv or markdown")
	topN := flag.Int("top", 25, "row cap for summary sections and breakout reports")
	amountCol := flag.Int("amount-col", 40, "target column where report amounts start")
	pageWidth := flag.Int("page-width", 80, "hard cap on report block width")
	start := flag.String("start", "", "inclusive start date filter (YYYY-MM-DD)")
	end := flag.String("end", "", "inclusive end date filter (YYYY-MM-DD)")
	flag.Parse()

	logger := infrastructure.MustInitializeLogger(config.LoggingConfig{Level: "info", Output: "console"})

	if *inPath == "" {
		logger.Error("missing required -in flag")
		flag.Usage()
		os.Exit(2)
	}

	params := domain.ReportParams{
		TopN:      *topN,
		AmountCol: *amountCol,
		PageWidth: *pageWidth,
		Format:    *format,
	}
	var err error
	if params.StartDate, err = parseDateFlag(*start); err != nil {
		logger.Error("invalid -start value", "error", err)
		os.Exit(2)
	}
	if params.EndDate, err = parseDateFlag(*end); err != nil {
		logger.Error("invalid -end value", "error", err)
		os.Exit(2)
	}

	if err := run(context.Background(), logger, *inPath, *outDir, params); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, inPath, outDir string, params domain.ReportParams) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	src, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	service := services.NewReportService(logger, nil)
	result, err := service.Analyze(ctx, src, filepath.Base(inPath), params)
	if err != nil {
		return err
	}

	ext := ".tsv"
	if params.Format == domain.FormatMarkdown {
		ext = ".md"
	}
	for _, section := range result.Sections {
		path := filepath.Join(outDir, slugify(section.Name)+ext)
		if err := os.WriteFile(path, []byte(section.Content), 0644); err != nil {
			return fmt.Errorf("write section %s: %w", section.Name, err)
		}
	}

	workbook, err := os.Create(filepath.Join(outDir, "sections.xlsx"))
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	defer workbook.Close()
	if err := service.WriteWorkbook(ctx, workbook, result.Tables); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	reports := map[string]string{
		"totals_report.txt":      result.Reports.Totals,
		"advertisers_report.txt": result.Reports.Advertisers,
		"month_week_report.txt":  result.Reports.MonthWeek,
	}
	for name, content := range reports {
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(content+"\n"), 0644); err != nil {
			return fmt.Errorf("write report %s: %w", name, err)
		}
	}

	logger.Info("analysis written",
		"out_dir", outDir,
		"rows", result.Stats.Rows,
		"total_revenue", result.Stats.TotalRevenue,
		"advertisers", result.Stats.Advertisers)
	return nil
}

func parseDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a section name into a safe lowercase file stem.
func slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(s, "_")
}
