package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"revcli/pkg/contracts/domain"
)

// ExcelWriter writes summary sections into one xlsx workbook, one sheet per
// section. It is the download-artifact counterpart of the text exports.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates an Excel writer. A nil logger falls back to default.
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteWorkbook streams a workbook with one sheet per section to w.
// An empty section still gets its sheet with the header row, so the workbook
// shape is stable regardless of data volume.
func (e *ExcelWriter) WriteWorkbook(ctx context.Context, w io.Writer, sections []*domain.SummaryTable) error {
	f, err := e.assemble(ctx, sections)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook to a file path.
func (e *ExcelWriter) SaveWorkbook(ctx context.Context, path string, sections []*domain.SummaryTable) error {
	f, err := e.assemble(ctx, sections)
	if err != nil {
		return err
	}
	defer f.Close()

	e.logger.InfoContext(ctx, "saving workbook", slog.String("path", path))
	return f.SaveAs(path)
}

// assemble builds the in-memory workbook from the sections.
func (e *ExcelWriter) assemble(ctx context.Context, sections []*domain.SummaryTable) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, table := range sections {
		sheet := sheetName(table.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		for rowIdx, cells := range Cells(table) {
			for colIdx, value := range cells {
				ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					f.Close()
					return nil, fmt.Errorf("cell reference: %w", err)
				}
				if err := f.SetCellValue(sheet, ref, value); err != nil {
					f.Close()
					return nil, fmt.Errorf("set cell %s!%s: %w", sheet, ref, err)
				}
			}
		}
	}

	e.logger.InfoContext(ctx, "workbook assembled",
		slog.Int("section_count", len(sections)))

	return f, nil
}

// sheetName sanitizes a section name into a legal Excel sheet name:
// at most 31 characters and none of the reserved characters.
func sheetName(name string) string {
	replacer := strings.NewReplacer(
		":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")",
	)
	s := replacer.Replace(name)
	if s == "" {
		s = "Sheet"
	}
	if len(s) > 31 {
		s = s[:31]
	}
	return s
}
