package dataprocessing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"revcli/internal/errors"
	"revcli/pkg/contracts/domain"
)

// Reader ingests one uploaded revenue-event file into a Dataset.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a reader. A nil logger falls back to the default.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadFile ingests a file from disk, sniffing the format from its name.
func (r *Reader) ReadFile(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewUnreadableSourceError(err)
	}
	defer f.Close()
	return r.ReadSource(ctx, f, filepath.Base(path))
}

// ReadSource ingests a raw tabular source. The filename selects the decoder:
// .xlsx goes through the spreadsheet reader, everything else is treated as
// delimited text read as UTF-8 with a Latin-1 fallback for byte sequences
// that are not valid UTF-8. The returned Dataset is fully normalized and
// coerced; a zero-row source yields a valid empty Dataset.
func (r *Reader) ReadSource(ctx context.Context, src io.Reader, filename string) (*Dataset, error) {
	name := strings.ToLower(filename)

	var rows [][]string
	var err error
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		rows, err = readSpreadsheet(src)
	case strings.HasSuffix(name, ".xls"):
		// The spreadsheet reader only speaks the OOXML format, not legacy
		// BIFF workbooks, so fail these up front with a usable message.
		return nil, errors.NewUnreadableSourceError(
			fmt.Errorf("legacy .xls workbooks are not supported, save the file as .xlsx or CSV"))
	default:
		rows, err = readDelimited(src)
	}
	if err != nil {
		return nil, errors.NewUnreadableSourceError(err)
	}

	r.logger.InfoContext(ctx, "source decoded",
		slog.String("filename", filename),
		slog.Int("raw_rows", len(rows)))

	return r.normalize(ctx, rows)
}

// readSpreadsheet decodes the first sheet of an Excel workbook.
func readSpreadsheet(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}

// readDelimited decodes comma-separated text. Invalid UTF-8 input falls back
// to a Latin-1 byte-for-character decode, mirroring how the legacy booking
// exports were encoded.
func readDelimited(src io.Reader) ([][]string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, decErr
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// normalize maps raw rows onto the canonical schema and coerces types.
// Column resolution failures abort the whole ingest; malformed cells degrade
// per field and never do.
func (r *Reader) normalize(ctx context.Context, rows [][]string) (*Dataset, error) {
	ds := &Dataset{}
	if len(rows) == 0 {
		return ds, nil
	}

	headers := rows[0]
	mapping, err := MapColumns(headers)
	if err != nil {
		return nil, err
	}

	// Column index per canonical field, resolved once for the whole file.
	colIndex := make(map[string]int, len(mapping))
	for i, h := range headers {
		trimmed := strings.TrimSpace(h)
		for canonical, raw := range mapping {
			if raw == trimmed {
				if _, taken := colIndex[canonical]; !taken {
					colIndex[canonical] = i
				}
			}
		}
	}

	cell := func(row []string, field string) string {
		idx, ok := colIndex[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		ds.Records = append(ds.Records, domain.RevenueRecord{
			Date:       parseDate(cell(row, domain.FieldDate)),
			Channel:    strings.TrimSpace(cell(row, domain.FieldChannel)),
			Advertiser: strings.TrimSpace(cell(row, domain.FieldAdvertiser)),
			SSP:        strings.TrimSpace(cell(row, domain.FieldSSP)),
			System:     strings.TrimSpace(cell(row, domain.FieldSystem)),
			DealID:     strings.TrimSpace(cell(row, domain.FieldDealID)),
			CreativeID: strings.TrimSpace(cell(row, domain.FieldCreativeID)),
			Revenue:    parseRevenue(cell(row, domain.FieldRevenue)),
		})
	}

	r.logger.InfoContext(ctx, "dataset normalized",
		slog.Int("record_count", len(ds.Records)))

	return ds, nil
}

// isBlankRow reports whether every cell in the row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
