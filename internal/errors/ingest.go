package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnreadableSource marks a source file that could not be decoded even
// after the encoding fallback. Match it with errors.Is.
var ErrUnreadableSource = errors.New("unreadable source")

// NewUnreadableSourceError wraps a decode failure so callers can both match
// the category and see the cause.
func NewUnreadableSourceError(cause error) error {
	return fmt.Errorf("%w: %v", ErrUnreadableSource, cause)
}

// MissingColumnsError reports every required canonical column that could not
// be resolved by fuzzy header mapping. Ingestion fails as a whole; there is
// no partial ingest.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// AsMissingColumns unwraps a MissingColumnsError if err carries one.
func AsMissingColumns(err error) (*MissingColumnsError, bool) {
	var mc *MissingColumnsError
	if errors.As(err, &mc) {
		return mc, true
	}
	return nil, false
}
