package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadableSourceMatching(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := NewUnreadableSourceError(cause)

	assert.ErrorIs(t, err, ErrUnreadableSource)
	assert.Contains(t, err.Error(), "zip")

	// Wrapping another level keeps the category matchable.
	wrapped := fmt.Errorf("ingest: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnreadableSource)
}

func TestAsMissingColumns(t *testing.T) {
	err := &MissingColumnsError{Columns: []string{"Revenue", "System"}}

	mc, ok := AsMissingColumns(fmt.Errorf("ingest: %w", err))
	require.True(t, ok)
	assert.Equal(t, []string{"Revenue", "System"}, mc.Columns)
	assert.Equal(t, "missing required columns: Revenue, System", err.Error())

	_, ok = AsMissingColumns(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestAPIErrorConstructors(t *testing.T) {
	apiErr := MissingColumnsAPIError([]string{"Revenue"})
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "MISSING_COLUMNS", apiErr.ErrorCode)

	srcErr := UnreadableSourceError(errors.New("boom"))
	assert.Equal(t, http.StatusUnprocessableEntity, srcErr.StatusCode)
	assert.Equal(t, "UNREADABLE_SOURCE", srcErr.ErrorCode)

	vErr := ErrValidation("top_n", "out of range")
	assert.Equal(t, http.StatusBadRequest, vErr.StatusCode)
	details, ok := vErr.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "top_n", details.Field)
}
