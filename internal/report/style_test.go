package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoldAlnum(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"uppercase A", "A", "\U0001D400"},
		{"uppercase Z", "Z", "\U0001D419"},
		{"lowercase a", "a", "\U0001D41A"},
		{"lowercase z", "z", "\U0001D433"},
		{"digit zero", "0", "\U0001D7CE"},
		{"digit nine", "9", "\U0001D7D7"},
		{"mixed word", "OE", "\U0001D40E\U0001D404"},
		{"punctuation passes through", "($5)", "($\U0001D7D3)"},
		{"spaces and commas untouched", "1,2 3", "\U0001D7CF,\U0001D7D0 \U0001D7D1"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BoldAlnum(tt.in))
		})
	}
}

func TestBoldAlnum_PreservesRuneCount(t *testing.T) {
	in := "PMP ($1,234) all 5 accounts"
	out := BoldAlnum(in)
	assert.Equal(t, len([]rune(in)), len([]rune(out)))
}
