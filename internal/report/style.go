package report

import (
	"strings"
)

// BoldAlnum maps ASCII letters and digits to their Mathematical Bold Unicode
// variants, leaving every other rune untouched. Used to style header lines in
// plain-text report blocks.
func BoldAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(0x1D400 + (r - 'A'))
		case r >= 'a' && r <= 'z':
			b.WriteRune(0x1D41A + (r - 'a'))
		case r >= '0' && r <= '9':
			b.WriteRune(0x1D7CE + (r - '0'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
