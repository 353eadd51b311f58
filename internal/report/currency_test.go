package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0"},
		{"sub dollar keeps cents", 0.4, "$0.40"},
		{"sub dollar rounds to cents", 0.456, "$0.46"},
		{"whole dollars round", 1234.5, "$1,235"},
		{"one dollar", 1, "$1"},
		{"negative whole", -5, "-$5"},
		{"negative sub dollar", -0.4, "-$0.40"},
		{"millions", 1234567.89, "$1,234,568"},
		{"just under a dollar stays in the cents branch", 0.999, "$1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.amount))
		})
	}
}
