package report

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatUSD renders an amount as US currency with the report card rule:
// cents show only when the absolute value is below one dollar.
//
//	0      -> "$0"
//	0.4    -> "$0.40"
//	1234.5 -> "$1,235"
//	-5     -> "-$5"
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	abs := math.Abs(amount)

	var core string
	switch {
	case abs == 0:
		core = "0"
	case abs < 1:
		core = humanize.FormatFloat("#,###.##", abs)
	default:
		core = humanize.Comma(int64(math.Round(abs)))
	}
	return sign + "$" + core
}
