package report

import (
	"fmt"
	"strings"

	"revcli/pkg/contracts/domain"
)

// Default layout parameters, overridable per request within validated bounds.
const (
	DefaultAmountCol = 40
	DefaultPageWidth = 80
	maxLabelBudget   = 34
)

// BlockOptions configures one section block's layout.
type BlockOptions struct {
	// AmountCol is the target column where the amount starts. It is a soft
	// target: the effective column is pulled left when the widest amount
	// would overflow the block width.
	AmountCol int
	// PageWidth is the hard cap on block width.
	PageWidth int
	// MaxLabelChars overrides the label truncation budget. Zero derives it
	// from the effective amount column.
	MaxLabelChars int
	// IncludeRule inserts a horizontal rule under the header.
	IncludeRule bool
	// HeaderOverride is used verbatim (then styled) instead of the composed
	// default header when non-empty.
	HeaderOverride string
}

// blockWidth computes the rendered width: min(max(42, amountCol+20), pageWidth).
func blockWidth(amountCol, pageWidth int) int {
	w := amountCol + 20
	if w < 42 {
		w = 42
	}
	if w > pageWidth {
		w = pageWidth
	}
	return w
}

// FormatSectionBlock renders one section: a bold-styled header line,
// optionally a rule, then one aligned line per pair. Pairs must already be in
// display order (descending by amount). An empty pair list yields just the
// header, which is how the totals-only breakout renders.
func FormatSectionBlock(section string, pairs []domain.LabeledAmount, total float64, opts BlockOptions) string {
	if opts.AmountCol == 0 {
		opts.AmountCol = DefaultAmountCol
	}
	if opts.PageWidth == 0 {
		opts.PageWidth = DefaultPageWidth
	}

	header := opts.HeaderOverride
	if header == "" {
		header = fmt.Sprintf("%s (%s) All Accounts (Overall Total)", section, FormatUSD(total))
	}

	width := blockWidth(opts.AmountCol, opts.PageWidth)
	lines := []string{BoldAlnum(header)}
	if opts.IncludeRule {
		lines = append(lines, strings.Repeat("=", width))
	}

	// The widest amount decides how far left the amount column must move so
	// every line fits the block width with at least one separating space.
	maxAmount := len("$0")
	for _, p := range pairs {
		if l := len(FormatUSD(p.Amount)); l > maxAmount {
			maxAmount = l
		}
	}
	effectiveCol := opts.AmountCol
	if effectiveCol > width-maxAmount-1 {
		effectiveCol = width - maxAmount - 1
	}
	if effectiveCol < 1 {
		effectiveCol = 1
	}

	budget := opts.MaxLabelChars
	if budget == 0 {
		budget = effectiveCol - 1
		if budget > maxLabelBudget {
			budget = maxLabelBudget
		}
	}

	for _, p := range pairs {
		label := truncateLabel(p.Label, budget)
		amount := FormatUSD(p.Amount)
		spaces := effectiveCol - len([]rune(label)) - len(amount)
		if spaces < 1 {
			spaces = 1
		}
		line := label + strings.Repeat(" ", spaces) + amount
		// Guard against very long amounts pushing past the block width.
		if runes := []rune(line); len(runes) > width {
			line = string(runes[:width])
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// truncateLabel clips a label to the budget, suffixing an ellipsis unless the
// budget is too small (<= 3) to fit one, in which case it hard-truncates.
func truncateLabel(label string, budget int) string {
	runes := []rune(label)
	if len(runes) <= budget {
		return label
	}
	if budget <= 3 {
		if budget < 0 {
			budget = 0
		}
		return string(runes[:budget])
	}
	return string(runes[:budget-3]) + "..."
}

// ReportOptions configures a two-section report composition.
type ReportOptions struct {
	AmountCol     int
	PageWidth     int
	SectionRule   bool
	SeparatorRule bool
	HeaderLeft    string
	HeaderRight   string
}

// TwoSectionReport renders two section blocks with identical layout
// parameters and stacks them vertically: left block, a separating rule (or a
// blank line), right block. The sections are never placed side by side; each
// occupies its own vertical region.
func TwoSectionReport(
	leftName string, leftPairs []domain.LabeledAmount, leftTotal float64,
	rightName string, rightPairs []domain.LabeledAmount, rightTotal float64,
	opts ReportOptions,
) string {
	if opts.AmountCol == 0 {
		opts.AmountCol = DefaultAmountCol
	}
	if opts.PageWidth == 0 {
		opts.PageWidth = DefaultPageWidth
	}

	left := FormatSectionBlock(leftName, leftPairs, leftTotal, BlockOptions{
		AmountCol:      opts.AmountCol,
		PageWidth:      opts.PageWidth,
		IncludeRule:    opts.SectionRule,
		HeaderOverride: opts.HeaderLeft,
	})
	right := FormatSectionBlock(rightName, rightPairs, rightTotal, BlockOptions{
		AmountCol:      opts.AmountCol,
		PageWidth:      opts.PageWidth,
		IncludeRule:    opts.SectionRule,
		HeaderOverride: opts.HeaderRight,
	})

	if opts.SeparatorRule {
		rule := strings.Repeat("=", blockWidth(opts.AmountCol, opts.PageWidth))
		return left + "\n" + rule + "\n" + right
	}
	return left + "\n\n" + right
}
