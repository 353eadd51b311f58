package report

import (
	"fmt"
	"sort"
	"strings"

	"revcli/pkg/contracts/domain"
)

// TotalsBreakout renders the OE/PMP totals report: two header-only sections
// separated by a rule, each header carrying its channel's overall total.
func TotalsBreakout(totalOE, totalPMP float64, amountCol, pageWidth int) string {
	return TwoSectionReport(
		"OE", nil, totalOE,
		"PMP", nil, totalPMP,
		ReportOptions{
			AmountCol:     amountCol,
			PageWidth:     pageWidth,
			SeparatorRule: true,
		},
	)
}

// AdvertiserBreakout renders the OE/PMP advertiser report. Each section lists
// the channel's top advertisers; the header states whether the section shows
// every account or a top-N slice.
func AdvertiserBreakout(oePairs, pmpPairs []domain.LabeledAmount, topN, amountCol, pageWidth int) string {
	totalOE := sumAmounts(oePairs)
	totalPMP := sumAmounts(pmpPairs)

	return TwoSectionReport(
		"OE", capPairs(oePairs, topN), totalOE,
		"PMP", capPairs(pmpPairs, topN), totalPMP,
		ReportOptions{
			AmountCol:     amountCol,
			PageWidth:     pageWidth,
			SeparatorRule: true,
			HeaderLeft:    breakoutHeader("OE", totalOE, len(oePairs), topN),
			HeaderRight:   breakoutHeader("PMP", totalPMP, len(pmpPairs), topN),
		},
	)
}

// MonthWeekBreakout renders the per-month, per-intra-month-bucket advertiser
// report: all OE blocks in calendar order, a rule, then all PMP blocks.
// Month labels appear in block headers only when the dataset spans more than
// one month.
func MonthWeekBreakout(
	monthsOE map[string]string, dataOE map[string]map[string][]domain.LabeledAmount,
	monthsPMP map[string]string, dataPMP map[string]map[string][]domain.LabeledAmount,
	topN, amountCol, pageWidth int,
) string {
	keySet := make(map[string]struct{})
	for k := range monthsOE {
		keySet[k] = struct{}{}
	}
	for k := range monthsPMP {
		keySet[k] = struct{}{}
	}
	monthKeys := make([]string, 0, len(keySet))
	for k := range keySet {
		monthKeys = append(monthKeys, k)
	}
	sort.Strings(monthKeys)
	multiMonth := len(monthKeys) > 1

	oeBlocks := channelMonthBlocks("OE", monthKeys, monthsOE, monthsPMP, dataOE, multiMonth, topN, amountCol, pageWidth)
	pmpBlocks := channelMonthBlocks("PMP", monthKeys, monthsPMP, monthsOE, dataPMP, multiMonth, topN, amountCol, pageWidth)

	rule := strings.Repeat("=", blockWidth(amountCol, pageWidth))
	parts := make([]string, 0, len(oeBlocks)+len(pmpBlocks)+1)
	parts = append(parts, oeBlocks...)
	parts = append(parts, rule)
	parts = append(parts, pmpBlocks...)
	return strings.Join(parts, "\n\n")
}

// channelMonthBlocks renders one channel's blocks in month order, W1..W4
// within each month. Month labels resolve from the channel's own mapping
// first, the counterpart channel's second, the raw key last.
func channelMonthBlocks(
	channel string, monthKeys []string,
	months, altMonths map[string]string,
	data map[string]map[string][]domain.LabeledAmount,
	multiMonth bool, topN, amountCol, pageWidth int,
) []string {
	var blocks []string
	for _, mkey := range monthKeys {
		mlabel := months[mkey]
		if mlabel == "" {
			mlabel = altMonths[mkey]
		}
		if mlabel == "" {
			mlabel = mkey
		}
		weekMap := data[mkey]
		for _, w := range []string{"W1", "W2", "W3", "W4"} {
			pairs, ok := weekMap[w]
			if !ok {
				continue
			}
			total := sumAmounts(pairs)
			cnt := len(pairs)

			var header string
			switch {
			case multiMonth && cnt <= topN:
				header = fmt.Sprintf("%s %s %s (%s) all %d accounts", mlabel, w, channel, FormatUSD(total), cnt)
			case multiMonth:
				header = fmt.Sprintf("%s %s %s (%s) top %d accounts of %d", mlabel, w, channel, FormatUSD(total), topN, cnt)
			case cnt <= topN:
				header = fmt.Sprintf("%s %s (%s) all %d accounts", w, channel, FormatUSD(total), cnt)
			default:
				header = fmt.Sprintf("%s %s (%s) top %d accounts of %d", w, channel, FormatUSD(total), topN, cnt)
			}

			blocks = append(blocks, FormatSectionBlock(channel, capPairs(pairs, topN), total, BlockOptions{
				AmountCol:      amountCol,
				PageWidth:      pageWidth,
				HeaderOverride: header,
			}))
		}
	}
	return blocks
}

// breakoutHeader builds the advertiser breakout header for one channel.
func breakoutHeader(channel string, total float64, count, topN int) string {
	if count <= topN {
		return fmt.Sprintf("%s (%s Overall Total) - all %d accounts below", channel, FormatUSD(total), count)
	}
	return fmt.Sprintf("%s (%s Overall Total) - Top %d accounts below of %d", channel, FormatUSD(total), topN, count)
}

func sumAmounts(pairs []domain.LabeledAmount) float64 {
	var total float64
	for _, p := range pairs {
		total += p.Amount
	}
	return total
}

func capPairs(pairs []domain.LabeledAmount, n int) []domain.LabeledAmount {
	if n > 0 && len(pairs) > n {
		return pairs[:n]
	}
	return pairs
}
