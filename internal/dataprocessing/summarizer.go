package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"revcli/pkg/contracts/domain"
)

// Section names, in the order the analyzer presents them.
const (
	SectionRevenueByDate = "Revenue by Date"
	SectionByChannel     = "By RTB Channel"
	SectionByAdvertiser  = "By RTB Advertiser"
	SectionBySSP         = "By RTB SSP"
	SectionBySystem      = "By System"
	SectionByDealID      = "By Deal ID"
	SectionByCreativeID  = "By Creative ID"
)

// advertiserScanCap bounds the internally uncapped advertiser pass used by
// the top-SSP join. Effectively "all rows" for any realistic upload.
const advertiserScanCap = 10000

// groupKeySep joins group-key tuples into map keys. Unit separator so real
// cell text can never collide with a composite key.
const groupKeySep = "\x1f"

// Summarizer is the single source of truth for grouped revenue summaries.
// It derives every named section from one Dataset snapshot and never mutates
// the snapshot it reads.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer. A nil logger falls back to the default.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// GroupSum groups the dataset by the given canonical fields, sums revenue per
// group, sorts descending by the sum, rounds the displayed sum to 2 decimal
// places, and truncates to the row cap. Ties keep first-seen order via the
// stable sort; only the sums are order-significant.
func (s *Summarizer) GroupSum(ds *Dataset, by []string, cap int) *domain.SummaryTable {
	table := &domain.SummaryTable{
		Columns: append(append([]string{}, by...), domain.FieldRevenue),
	}
	if ds.Empty() {
		return table
	}

	type group struct {
		keys []string
		sum  float64
	}
	index := make(map[string]int)
	var groups []*group

	for i := range ds.Records {
		rec := &ds.Records[i]
		keys := make([]string, len(by))
		for j, field := range by {
			keys[j] = fieldValue(rec, field)
		}
		mapKey := strings.Join(keys, groupKeySep)
		if gi, ok := index[mapKey]; ok {
			groups[gi].sum += rec.Revenue
		} else {
			index[mapKey] = len(groups)
			groups = append(groups, &group{keys: keys, sum: rec.Revenue})
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].sum > groups[j].sum
	})

	for _, g := range groups {
		if cap > 0 && len(table.Rows) >= cap {
			break
		}
		table.Rows = append(table.Rows, domain.SummaryRow{
			Keys:    g.keys,
			Revenue: round2(g.sum),
		})
	}
	return table
}

// Sections builds all named summary tables for one snapshot, capped to topN
// rows each. An empty dataset yields the sections with zero rows.
func (s *Summarizer) Sections(ctx context.Context, ds *Dataset, topN int) []*domain.SummaryTable {
	s.logger.InfoContext(ctx, "building summary sections",
		slog.Int("record_count", ds.Len()),
		slog.Int("top_n", topN))

	byDate := s.GroupSum(ds, []string{domain.FieldDate}, topN)
	byDate.Name = SectionRevenueByDate
	byDate.Columns = []string{"Date", domain.FieldRevenue}

	byChannel := s.GroupSum(ds, []string{domain.FieldChannel}, topN)
	byChannel.Name = SectionByChannel

	byAdvertiser := s.advertiserWithTopSSP(ds, topN)

	bySSP := s.GroupSum(ds, []string{domain.FieldSSP}, topN)
	bySSP.Name = SectionBySSP

	bySystem := s.GroupSum(ds, []string{domain.FieldSystem}, topN)
	bySystem.Name = SectionBySystem

	byDeal := s.GroupSum(ds, []string{domain.FieldDealID, domain.FieldAdvertiser}, topN)
	byDeal.Name = SectionByDealID

	byCreative := s.GroupSum(ds, []string{domain.FieldCreativeID, domain.FieldAdvertiser}, topN)
	byCreative.Name = SectionByCreativeID

	return []*domain.SummaryTable{
		byDate, byChannel, byAdvertiser, bySSP, bySystem, byDeal, byCreative,
	}
}

// advertiserWithTopSSP builds the advertiser summary augmented with each
// advertiser's single highest-revenue SSP. The advertiser totals are computed
// uncapped, the top SSP comes from a separate advertiser×SSP pass (ties to
// the first-seen SSP), and the join happens once before the caller's row cap
// is applied.
func (s *Summarizer) advertiserWithTopSSP(ds *Dataset, topN int) *domain.SummaryTable {
	table := &domain.SummaryTable{
		Name:    SectionByAdvertiser,
		Columns: []string{domain.FieldAdvertiser, domain.FieldSSP, domain.FieldRevenue},
	}
	if ds.Empty() {
		return table
	}

	totals := s.GroupSum(ds, []string{domain.FieldAdvertiser}, advertiserScanCap)
	pairs := s.GroupSum(ds, []string{domain.FieldAdvertiser, domain.FieldSSP}, advertiserScanCap)

	topSSP := make(map[string]string)
	best := make(map[string]float64)
	for _, row := range pairs.Rows {
		advertiser, ssp := row.Keys[0], row.Keys[1]
		if cur, ok := best[advertiser]; !ok || row.Revenue > cur {
			best[advertiser] = row.Revenue
			topSSP[advertiser] = ssp
		}
	}

	for _, row := range totals.Rows {
		if topN > 0 && len(table.Rows) >= topN {
			break
		}
		advertiser := row.Keys[0]
		table.Rows = append(table.Rows, domain.SummaryRow{
			Keys:    []string{advertiser, topSSP[advertiser]},
			Revenue: row.Revenue,
		})
	}
	return table
}

// AdvertiserPairsByChannel returns (advertiser, revenue) pairs for records in
// one channel bucket, sorted descending by revenue. Amounts are unrounded;
// rounding happens at render time.
func (s *Summarizer) AdvertiserPairsByChannel(ds *Dataset, bucket domain.ChannelBucket) []domain.LabeledAmount {
	index := make(map[string]int)
	var pairs []domain.LabeledAmount
	for i := range ds.Records {
		rec := &ds.Records[i]
		if ClassifyChannel(rec.Channel) != bucket {
			continue
		}
		if pi, ok := index[rec.Advertiser]; ok {
			pairs[pi].Amount += rec.Revenue
		} else {
			index[rec.Advertiser] = len(pairs)
			pairs = append(pairs, domain.LabeledAmount{Label: rec.Advertiser, Amount: rec.Revenue})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Amount > pairs[j].Amount
	})
	return pairs
}

// TotalByChannel sums revenue over records classified into one bucket.
func (s *Summarizer) TotalByChannel(ds *Dataset, bucket domain.ChannelBucket) float64 {
	var total float64
	for i := range ds.Records {
		if ClassifyChannel(ds.Records[i].Channel) == bucket {
			total += ds.Records[i].Revenue
		}
	}
	return total
}

// AdvertiserByWeek groups one channel bucket's advertiser revenue by relative
// week. Keys are "Week N" labels relative to the dataset's earliest date;
// each week's pairs are sorted descending by revenue.
func (s *Summarizer) AdvertiserByWeek(ds *Dataset, bucket domain.ChannelBucket) map[string][]domain.LabeledAmount {
	out := make(map[string][]domain.LabeledAmount)
	if ds.Empty() {
		return out
	}
	start := ds.MinDate()

	type weekAdv struct {
		week       string
		advertiser string
	}
	index := make(map[weekAdv]int)
	type entry struct {
		week string
		pair domain.LabeledAmount
	}
	var entries []entry

	for i := range ds.Records {
		rec := &ds.Records[i]
		if ClassifyChannel(rec.Channel) != bucket {
			continue
		}
		week := WeekLabel(rec.Date, start)
		key := weekAdv{week, rec.Advertiser}
		if ei, ok := index[key]; ok {
			entries[ei].pair.Amount += rec.Revenue
		} else {
			index[key] = len(entries)
			entries = append(entries, entry{week, domain.LabeledAmount{Label: rec.Advertiser, Amount: rec.Revenue}})
		}
	}

	for _, e := range entries {
		out[e.week] = append(out[e.week], e.pair)
	}
	for week := range out {
		pairs := out[week]
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].Amount > pairs[j].Amount
		})
		out[week] = pairs
	}
	return out
}

// AdvertiserByMonthWeek groups one channel bucket's advertiser revenue by
// (month, W1..W4) calendar bucket. It returns the month key -> label mapping
// and, per month key, the per-bucket pairs sorted descending by revenue.
func (s *Summarizer) AdvertiserByMonthWeek(ds *Dataset, bucket domain.ChannelBucket) (map[string]string, map[string]map[string][]domain.LabeledAmount) {
	months := make(map[string]string)
	data := make(map[string]map[string][]domain.LabeledAmount)
	if ds.Empty() {
		return months, data
	}

	type cell struct {
		month      string
		week       string
		advertiser string
	}
	index := make(map[cell]int)
	type entry struct {
		month string
		label string
		week  string
		pair  domain.LabeledAmount
	}
	var entries []entry

	for i := range ds.Records {
		rec := &ds.Records[i]
		if ClassifyChannel(rec.Channel) != bucket {
			continue
		}
		mb := BucketMonth(rec.Date)
		week := mb.WeekOfMonth()
		key := cell{mb.Key, week, rec.Advertiser}
		if ei, ok := index[key]; ok {
			entries[ei].pair.Amount += rec.Revenue
		} else {
			index[key] = len(entries)
			entries = append(entries, entry{mb.Key, mb.Label, week, domain.LabeledAmount{Label: rec.Advertiser, Amount: rec.Revenue}})
		}
	}

	for _, e := range entries {
		months[e.month] = e.label
		if data[e.month] == nil {
			data[e.month] = make(map[string][]domain.LabeledAmount)
		}
		data[e.month][e.week] = append(data[e.month][e.week], e.pair)
	}
	for month := range data {
		for week := range data[month] {
			pairs := data[month][week]
			sort.SliceStable(pairs, func(i, j int) bool {
				return pairs[i].Amount > pairs[j].Amount
			})
			data[month][week] = pairs
		}
	}
	return months, data
}

// round2 rounds to 2 decimal places for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
