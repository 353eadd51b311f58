package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"revcli/pkg/contracts/domain"
)

func sampleDataset() *Dataset {
	return &Dataset{Records: []domain.RevenueRecord{
		{Date: day(2025, 1, 10), Channel: "PMP", Advertiser: "Acme", SSP: "Magnite", System: "DSP-1", DealID: "D1", CreativeID: "C1", Revenue: 100},
		{Date: day(2025, 1, 12), Channel: "Open Exchange", Advertiser: "Globex", SSP: "PubMatic", System: "DSP-1", DealID: "D2", CreativeID: "C2", Revenue: 50.5},
		{Date: day(2025, 1, 20), Channel: "PMP", Advertiser: "Acme", SSP: "PubMatic", System: "DSP-2", DealID: "D1", CreativeID: "C3", Revenue: 25},
		{Date: time.Time{}, Channel: "Open", Advertiser: "Initech", SSP: "Magnite", System: "DSP-2", DealID: "D3", CreativeID: "C4", Revenue: 10},
	}}
}

func TestDataset_Empty(t *testing.T) {
	var nilDS *Dataset
	assert.True(t, nilDS.Empty())
	assert.True(t, (&Dataset{}).Empty())
	assert.False(t, sampleDataset().Empty())
}

func TestDataset_MinMaxDateSkipSentinels(t *testing.T) {
	ds := sampleDataset()
	assert.Equal(t, day(2025, 1, 10), ds.MinDate())
	assert.Equal(t, day(2025, 1, 20), ds.MaxDate())

	onlySentinels := &Dataset{Records: []domain.RevenueRecord{{Revenue: 1}}}
	assert.True(t, onlySentinels.MinDate().IsZero())
	assert.True(t, onlySentinels.MaxDate().IsZero())
}

func TestDataset_TotalRevenue(t *testing.T) {
	assert.InDelta(t, 185.5, sampleDataset().TotalRevenue(), 1e-9)
}

func TestDataset_FilterDateRange(t *testing.T) {
	ds := sampleDataset()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"open range keeps everything including sentinels", time.Time{}, time.Time{}, 4},
		{"inclusive bounds", day(2025, 1, 10), day(2025, 1, 20), 3},
		{"start only drops earlier and sentinel rows", day(2025, 1, 12), time.Time{}, 2},
		{"end only", time.Time{}, day(2025, 1, 12), 2},
		{"empty window", day(2025, 2, 1), day(2025, 2, 28), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ds.FilterDateRange(tt.start, tt.end)
			assert.Equal(t, tt.want, got.Len())
		})
	}

	// The source dataset is never mutated by filtering.
	assert.Equal(t, 4, ds.Len())
}

func TestDataset_Stats(t *testing.T) {
	stats := sampleDataset().Stats()

	assert.Equal(t, 4, stats.Rows)
	assert.InDelta(t, 185.5, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 3, stats.Advertisers)
	assert.Equal(t, 3, stats.Deals)
	assert.Equal(t, 4, stats.Creatives)
	assert.Equal(t, day(2025, 1, 10), stats.MinDate)
	assert.Equal(t, day(2025, 1, 20), stats.MaxDate)
}

func TestFieldValue(t *testing.T) {
	rec := &domain.RevenueRecord{
		Date: day(2025, 1, 10), Channel: "PMP", Advertiser: "Acme",
		SSP: "Magnite", System: "DSP-1", DealID: "D1", CreativeID: "C1",
	}

	assert.Equal(t, "2025-01-10", fieldValue(rec, domain.FieldDate))
	assert.Equal(t, "PMP", fieldValue(rec, domain.FieldChannel))
	assert.Equal(t, "Acme", fieldValue(rec, domain.FieldAdvertiser))
	assert.Equal(t, "", fieldValue(rec, "no such field"))

	sentinel := &domain.RevenueRecord{}
	assert.Equal(t, "unknown", fieldValue(sentinel, domain.FieldDate))
}
