package dataprocessing

import (
	"time"

	"revcli/pkg/contracts/domain"
)

// Dataset is one ingested file's records under the canonical schema.
// Summary views derive from it; callers that need a filtered view get a
// fresh copy, so a Dataset is never mutated after ingest.
type Dataset struct {
	Records []domain.RevenueRecord
}

// Empty reports whether the dataset has no rows. An empty dataset is an
// explicit state every downstream component handles without erroring.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Records) == 0
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Copy returns a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	out := &Dataset{Records: make([]domain.RevenueRecord, len(d.Records))}
	copy(out.Records, d.Records)
	return out
}

// MinDate returns the earliest known record date, ignoring sentinel dates.
// Returns the zero time when no record carries a real date.
func (d *Dataset) MinDate() time.Time {
	var min time.Time
	for _, rec := range d.Records {
		if rec.Date.IsZero() {
			continue
		}
		if min.IsZero() || rec.Date.Before(min) {
			min = rec.Date
		}
	}
	return min
}

// MaxDate returns the latest known record date, ignoring sentinel dates.
func (d *Dataset) MaxDate() time.Time {
	var max time.Time
	for _, rec := range d.Records {
		if rec.Date.IsZero() {
			continue
		}
		if rec.Date.After(max) {
			max = rec.Date
		}
	}
	return max
}

// TotalRevenue sums revenue over all records.
func (d *Dataset) TotalRevenue() float64 {
	var total float64
	for _, rec := range d.Records {
		total += rec.Revenue
	}
	return total
}

// FilterDateRange returns a new dataset holding the records whose date falls
// inside [start, end], compared at day granularity. A zero start or end leaves
// that bound open. Records carrying the unknown-date sentinel never match a
// bounded filter, mirroring how the booking exports treat them.
func (d *Dataset) FilterDateRange(start, end time.Time) *Dataset {
	out := &Dataset{}
	for _, rec := range d.Records {
		if rec.Date.IsZero() {
			if !start.IsZero() || !end.IsZero() {
				continue
			}
			out.Records = append(out.Records, rec)
			continue
		}
		day := midnight(rec.Date)
		if !start.IsZero() && day.Before(midnight(start)) {
			continue
		}
		if !end.IsZero() && day.After(midnight(end)) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// Stats holds the headline figures for one dataset snapshot.
type Stats struct {
	Rows         int       `json:"rows"`
	TotalRevenue float64   `json:"total_revenue"`
	Advertisers  int       `json:"advertisers"`
	Deals        int       `json:"deals"`
	Creatives    int       `json:"creatives"`
	MinDate      time.Time `json:"min_date"`
	MaxDate      time.Time `json:"max_date"`
}

// Stats computes the headline figures: row count, total revenue, and distinct
// advertiser, deal, and creative counts.
func (d *Dataset) Stats() Stats {
	advertisers := make(map[string]struct{})
	deals := make(map[string]struct{})
	creatives := make(map[string]struct{})
	for _, rec := range d.Records {
		advertisers[rec.Advertiser] = struct{}{}
		deals[rec.DealID] = struct{}{}
		creatives[rec.CreativeID] = struct{}{}
	}
	return Stats{
		Rows:         d.Len(),
		TotalRevenue: d.TotalRevenue(),
		Advertisers:  len(advertisers),
		Deals:        len(deals),
		Creatives:    len(creatives),
		MinDate:      d.MinDate(),
		MaxDate:      d.MaxDate(),
	}
}

// fieldValue reads one canonical field off a record. Date renders at day
// granularity; the sentinel renders as "unknown" so grouped output stays
// explicit about unparseable dates.
func fieldValue(rec *domain.RevenueRecord, field string) string {
	switch field {
	case domain.FieldDate:
		if rec.Date.IsZero() {
			return "unknown"
		}
		return rec.Date.Format("2006-01-02")
	case domain.FieldChannel:
		return rec.Channel
	case domain.FieldAdvertiser:
		return rec.Advertiser
	case domain.FieldSSP:
		return rec.SSP
	case domain.FieldSystem:
		return rec.System
	case domain.FieldDealID:
		return rec.DealID
	case domain.FieldCreativeID:
		return rec.CreativeID
	default:
		return ""
	}
}
