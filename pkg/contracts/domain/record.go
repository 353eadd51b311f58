package domain

import (
	"time"
)

// Canonical column names every downstream component assumes exist after
// normalization. Order matters: it is the order sections and exports use.
const (
	FieldDate       = "Date - EST"
	FieldChannel    = "RTB Channel"
	FieldAdvertiser = "RTB Advertiser"
	FieldSSP        = "RTB SSP"
	FieldSystem     = "System"
	FieldDealID     = "RTB Deal ID"
	FieldCreativeID = "RTB Creative ID"
	FieldRevenue    = "Revenue"
)

// RequiredColumns lists the canonical columns an uploaded file must resolve to.
var RequiredColumns = []string{
	FieldDate,
	FieldChannel,
	FieldAdvertiser,
	FieldSSP,
	FieldSystem,
	FieldDealID,
	FieldCreativeID,
	FieldRevenue,
}

// RevenueRecord is one normalized advertising transaction row.
// A zero Date (Date.IsZero() == true) is the "unknown date" sentinel for
// values that could not be parsed; such rows are kept, never dropped.
type RevenueRecord struct {
	Date       time.Time `json:"date"`
	Channel    string    `json:"channel"`
	Advertiser string    `json:"advertiser"`
	SSP        string    `json:"ssp"`
	System     string    `json:"system"`
	DealID     string    `json:"deal_id"`
	CreativeID string    `json:"creative_id"`
	Revenue    float64   `json:"revenue"`
}

// ChannelBucket is the derived channel classification for a record.
type ChannelBucket string

const (
	BucketPMP          ChannelBucket = "PMP"
	BucketOE           ChannelBucket = "OE"
	BucketUnclassified ChannelBucket = ""
)

// LabeledAmount is one (label, amount) pair in a ranked report section.
type LabeledAmount struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
