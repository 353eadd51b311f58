package domain

import (
	"time"
)

// Export format selectors for summary tables.
const (
	FormatTSV      = "tsv"
	FormatMarkdown = "markdown"
)

// ReportParams carries the caller-supplied display and filter parameters for
// one analysis request. Defaults are applied by Normalize, bounds are enforced
// by the validator tags at the transport layer.
type ReportParams struct {
	TopN      int       `json:"top_n" validate:"min=1,max=1000"`
	AmountCol int       `json:"amount_col" validate:"min=30,max=60"`
	PageWidth int       `json:"page_width" validate:"min=42,max=80"`
	Format    string    `json:"format" validate:"oneof=tsv markdown"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DefaultReportParams returns the documented fallback parameters.
func DefaultReportParams() ReportParams {
	return ReportParams{
		TopN:      25,
		AmountCol: 40,
		PageWidth: 80,
		Format:    FormatTSV,
	}
}

// Normalize fills zero-valued fields with the documented defaults.
func (p ReportParams) Normalize() ReportParams {
	def := DefaultReportParams()
	if p.TopN <= 0 {
		p.TopN = def.TopN
	}
	if p.AmountCol <= 0 {
		p.AmountCol = def.AmountCol
	}
	if p.PageWidth <= 0 {
		p.PageWidth = def.PageWidth
	}
	if p.Format == "" {
		p.Format = def.Format
	}
	return p
}
