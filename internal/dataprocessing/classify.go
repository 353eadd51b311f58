package dataprocessing

import (
	"strings"

	"revcli/pkg/contracts/domain"
)

// Channel keyword sets, evaluated by substring containment in declared order.
// PMP keywords are tested strictly before OE keywords: a label containing
// tokens from both sets (e.g. "open pmp deal") classifies as PMP. That
// priority is a behavioral tie-break and must be preserved.
var (
	pmpKeywords = []string{"pmp", "private", "preferred", "deal", "programmatic guaranteed", "pg"}
	oeKeywords  = []string{"oe", "open exchange", "open", "open auction"}
)

// ClassifyChannel maps a free-text channel label to its bucket.
// It is total and deterministic: empty or unmatched labels are unclassified.
func ClassifyChannel(label string) domain.ChannelBucket {
	v := strings.ToLower(strings.TrimSpace(label))
	if v == "" {
		return domain.BucketUnclassified
	}
	for _, kw := range pmpKeywords {
		if strings.Contains(v, kw) {
			return domain.BucketPMP
		}
	}
	for _, kw := range oeKeywords {
		if strings.Contains(v, kw) {
			return domain.BucketOE
		}
	}
	return domain.BucketUnclassified
}
