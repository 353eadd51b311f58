package dataprocessing

import (
	"fmt"
	"time"
)

// WeekIndex returns the 1-based 7-day bucket of d relative to the dataset's
// earliest date. These are not ISO calendar weeks: both times are normalized
// to midnight and the index is floor(days/7)+1, so the minimum date itself is
// always Week 1. Sentinel (zero) dates bucket to 1 like the month path, so
// the index is always >= 1.
func WeekIndex(d, start time.Time) int {
	if d.IsZero() || start.IsZero() {
		return 1
	}
	days := int(midnight(d).Sub(midnight(start)).Hours() / 24)
	return days/7 + 1
}

// WeekLabel renders the relative week index as a display label.
func WeekLabel(d, start time.Time) string {
	return fmt.Sprintf("Week %d", WeekIndex(d, start))
}

// MonthBucket is the four-per-month calendar bucket for one record date:
// a stable sort key, a human month label, and a W1..W4 intra-month bucket
// independent of week boundaries.
type MonthBucket struct {
	Key    string // "2006-01", sorts chronologically
	Label  string // "Jan 2006"
	Bucket int    // 1..4
}

// WeekOfMonth renders the intra-month bucket as "W1".."W4".
func (b MonthBucket) WeekOfMonth() string {
	return fmt.Sprintf("W%d", b.Bucket)
}

// BucketMonth computes the four-per-month bucket for a date. The bucket is
// floor((day-1)*4/daysInMonth)+1 clamped to [1,4]. Sentinel (zero) dates
// default to bucket 1 under an "unknown" month key; they must never panic
// the bucketing pass.
func BucketMonth(d time.Time) MonthBucket {
	if d.IsZero() {
		return MonthBucket{Key: "unknown", Label: "Unknown", Bucket: 1}
	}
	day := d.Day()
	dim := daysInMonth(d)
	bucket := (day-1)*4/dim + 1
	if bucket < 1 {
		bucket = 1
	}
	if bucket > 4 {
		bucket = 4
	}
	return MonthBucket{
		Key:    d.Format("2006-01"),
		Label:  d.Format("Jan 2006"),
		Bucket: bucket,
	}
}

// daysInMonth returns the number of days in t's month.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
