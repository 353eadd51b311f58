package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekIndex(t *testing.T) {
	start := day(2025, 1, 6)

	tests := []struct {
		name string
		d    time.Time
		want int
	}{
		{"start date itself", start, 1},
		{"sixth day", day(2025, 1, 12), 1},
		{"seventh day rolls over", day(2025, 1, 13), 2},
		{"three weeks out", day(2025, 1, 27), 4},
		{"time of day is ignored", time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekIndex(tt.d, start))
		})
	}
}

func TestWeekLabel(t *testing.T) {
	start := day(2025, 1, 6)
	assert.Equal(t, "Week 1", WeekLabel(start, start))
	assert.Equal(t, "Week 2", WeekLabel(day(2025, 1, 13), start))
}

func TestWeekIndex_SentinelDates(t *testing.T) {
	start := day(2025, 1, 6)

	// An unparseable date carries the zero sentinel; it buckets to week 1
	// like the month path, never to a negative index.
	assert.Equal(t, 1, WeekIndex(time.Time{}, start))
	assert.Equal(t, "Week 1", WeekLabel(time.Time{}, start))

	// A dataset with no usable dates has a zero minimum.
	assert.Equal(t, 1, WeekIndex(day(2025, 1, 6), time.Time{}))
	assert.Equal(t, 1, WeekIndex(time.Time{}, time.Time{}))
}

func TestBucketMonth(t *testing.T) {
	tests := []struct {
		name       string
		d          time.Time
		wantKey    string
		wantLabel  string
		wantBucket int
	}{
		{"first of month", day(2025, 1, 1), "2025-01", "Jan 2025", 1},
		{"mid january", day(2025, 1, 15), "2025-01", "Jan 2025", 2},
		{"late january", day(2025, 1, 24), "2025-01", "Jan 2025", 3},
		{"last of january", day(2025, 1, 31), "2025-01", "Jan 2025", 4},
		{"last of short february", day(2025, 2, 28), "2025-02", "Feb 2025", 4},
		{"leap february", day(2024, 2, 29), "2024-02", "Feb 2024", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketMonth(tt.d)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantBucket, got.Bucket)
		})
	}
}

func TestBucketMonth_SentinelDate(t *testing.T) {
	got := BucketMonth(time.Time{})
	assert.Equal(t, "unknown", got.Key)
	assert.Equal(t, "Unknown", got.Label)
	assert.Equal(t, 1, got.Bucket)
	assert.Equal(t, "W1", got.WeekOfMonth())
}

func TestWeekOfMonth(t *testing.T) {
	assert.Equal(t, "W3", MonthBucket{Bucket: 3}.WeekOfMonth())
}
