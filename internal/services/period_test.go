package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thirty one day month",
			year:      2025,
			month:     time.January,
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "february in a common year",
			year:      2025,
			month:     time.February,
			wantStart: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 2, 28, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     time.February,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "december rolls into january",
			year:      2025,
			month:     time.December,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 12, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.year, tt.month)
			assert.True(t, start.Equal(tt.wantStart), "start %v", start)
			assert.True(t, end.Equal(tt.wantEnd), "end %v", end)
		})
	}
}

func TestMonthBounds_AdjacentMonthsDoNotOverlap(t *testing.T) {
	_, janEnd := MonthBounds(2025, time.January)
	febStart, _ := MonthBounds(2025, time.February)

	assert.True(t, janEnd.Before(febStart))
	assert.Equal(t, time.Nanosecond, febStart.Sub(janEnd))
}

func TestMonthBuckets(t *testing.T) {
	from := time.Date(2025, 11, 15, 10, 30, 0, 0, time.UTC)

	buckets := MonthBuckets(from, 3)

	require.Len(t, buckets, 3)
	assert.Equal(t, "November 2025", buckets[0].Label)
	assert.Equal(t, "December 2025", buckets[1].Label)
	assert.Equal(t, "January 2026", buckets[2].Label)
	assert.Equal(t, 2026, buckets[2].Year)
	assert.Equal(t, time.January, buckets[2].Month)

	// Mid-month anchors snap to the first of the month.
	assert.True(t, buckets[0].Start.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthBuckets_NonPositiveCount(t *testing.T) {
	assert.Nil(t, MonthBuckets(time.Now(), 0))
	assert.Nil(t, MonthBuckets(time.Now(), -4))
}

func TestBucketsEndingAt(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	buckets := BucketsEndingAt(now, 6)

	require.Len(t, buckets, 6)
	assert.Equal(t, "September 2025", buckets[0].Label)
	assert.Equal(t, "February 2026", buckets[5].Label)

	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, time.Nanosecond, buckets[i].Start.Sub(buckets[i-1].End),
			"buckets %d and %d must be contiguous", i-1, i)
	}
}

func TestBucketsEndingAt_SingleMonth(t *testing.T) {
	now := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	buckets := BucketsEndingAt(now, 1)

	require.Len(t, buckets, 1)
	assert.Equal(t, "July 2025", buckets[0].Label)
	assert.True(t, now.After(buckets[0].Start) && now.Before(buckets[0].End))
}
