package services

import "time"

// MonthBucket is one calendar month of a reporting window.
type MonthBucket struct {
	Year  int
	Month time.Month
	Label string
	Start time.Time
	End   time.Time
}

// MonthBounds returns the inclusive UTC bounds of a calendar month. The
// end is the last representable instant before the next month begins,
// so adjacent months never share an instant.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// MonthBuckets returns count consecutive month buckets, oldest first,
// starting at the month containing from.
func MonthBuckets(from time.Time, count int) []MonthBucket {
	if count < 1 {
		return nil
	}

	buckets := make([]MonthBucket, 0, count)
	cursor := time.Date(from.UTC().Year(), from.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		start, end := MonthBounds(cursor.Year(), cursor.Month())
		buckets = append(buckets, MonthBucket{
			Year:  cursor.Year(),
			Month: cursor.Month(),
			Label: cursor.Format("January 2006"),
			Start: start,
			End:   end,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}

	return buckets
}

// BucketsEndingAt returns count month buckets, oldest first, with the
// last bucket being the month containing now.
func BucketsEndingAt(now time.Time, count int) []MonthBucket {
	if count < 1 {
		return nil
	}

	first := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(count - 1), 0)

	return MonthBuckets(first, count)
}
