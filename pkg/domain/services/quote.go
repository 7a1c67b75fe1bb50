package services

import "time"

// QuoteValid reports whether a price quote may still be honored on the given
// day. A quote with no validity date is never valid. The boundary is
// inclusive: the expiry date itself still counts.
//
// Callers inject "today" rather than this function reading the wall clock;
// comparison is at date granularity.
func QuoteValid(validUntil *time.Time, today time.Time) bool {
	if validUntil == nil {
		return false
	}
	return !dateOnly(today).After(dateOnly(*validUntil))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
