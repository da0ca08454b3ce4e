package temporal

import (
	"math/rand/v2"
	"time"
)

// CalculateAge returns whole calendar years elapsed from birth to at.
// Negative spans yield zero.
func CalculateAge(birth, at time.Time) int {
	if at.Before(birth) {
		return 0
	}
	years := at.Year() - birth.Year()
	// Not yet had this year's birthday.
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	return years
}

// FormatDate renders t as an ISO 8601 date (2006-01-02).
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// FormatDateTime renders t as RFC 3339.
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseDate parses an ISO 8601 date (2006-01-02).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// ParseDateTime parses an RFC 3339 timestamp.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// RandomDateTimeInRange returns a timestamp drawn uniformly from
// [start, end). It fails when end precedes start; start == end returns
// start.
func RandomDateTimeInRange(rng *rand.Rand, start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, ErrInvalidDateRange
	}
	span := end.Sub(start)
	if span == 0 {
		return start, nil
	}
	return start.Add(time.Duration(rng.Int64N(int64(span)))), nil
}

// RandomDateInRange returns a day-aligned date drawn uniformly from the
// inclusive day range [start, end].
func RandomDateInRange(rng *rand.Rand, start, end time.Time) (time.Time, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return time.Time{}, ErrInvalidDateRange
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return start.AddDate(0, 0, rng.IntN(days)), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
