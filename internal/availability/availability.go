// Package availability decides which calendar dates are open for booking.
// It is pure date arithmetic with no transport or storage dependencies.
package availability

import (
	"fmt"
	"time"

	"seatwise/internal/settings"
)

// DateLayout is the canonical wire format for calendar dates
const DateLayout = settings.DateLayout

// ParseDate parses a YYYY-MM-DD wire date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// Truncate drops the time-of-day component
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateAvailable reports whether a date is open for booking. Rules are
// applied in a fixed order; the first failing rule rejects the date:
//
//  1. dates in the past are never available
//  2. a non-empty allowlist admits only its members
//  3. a blocklisted date is rejected, even when allowlisted
//  4. a non-empty weekday filter admits only matching weekdays
//  5. dates before the booking window start are rejected
//  6. dates after the booking window end are rejected
//  7. dates more than maxAdvanceDays ahead of today are rejected
func IsDateAvailable(date, today time.Time, rules settings.DateSettings) bool {
	date = Truncate(date)
	today = Truncate(today)

	if date.Before(today) {
		return false
	}

	dateStr := date.Format(DateLayout)

	if len(rules.AvailableDates) > 0 && !contains(rules.AvailableDates, dateStr) {
		return false
	}

	if contains(rules.BlockedDates, dateStr) {
		return false
	}

	if len(rules.Weekdays) > 0 && !containsInt(rules.Weekdays, int(date.Weekday())) {
		return false
	}

	if rules.BookingStart != "" {
		if start, err := ParseDate(rules.BookingStart); err == nil && date.Before(start) {
			return false
		}
	}

	if rules.BookingEnd != "" {
		if end, err := ParseDate(rules.BookingEnd); err == nil && date.After(end) {
			return false
		}
	}

	if rules.MaxAdvanceDays > 0 {
		horizon := today.AddDate(0, 0, rules.MaxAdvanceDays)
		if date.After(horizon) {
			return false
		}
	}

	return true
}

// AvailableDatesBetween lists every available date in the inclusive range
func AvailableDatesBetween(from, to, today time.Time, rules settings.DateSettings) []string {
	from = Truncate(from)
	to = Truncate(to)

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsDateAvailable(d, today, rules) {
			dates = append(dates, d.Format(DateLayout))
		}
	}
	return dates
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, n := range values {
		if n == v {
			return true
		}
	}
	return false
}
