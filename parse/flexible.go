package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kairos-go/kairos/calendar"
)

// flexiblePatterns covers the common separators spec.md §4.6.4 names:
// dash, slash, dot, and a textual-month form. Each candidate date is
// round-trip validated by the caller, which catches rollovers like
// Feb 30 -> Mar 2.
var (
	numericDashSlashDot = regexp.MustCompile(`^(\d{1,4})([-/.])(\d{1,2})([-/.])(\d{1,4})$`)
	textualMonth        = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3,9})\.?\s+(\d{4})$`)
)

var fullMonths = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func parseFlexible(input, localeHint string) (int64, bool) {
	if m := textualMonth.FindStringSubmatch(input); m != nil {
		day, err := strconv.Atoi(m[1])
		month, ok := fullMonths[strings.ToLower(m[2])]
		year, err2 := strconv.Atoi(m[3])
		if err != nil || err2 != nil || !ok {
			return 0, false
		}
		return roundTrip(year, month, day)
	}

	m := numericDashSlashDot.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}
	a, errA := strconv.Atoi(m[1])
	b, errB := strconv.Atoi(m[3])
	c, errC := strconv.Atoi(m[5])
	if errA != nil || errB != nil || errC != nil {
		return 0, false
	}

	// A 4-digit leading component is unambiguously a year (YYYY-MM-DD
	// style); otherwise the first/last components are day/month in some
	// order, resolved by localeHint or by trying European (day-first)
	// then US (month-first).
	if len(m[1]) == 4 {
		if ms, ok := roundTrip(a, b, c); ok {
			return ms, true
		}
		return 0, false
	}
	if len(m[5]) == 4 {
		year := c
		switch strings.ToLower(localeHint) {
		case "us":
			if ms, ok := roundTrip(year, a, b); ok {
				return ms, true
			}
		case "european":
			if ms, ok := roundTrip(year, b, a); ok {
				return ms, true
			}
		default:
			if ms, ok := roundTrip(year, b, a); ok { // European: day-first
				return ms, true
			}
			if ms, ok := roundTrip(year, a, b); ok { // US: month-first
				return ms, true
			}
		}
	}
	return 0, false
}

// roundTrip constructs the candidate date and re-derives its
// (year, month, day) from the epoch-day conversion; a mismatch (e.g.
// Feb 30 silently rolling to Mar 2) rejects the candidate, per
// spec.md §4.6.4.
func roundTrip(year, month, day int) (int64, bool) {
	if !calendar.ValidDate(year, month, day) {
		return 0, false
	}
	days := calendar.DaysSinceEpoch(year, month, day)
	back := calendar.DateFromEpochDays(days)
	if back.Year != year || back.Month != month || back.Day != day {
		return 0, false
	}
	return days * 86400000, true
}
