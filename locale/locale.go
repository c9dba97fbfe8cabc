// Package locale implements the locale store of spec.md §4.14: a
// code-to-Locale mapping exposing register/get/active/set_active/list,
// plus the shipped locale data (months, weekdays, ordinal/meridiem
// functions, format shortcuts, and holiday rule sets) for the ten
// locales spec.md names as shipped: en-US, de-DE, fr-FR, es-ES, it-IT,
// pt-BR, ru-RU, zh-CN, ja-JP, tr-TR.
//
// Grounded on the teacher's (coredds/GoHoliday) per-country provider
// files (countries/us.go, de.go, ...): each hardcodes a country's name,
// subdivisions, categories, and LoadHolidays function. Locale
// generalizes that shape into data — a Locale value holds the same
// subdivisions/categories/holiday information, but as holiday.Rule
// values interpreted by the shared engine rather than per-country Go
// functions.
package locale

import (
	"strconv"
	"strings"

	"github.com/kairos-go/kairos/holiday"
)

// FormatShortcuts maps a single-letter or named shortcut (e.g. "L",
// "LL") to a full format-token string, per spec.md §4.7.
type FormatShortcuts map[string]string

// OrdinalFunc renders an ordinal day-of-month number ("1st", "2e", ...).
type OrdinalFunc func(day int) string

// MeridiemFunc renders the AM/PM-equivalent marker for an hour
// (0-23) and whether the uppercase ("A") or lowercase ("a") token was
// used.
type MeridiemFunc func(hour int, uppercase bool) string

// Locale is the per-language/region data set of spec.md §3's Locale
// entity.
type Locale struct {
	Code             string
	Months           [12]string
	MonthsShort      [12]string
	Weekdays         [7]string // index 0 = Sunday
	WeekdaysShort    [7]string
	WeekdaysMin      [7]string
	FormatShortcuts  FormatShortcuts
	Ordinal          OrdinalFunc
	Meridiem         MeridiemFunc
	Holidays         []holiday.Rule
	RegionalHolidays map[string][]holiday.Rule
	FirstDayOfWeek   int // 0=Sunday..6=Saturday, used by start_of("week")
}

// normalizeRegion lower-cases and trims region, per spec.md §4.14's
// "non-string or empty region is treated as no region filter" rule —
// region is already a Go string here, so only emptiness/case need
// normalizing.
func normalizeRegion(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

// HolidayRules returns l.Holidays plus, when region is non-empty, the
// rules registered under that region in RegionalHolidays.
func (l Locale) HolidayRules(region string) []holiday.Rule {
	rules := make([]holiday.Rule, len(l.Holidays))
	copy(rules, l.Holidays)
	region = normalizeRegion(region)
	if region == "" {
		return rules
	}
	for key, regional := range l.RegionalHolidays {
		if normalizeRegion(key) == region {
			rules = append(rules, regional...)
		}
	}
	return rules
}

func defaultOrdinalEnglish(day int) string {
	s := strconv.Itoa(day)
	if day >= 11 && day <= 13 {
		return s + "th"
	}
	switch day % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}

func defaultMeridiemEnglish(hour int, uppercase bool) string {
	marker := "am"
	if hour >= 12 {
		marker = "pm"
	}
	if uppercase {
		return strings.ToUpper(marker)
	}
	return marker
}

