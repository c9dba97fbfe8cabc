package holiday

import "github.com/kairos-go/kairos/calendar"

// LunarCalculator is the external collaborator interface spec.md §6
// requires for Lunar rules: given a lunar calendar name and a lunar
// (year, month, day), it returns the corresponding Gregorian date(s) —
// zero, one, or two, since some lunar dates occur twice within a
// Gregorian year and some are skipped entirely. The engine passes
// whatever the collaborator returns through unmodified.
//
// Mirrors the minimal-interface-for-a-downstream-collaborator shape of
// the teacher's chronogo/integration.go HolidayChecker: a narrow
// interface the engine depends on, with a concrete default implementation
// provided for convenience and a production-grade one expected to be
// supplied by the host application.
type LunarCalculator interface {
	ComputeGregorian(calendarName string, year, month, day int) ([]calendar.Date, error)
}

// DefaultLunarCalculator is a best-effort, table-and-fallback
// implementation kept for convenience and tests. It is NOT astronomically
// accurate — spec.md §4.8/§9 documents that built-in lunar approximations
// can be off by days to weeks, and recommends a vetted external
// collaborator for production use. It is grounded on the teacher's own
// approximation style (goholidays.go's approximateDiwali/approximateHoli
// and countries/cn.go's per-year Spring Festival lookup table): a small
// table of known years falling back to a fixed rough guess outside it.
type DefaultLunarCalculator struct{}

// chineseNewYear maps a Gregorian year to the Gregorian date of that
// year's Lunar New Year (chinese calendar, month=1, day=1), for the years
// the teacher's countries/cn.go hand-tabulated.
var chineseNewYear = map[int]calendar.Date{
	2023: {Year: 2023, Month: 1, Day: 22},
	2024: {Year: 2024, Month: 2, Day: 10},
	2025: {Year: 2025, Month: 1, Day: 29},
	2026: {Year: 2026, Month: 2, Day: 17},
	2027: {Year: 2027, Month: 2, Day: 6},
	2028: {Year: 2028, Month: 1, Day: 26},
	2029: {Year: 2029, Month: 2, Day: 13},
	2030: {Year: 2030, Month: 2, Day: 3},
}

// ComputeGregorian implements LunarCalculator. Only "chinese" month=1
// day=1 (Lunar New Year) is handled; every other calendar name, month or
// day returns an empty slice, which is a valid "did not occur this
// Gregorian year" answer per spec.md §6, not an error.
func (DefaultLunarCalculator) ComputeGregorian(calendarName string, year, month, day int) ([]calendar.Date, error) {
	switch calendarName {
	case "chinese":
		if month == 1 && day == 1 {
			if d, ok := chineseNewYear[year]; ok {
				return []calendar.Date{d}, nil
			}
			// Rough fallback: Chinese New Year drifts between Jan 21 and
			// Feb 20; outside the tabulated years Feb 1 is returned as an
			// approximation.
			return []calendar.Date{{Year: year, Month: 2, Day: 1}}, nil
		}
	}
	return nil, nil
}
