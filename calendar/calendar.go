// Package calendar implements the pure (year, month, day) arithmetic that
// every other Kairos package is built on: leap years, day-of-year,
// ISO-8601 week numbering, weekday computation, end-of-month clamped
// month addition, the Gaussian Easter computus, and the nth-weekday-of-month
// search used by holiday rules.
//
// Every function here is a pure function of its integer arguments. None of
// them allocate, none of them touch the clock, and none of them know about
// time zones — that split is deliberate, see spec.md §1.
package calendar

import "fmt"

// MinYear and MaxYear bound the years calendar primitives will compute
// over. The underlying arithmetic is exact for a much wider range, but the
// library documents a fixed, conservative bound per spec.md §4.1.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a plain (year, month, day) triple with no time-of-day or zone
// attached. Month is 1-indexed (January = 1), matching the 1-indexed
// month convention spec.md §4.3 mandates for the public component API.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d occurs strictly before o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Equal reports whether d and o name the same calendar date.
func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

var daysInMonthTable = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month m (1..12) of year y,
// accounting for leap years in February.
func DaysInMonth(y, m int) int {
	if m < 1 || m > 12 {
		return 0
	}
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	return daysInMonthTable[m-1]
}

// ValidDate reports whether (y, m, d) names a representable calendar date
// within [MinYear, MaxYear] with d within the month's day count.
func ValidDate(y, m, d int) bool {
	if y < MinYear || y > MaxYear {
		return false
	}
	if m < 1 || m > 12 {
		return false
	}
	return d >= 1 && d <= DaysInMonth(y, m)
}

// DayOfYear returns the 1-based ordinal day of (y, m, d) within its year.
func DayOfYear(y, m, d int) int {
	doy := d
	for i := 1; i < m; i++ {
		doy += DaysInMonth(y, i)
	}
	return doy
}

// daysFromCivil converts a (y, m, d) triple to a day count relative to
// 1970-01-01 (the Unix epoch), using Howard Hinnant's civil_from_days /
// days_from_civil algorithm. It is exact over a far wider range than
// [MinYear, MaxYear] and contains no loops or table lookups.
func daysFromCivil(y, m, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era := yy
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := yy - era*400
	var mp int64
	if int64(m) > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y, m, d int) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	yy := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	dd := doy - (153*mp+2)/5 + 1
	var mm int64
	if mp < 10 {
		mm = mp + 3
	} else {
		mm = mp - 9
	}
	if mm <= 2 {
		yy++
	}
	return int(yy), int(mm), int(dd)
}

// DaysSinceEpoch returns the signed number of days between (y, m, d) and
// 1970-01-01.
func DaysSinceEpoch(y, m, d int) int64 {
	return daysFromCivil(y, m, d)
}

// DateFromEpochDays returns the calendar date that is n whole days after
// 1970-01-01.
func DateFromEpochDays(n int64) Date {
	y, m, d := civilFromDays(n)
	return Date{Year: y, Month: m, Day: d}
}

// Weekday returns the day of week for (y, m, d): 0=Sunday .. 6=Saturday.
func Weekday(y, m, d int) int {
	days := daysFromCivil(y, m, d)
	// 1970-01-01 was a Thursday (weekday 4).
	wd := (days%7 + 4 + 7) % 7
	return int(wd)
}

// AddMonths adds n months to (y, m, d) with end-of-month clamping: if the
// target month has fewer days than d, the result clamps down to the
// target month's last day (2024-01-31 + 1 month = 2024-02-29).
func AddMonths(y, m, d, n int) Date {
	total := y*12 + (m - 1) + n
	ny := total / 12
	nm := total % 12
	if nm < 0 {
		nm += 12
		ny--
	}
	nm++ // back to 1-indexed
	nd := d
	if maxDay := DaysInMonth(ny, nm); nd > maxDay {
		nd = maxDay
	}
	return Date{Year: ny, Month: nm, Day: nd}
}

// ISOWeek returns the Monday-based ISO-8601 (week_year, week_number) pair
// for (y, m, d). Weeks belonging to the preceding or following year are
// reported with the adjusted week_year.
func ISOWeek(y, m, d int) (weekYear, week int) {
	wd := Weekday(y, m, d)
	// ISO weekday: Monday=1 .. Sunday=7
	isoWd := wd
	if isoWd == 0 {
		isoWd = 7
	}
	days := daysFromCivil(y, m, d)
	// Thursday of the same ISO week determines the week-year.
	thursday := days - int64(isoWd) + 4
	ty, _, _ := civilFromDays(thursday)
	jan1 := daysFromCivil(ty, 1, 1)
	week = int((thursday-jan1)/7) + 1
	return ty, week
}

// EasterSunday computes the Gregorian date of Easter Sunday for year y
// using the Gaussian/anonymous computus algorithm.
func EasterSunday(y int) Date {
	a := y % 19
	b := y / 100
	c := y % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date{Year: y, Month: month, Day: day}
}

// NthWeekdayOfMonth returns the date of the nth occurrence of weekday
// (0=Sunday..6=Saturday) in (year, month). n in 1..5 counts from the
// start of the month; n == -1 counts the last occurrence. n == 0 or
// n <= -2 panics, since it is a programmer error (rule validation rejects
// it before reaching here — see holiday.Rule.Validate). n >= 1 is not
// range-checked: a count past the month's last occurrence yields a Day
// beyond the end of the month.
func NthWeekdayOfMonth(year, month, weekday, n int) Date {
	if n >= 1 {
		firstWd := Weekday(year, month, 1)
		offset := (weekday - firstWd + 7) % 7
		day := 1 + offset + (n-1)*7
		return Date{Year: year, Month: month, Day: day}
	}
	if n == -1 {
		lastDay := DaysInMonth(year, month)
		lastWd := Weekday(year, month, lastDay)
		back := (lastWd - weekday + 7) % 7
		return Date{Year: year, Month: month, Day: lastDay - back}
	}
	panic("calendar: NthWeekdayOfMonth: n must be -1 or in 1..5")
}
