// Package kairos provides immutable date/time computation: Instant
// construction and arithmetic, duration algebra, date ranges,
// business-day calculations, and a locale-aware holiday engine, with no
// I/O and no dependency on the host's timezone database beyond fixed
// UTC offsets.
//
// The subpackages (calendar, duration, holiday, business, locale,
// parse, format, relativetime, plugin) each operate on plain values —
// epoch milliseconds, calendar.Date, small interfaces — with no
// dependency on this package, which wraps them into the single
// immutable Instant type documented here. This avoids the import cycle
// a bidirectional relationship would create.
package kairos

import (
	"math"

	"github.com/kairos-go/kairos/calendar"
)

// MinYear/MaxYear bound representable Instant values, matching
// calendar.MinYear/MaxYear (spec.md §4.1: "at minimum years 1..9999").
const (
	MinYear = calendar.MinYear
	MaxYear = calendar.MaxYear
)

// Components is the component-record constructor/accessor shape of
// spec.md §4.3: 1-indexed month, per the "deliberate design choice"
// §9 documents.
type Components struct {
	Year        int
	Month       int // 1-indexed
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Instant is an immutable point in time. The zero value is invalid (its
// valid field is false); always construct via the package functions
// below.
//
// Every setter in this package returns a new Instant; Instant itself
// exposes no mutating methods, per spec.md §4.3's "no in-place
// mutation".
type Instant struct {
	epochMS int64
	valid   bool
	utc     bool // true: getters/setters use UTC calendar coordinates
}

// invalid is the canonical invalid Instant: is_valid() is false and all
// further operations on it propagate invalidity without panicking.
var invalid = Instant{valid: false}

// Invalid returns the canonical invalid Instant.
func Invalid() Instant { return invalid }

// IsValid reports whether i represents a real point in time.
func (i Instant) IsValid() bool { return i.valid }

// EpochMilliseconds returns the instant's offset from the Unix epoch in
// milliseconds. Valid only when IsValid(); returns 0 otherwise.
func (i Instant) EpochMilliseconds() int64 {
	if !i.valid {
		return 0
	}
	return i.epochMS
}

func fromEpochMS(ms int64) Instant {
	return Instant{epochMS: ms, valid: true}
}

// fromFloat converts an arithmetic result back to an Instant, producing
// Invalid() if ms is non-finite or would overflow int64, per spec.md
// §4.3's "is_valid() returns false iff epoch-ms is non-finite".
func fromFloat(ms float64) Instant {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return invalid
	}
	if ms > math.MaxInt64 || ms < math.MinInt64 {
		return invalid
	}
	return fromEpochMS(int64(ms))
}

// componentsToEpochMS converts Components in UTC coordinates to epoch
// milliseconds, without validating ranges (callers validate first).
func componentsToEpochMS(c Components) int64 {
	days := calendar.DaysSinceEpoch(c.Year, c.Month, c.Day)
	return days*86400000 +
		int64(c.Hour)*3600000 +
		int64(c.Minute)*60000 +
		int64(c.Second)*1000 +
		int64(c.Millisecond)
}

func epochMSToComponents(ms int64) Components {
	days := floorDiv(ms, 86400000)
	rem := ms - days*86400000
	date := calendar.DateFromEpochDays(days)
	hour := rem / 3600000
	rem -= hour * 3600000
	minute := rem / 60000
	rem -= minute * 60000
	second := rem / 1000
	milli := rem - second*1000
	return Components{
		Year: date.Year, Month: date.Month, Day: date.Day,
		Hour: int(hour), Minute: int(minute), Second: int(second), Millisecond: int(milli),
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func validComponents(c Components) bool {
	if c.Year < MinYear || c.Year > MaxYear {
		return false
	}
	if !calendar.ValidDate(c.Year, c.Month, c.Day) {
		return false
	}
	if c.Hour < 0 || c.Hour > 23 {
		return false
	}
	if c.Minute < 0 || c.Minute > 59 {
		return false
	}
	if c.Second < 0 || c.Second > 59 {
		return false
	}
	if c.Millisecond < 0 || c.Millisecond > 999 {
		return false
	}
	return true
}

// FromComponents constructs an Instant from a 1-indexed-month component
// record in UTC coordinates. Returns an InvalidDate error if any field
// is out of its natural range.
func FromComponents(c Components) (Instant, error) {
	if !validComponents(c) {
		return invalid, newError(KindInvalidDate, "component values out of range")
	}
	return fromEpochMS(componentsToEpochMS(c)), nil
}

// FromComponentArray constructs an Instant from the legacy
// [y, mo0, d, h, mi, s, ms] array shape, where mo0 is 0-indexed, per
// spec.md §4.3(e). Missing trailing elements default to 0 (or, for
// month, to January).
func FromComponentArray(parts []int) (Instant, error) {
	get := func(i, def int) int {
		if i < len(parts) {
			return parts[i]
		}
		return def
	}
	c := Components{
		Year:        get(0, 1970),
		Month:       get(1, 0) + 1,
		Day:         get(2, 1),
		Hour:        get(3, 0),
		Minute:      get(4, 0),
		Second:      get(5, 0),
		Millisecond: get(6, 0),
	}
	return FromComponents(c)
}

// Unix constructs an Instant from a Unix timestamp in whole seconds. The
// UTC flag is left clear, so getters use the local frame.
func Unix(seconds int64) Instant {
	return fromEpochMS(seconds * 1000)
}

// FromEpochMilliseconds constructs an Instant directly from epoch
// milliseconds. The UTC flag is left clear, so getters use the local
// frame.
func FromEpochMilliseconds(ms int64) Instant {
	return fromEpochMS(ms)
}

// Clone returns a copy of i (Instant is already immutable value data, so
// this is identity, provided for API parity with spec.md §4.3(f)).
func (i Instant) Clone() Instant { return i }

// Equals reports whether i and other represent the same epoch instant
// and validity.
func (i Instant) Equals(other Instant) bool {
	if i.valid != other.valid {
		return false
	}
	if !i.valid {
		return true
	}
	return i.epochMS == other.epochMS
}

// Compare returns -1, 0, or 1 per i's ordering relative to other.
// Invalid instants compare equal only to other invalid instants and
// are otherwise considered less than any valid instant.
func (i Instant) Compare(other Instant) int {
	if !i.valid && !other.valid {
		return 0
	}
	if !i.valid {
		return -1
	}
	if !other.valid {
		return 1
	}
	switch {
	case i.epochMS < other.epochMS:
		return -1
	case i.epochMS > other.epochMS:
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether i is strictly before other.
func (i Instant) IsBefore(other Instant) bool { return i.Compare(other) < 0 }

// IsAfter reports whether i is strictly after other.
func (i Instant) IsAfter(other Instant) bool { return i.Compare(other) > 0 }

// IsSame reports whether i and other fall within the same start_of(unit)
// bucket, per spec.md §4.3's is_same definition.
func (i Instant) IsSame(other Instant, unit Unit) bool {
	return i.StartOf(string(unit)).Equals(other.StartOf(string(unit)))
}
