package kairos

import "github.com/kairos-go/kairos/calendar"

// defaultUTCOffsetMinutes is the fixed local offset assumed when no
// Locale/zone collaborator configures otherwise. spec.md §1 scopes named
// IANA timezone conversion out of the core; the local frame here is a
// fixed UTC offset, matching the "UTC ↔ local offset and fixed-offset
// arithmetic only" boundary in spec.md's Non-goals.
var defaultUTCOffsetMinutes int64 = 0

// SetDefaultLocalOffsetMinutes configures the fixed offset Local()
// Instants use, for hosts that want a non-UTC "local" frame without a
// full timezone database. Positive is east of UTC.
func SetDefaultLocalOffsetMinutes(minutes int64) {
	defaultUTCOffsetMinutes = minutes
}

// UTC returns a copy of i with the UTC flag set; the underlying
// epoch-ms is unchanged.
func (i Instant) UTC() Instant {
	i.utc = true
	return i
}

// Local clears the UTC flag; the underlying epoch-ms is unchanged.
func (i Instant) Local() Instant {
	i.utc = false
	return i
}

// UTCOffsetMinutes returns the signed offset of i's active frame from
// UTC: 0 when the UTC flag is set, else the configured fixed local
// offset.
func (i Instant) UTCOffsetMinutes() int64 {
	if i.utc {
		return 0
	}
	return defaultUTCOffsetMinutes
}

func (i Instant) frameOffsetMS() int64 {
	return i.UTCOffsetMinutes() * 60000
}

func (i Instant) componentsInFrame() Components {
	return epochMSToComponents(i.epochMS + i.frameOffsetMS())
}

func (i Instant) fromFrameComponents(c Components) Instant {
	ms := componentsToEpochMS(c) - i.frameOffsetMS()
	out := fromEpochMS(ms)
	out.utc = i.utc
	return out
}

// Year returns i's year in its active frame.
func (i Instant) Year() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Year
}

// Month returns i's 1-indexed month in its active frame.
func (i Instant) Month() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Month
}

// Day returns i's day-of-month in its active frame.
func (i Instant) Day() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Day
}

// Hour, Minute, Second, Millisecond return the respective component in
// i's active frame.
func (i Instant) Hour() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Hour
}

func (i Instant) Minute() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Minute
}

func (i Instant) Second() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Second
}

func (i Instant) Millisecond() int {
	if !i.valid {
		return 0
	}
	return i.componentsInFrame().Millisecond
}

// Weekday returns 0=Sunday..6=Saturday for i's date in its active frame.
func (i Instant) Weekday() int {
	if !i.valid {
		return 0
	}
	c := i.componentsInFrame()
	return calendar.Weekday(c.Year, c.Month, c.Day)
}

// DayOfYear returns 1..366 for i's date in its active frame.
func (i Instant) DayOfYear() int {
	if !i.valid {
		return 0
	}
	c := i.componentsInFrame()
	return calendar.DayOfYear(c.Year, c.Month, c.Day)
}

// Date returns i's (year, month, day) in its active frame as a
// calendar.Date.
func (i Instant) Date() calendar.Date {
	c := i.componentsInFrame()
	return calendar.Date{Year: c.Year, Month: c.Month, Day: c.Day}
}

// setField applies mutate to i's frame components, validating and
// converting back to epoch-ms. Returns an InvalidDate error if the
// result is out of range.
func (i Instant) setField(mutate func(*Components)) (Instant, error) {
	if !i.valid {
		return invalid, newError(KindInvalidDate, "cannot set a field on an invalid instant")
	}
	c := i.componentsInFrame()
	mutate(&c)
	if !validComponents(c) {
		return invalid, newError(KindInvalidDate, "component value out of range")
	}
	return i.fromFrameComponents(c), nil
}

// WithYear, WithMonth, WithDay, WithHour, WithMinute, WithSecond,
// WithMillisecond return a new Instant with the named field replaced, in
// i's active frame, per spec.md §4.3's "every setter returns a new
// instant".
func (i Instant) WithYear(year int) (Instant, error) {
	return i.setField(func(c *Components) { c.Year = year })
}

func (i Instant) WithMonth(month int) (Instant, error) {
	return i.setField(func(c *Components) { c.Month = month })
}

func (i Instant) WithDay(day int) (Instant, error) {
	return i.setField(func(c *Components) { c.Day = day })
}

func (i Instant) WithHour(hour int) (Instant, error) {
	return i.setField(func(c *Components) { c.Hour = hour })
}

func (i Instant) WithMinute(minute int) (Instant, error) {
	return i.setField(func(c *Components) { c.Minute = minute })
}

func (i Instant) WithSecond(second int) (Instant, error) {
	return i.setField(func(c *Components) { c.Second = second })
}

func (i Instant) WithMillisecond(ms int) (Instant, error) {
	return i.setField(func(c *Components) { c.Millisecond = ms })
}
