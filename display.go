package kairos

import (
	"github.com/kairos-go/kairos/duration"
	"github.com/kairos-go/kairos/format"
	"github.com/kairos-go/kairos/locale"
	"github.com/kairos-go/kairos/relativetime"
)

// toFields converts i into the plain-value Fields the format package
// operates on, in i's active frame.
func (i Instant) toFields() format.Fields {
	if !i.valid {
		return format.Fields{Valid: false}
	}
	c := i.componentsInFrame()
	return format.Fields{
		Year: c.Year, Month: c.Month, Day: c.Day,
		Hour: c.Hour, Minute: c.Minute, Second: c.Second, Millisecond: c.Millisecond,
		OffsetMinutes: int(i.UTCOffsetMinutes()),
		Valid:         true,
	}
}

// Format renders i using layout and the active locale, per spec.md
// §4.7. Returns format.InvalidDateString for an invalid instant.
func (i Instant) Format(layout string) string {
	loc, ok := locale.Global.ActiveLocale()
	if !ok {
		loc = locale.Locale{}
	}
	return format.Format(layout, i.toFields(), loc)
}

// FormatWithLocale renders i using layout and an explicit locale code
// rather than the process-wide active locale. Unknown codes fall back
// to the zero-value Locale (bare numeric tokens still render).
func (i Instant) FormatWithLocale(layout, localeCode string) string {
	loc, _ := locale.Global.Get(localeCode)
	return format.Format(layout, i.toFields(), loc)
}

// String implements fmt.Stringer using ISO-8601, the conventional
// default per spec.md §4.7.
func (i Instant) String() string {
	return i.Format("YYYY-MM-DDTHH:mm:ss.SSSZ")
}

// From humanizes the signed difference between i and ref using the
// default English threshold table, per spec.md §4.12.
func (i Instant) From(ref Instant, withSuffix bool) string {
	if !i.valid || !ref.valid {
		return format.InvalidDateString
	}
	return relativetime.From(i.epochMS, ref.epochMS, duration.DefaultThresholds, withSuffix)
}

// FromNow is From(Now(), true).
func (i Instant) FromNow() string {
	return i.From(Now(), true)
}

// Humanize is an alias for FromNow, matching the common "humanize()"
// name spec.md §4.12 also allows.
func (i Instant) Humanize() string {
	return i.FromNow()
}

// Calendar returns one of relativetime's short phrases ("yesterday",
// "today", "tomorrow", ...) when i falls within two days of ref, else
// falls back to formatting i with phrases.SameElseFmt.
func (i Instant) Calendar(ref Instant, phrases relativetime.CalendarPhrases) string {
	if !i.valid || !ref.valid {
		return format.InvalidDateString
	}
	iDay := i.StartOf("day")
	refDay := ref.StartOf("day")
	offsetMS := iDay.epochMS - refDay.epochMS
	offsetDays := int(offsetMS / msPerDay)
	phrase := relativetime.Calendar(offsetDays, phrases)
	if phrase == phrases.SameElseFmt {
		return i.Format(phrase)
	}
	return phrase
}
