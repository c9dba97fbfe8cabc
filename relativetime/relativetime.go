// Package relativetime implements spec.md §4.12: from/from_now/calendar
// humanization of a target instant relative to a reference instant,
// built on the same threshold table duration.Humanize uses.
//
// Grounded on the teacher's goholidays.go preference for small pure
// functions taking explicit inputs rather than hidden global clock
// state; the threshold-table walk itself reuses duration.Thresholds
// from this module's own duration package, since the teacher has no
// relative-time formatter of its own to draw from.
package relativetime

import (
	"fmt"

	"github.com/kairos-go/kairos/duration"
)

// From computes the signed duration from ref to targetMS (both epoch
// milliseconds) and humanizes it using thresholds, appending a suffix
// ("ago"/"in") unless withSuffix is false.
func From(targetMS, refMS int64, thresholds duration.Thresholds, withSuffix bool) string {
	diff, err := duration.Milliseconds(targetMS - refMS)
	if err != nil {
		return duration.MustMilliseconds(0).Humanize(thresholds)
	}
	phrase := diff.Abs().Humanize(thresholds)
	if !withSuffix {
		return phrase
	}
	if targetMS < refMS {
		return phrase + " ago"
	}
	return "in " + phrase
}

// CalendarPhrases holds the short phrases spec.md §4.12's calendar()
// operation substitutes for near-term day offsets.
type CalendarPhrases struct {
	TwoDaysAgo   string
	Yesterday    string
	Today        string
	Tomorrow     string
	InTwoDays    string
	SameElseFmt  string // fallback format string ("L") for anything outside the window
}

// DefaultCalendarPhrases matches common English relative-calendar
// wording.
var DefaultCalendarPhrases = CalendarPhrases{
	TwoDaysAgo:  "two days ago",
	Yesterday:   "yesterday",
	Today:       "today",
	Tomorrow:    "tomorrow",
	InTwoDays:   "in two days",
	SameElseFmt: "L",
}

// Calendar returns phrases.SameElseFmt (meant to be fed to a formatter
// by the caller) unless targetDay is within [-2, +2] days of refDay, in
// which case it returns the matching short phrase. Days are whole-day
// offsets the caller computes (e.g. via calendar.DaysSinceEpoch
// differences) so this package stays independent of the root Instant
// type.
func Calendar(dayOffset int, phrases CalendarPhrases) string {
	switch dayOffset {
	case -2:
		return phrases.TwoDaysAgo
	case -1:
		return phrases.Yesterday
	case 0:
		return phrases.Today
	case 1:
		return phrases.Tomorrow
	case 2:
		return phrases.InTwoDays
	default:
		return phrases.SameElseFmt
	}
}

// FromNow is From(targetMS, now, thresholds, true) but takes now
// explicitly, keeping this package free of a hidden clock read (the
// one caller-facing wall-clock read spec.md §5 permits happens in the
// root package's Now()).
func FromNow(targetMS, nowMS int64, thresholds duration.Thresholds) string {
	return From(targetMS, nowMS, thresholds, true)
}

func init() {
	// Guard against accidental zero-value CalendarPhrases use producing a
	// confusing empty fallback string.
	if DefaultCalendarPhrases.SameElseFmt == "" {
		panic(fmt.Sprintf("relativetime: DefaultCalendarPhrases misconfigured: %+v", DefaultCalendarPhrases))
	}
}
