package kairos

import (
	"time"

	"github.com/kairos-go/kairos/duration"
	"github.com/kairos-go/kairos/locale"
	"github.com/kairos-go/kairos/parse"
	"github.com/kairos-go/kairos/plugin"
)

// Now returns the current instant, read from the host wall clock. This
// is the one place (besides cache mutation) spec.md §5 permits a
// non-pure read.
func Now() Instant {
	return fromEpochMS(time.Now().UTC().UnixMilli())
}

// New is the package's general entry point, mirroring spec.md §6's
// `kairos(input?, format_hint?) → Instant`: with no input it behaves
// like Now(); with a string input it parses via the parse package's
// strategy chain, returning Invalid() if every strategy rejects it.
func New(input ...string) Instant {
	if len(input) == 0 {
		return Now()
	}
	ms, ok := parse.Parse(input[0], "")
	if !ok {
		return invalid
	}
	return fromEpochMS(ms)
}

// ParseWithLocale parses input using localeHint ("european" or "us") to
// resolve ambiguous two-number dates, per spec.md §4.6.
func ParseWithLocale(input, localeHint string) Instant {
	ms, ok := parse.Parse(input, localeHint)
	if !ok {
		return invalid
	}
	return fromEpochMS(ms)
}

// UTCNow returns the current instant with the UTC flag set.
func UTCNow() Instant {
	return Now().UTC()
}

// Duration re-exports duration.Parse for the `kairos.duration(input)`
// static entry point of spec.md §6.
func Duration(input string) (duration.Duration, error) {
	return duration.Parse(input)
}

// MakeRange is the `kairos.range(start, end)` static entry point: a
// closed, day-stepped range, the common case; use NewRange directly for
// other units/steps/openness.
func MakeRange(start, end Instant) (Range, error) {
	return NewRange(start, end, string(UnitDay), 1, true)
}

// SetLocale is the `kairos.locale(code)` static entry point: sets the
// process-wide active locale. Per spec.md §4.13, an unknown code is a
// no-op (the previous active locale is kept).
func SetLocale(code string) {
	locale.Global.SetActive(code)
}

// ActiveLocale returns the currently active locale code.
func ActiveLocale() string {
	return locale.Global.Active()
}

// Use installs one or more plugins into the process-wide plugin
// registry, per spec.md §4.13.
func Use(plugins ...plugin.Plugin) error {
	return plugin.Global.Use(plugins...)
}
