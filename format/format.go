// Package format implements the token-driven formatter of spec.md §4.7:
// escape-block splitting, length-descending token matching via a single
// compiled matcher, and locale-aware name/ordinal substitution.
//
// Grounded on the teacher's (coredds/GoHoliday) style of small,
// independently cacheable pure functions (see optimization.go's
// per-country/per-year caching); the token-table-of-producer-functions
// shape itself is grounded on spec.md §4.7 directly, since the teacher
// always formats via Go's time package rather than a custom formatter.
package format

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kairos-go/kairos/calendar"
	"github.com/kairos-go/kairos/locale"
)

// InvalidDateString is the literal formatter output for an invalid
// instant, per spec.md §4.7.
const InvalidDateString = "Invalid Date"

// Fields is the plain-value input the formatter operates on: it never
// depends on the root package's Instant, avoiding an import cycle.
type Fields struct {
	Year, Month, Day                  int
	Hour, Minute, Second, Millisecond int
	OffsetMinutes                     int // signed, east of UTC positive
	Valid                             bool
}

type producer func(f Fields, loc locale.Locale) string

var tokenTable = map[string]producer{
	"YYYY": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%04d", f.Year) },
	"YY":   func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Year%100) },
	"MMMM": func(f Fields, loc locale.Locale) string { return loc.Months[f.Month-1] },
	"MMM":  func(f Fields, loc locale.Locale) string { return loc.MonthsShort[f.Month-1] },
	"MM":   func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Month) },
	"M":    func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", f.Month) },
	"Do": func(f Fields, loc locale.Locale) string {
		if loc.Ordinal != nil {
			return loc.Ordinal(f.Day)
		}
		return fmt.Sprintf("%d", f.Day)
	},
	"DDDD": func(f Fields, _ locale.Locale) string {
		return fmt.Sprintf("%03d", calendar.DayOfYear(f.Year, f.Month, f.Day))
	},
	"DDD": func(f Fields, _ locale.Locale) string {
		return fmt.Sprintf("%d", calendar.DayOfYear(f.Year, f.Month, f.Day))
	},
	"DD": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Day) },
	"D":  func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", f.Day) },
	"dddd": func(f Fields, loc locale.Locale) string {
		return loc.Weekdays[calendar.Weekday(f.Year, f.Month, f.Day)]
	},
	"ddd": func(f Fields, loc locale.Locale) string {
		return loc.WeekdaysShort[calendar.Weekday(f.Year, f.Month, f.Day)]
	},
	"HH": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Hour) },
	"H":  func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", f.Hour) },
	"hh": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", hour12(f.Hour)) },
	"h":  func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", hour12(f.Hour)) },
	"mm": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Minute) },
	"m":  func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", f.Minute) },
	"ss": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Second) },
	"s":  func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", f.Second) },
	"SSS": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%03d", f.Millisecond) },
	"SS":  func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%02d", f.Millisecond/10) },
	"S":   func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", f.Millisecond/100) },
	"A": func(f Fields, loc locale.Locale) string {
		if loc.Meridiem != nil {
			return loc.Meridiem(f.Hour, true)
		}
		return defaultMeridiem(f.Hour, true)
	},
	"a": func(f Fields, loc locale.Locale) string {
		if loc.Meridiem != nil {
			return loc.Meridiem(f.Hour, false)
		}
		return defaultMeridiem(f.Hour, false)
	},
	"Q": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", (f.Month-1)/3+1) },
	"ww": func(f Fields, _ locale.Locale) string {
		_, week := calendar.ISOWeek(f.Year, f.Month, f.Day)
		return fmt.Sprintf("%02d", week)
	},
	"w": func(f Fields, _ locale.Locale) string {
		_, week := calendar.ISOWeek(f.Year, f.Month, f.Day)
		return fmt.Sprintf("%d", week)
	},
	"x": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", epochMillis(f)) },
	"X": func(f Fields, _ locale.Locale) string { return fmt.Sprintf("%d", epochMillis(f)/1000) },
	"Z": func(f Fields, _ locale.Locale) string { return offsetString(f.OffsetMinutes, true) },
	"ZZ": func(f Fields, _ locale.Locale) string { return offsetString(f.OffsetMinutes, false) },
}

// tokensByLengthDesc is computed once: spec.md §4.7.2 requires matching
// in length-descending order so "YYYY" is tried before "YY".
var tokensByLengthDesc = func() []string {
	tokens := make([]string, 0, len(tokenTable))
	for t := range tokenTable {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return len(tokens[i]) > len(tokens[j]) })
	return tokens
}()

// tokenRegex matches any single token, longest first: Go's regexp
// engine resolves alternation leftmost-first, so ordering
// tokensByLengthDesc this way makes "YYYY" win over "YY" at the same
// position. Compiled once per spec.md §4.7.3, covering every token
// with a single cached matcher instead of one per token.
var tokenRegex = func() *regexp.Regexp {
	parts := make([]string, len(tokensByLengthDesc))
	for i, t := range tokensByLengthDesc {
		parts[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}()

var escapeBlock = regexp.MustCompile(`\[[^\]]*\]`)

// expandShortcuts substitutes locale format shortcuts ("L", "LL", "LT",
// ...) with their expansion layout before token substitution runs,
// longest key first so "LL" isn't swallowed by a same-prefix "L" entry.
// Shortcut expansions may themselves contain [literal] blocks (e.g.
// "D [de] MMMM [de] YYYY"), which the caller's escape-block split
// handles afterward.
func expandShortcuts(layout string, loc locale.Locale) string {
	if len(loc.FormatShortcuts) == 0 {
		return layout
	}
	keys := make([]string, 0, len(loc.FormatShortcuts))
	for k := range loc.FormatShortcuts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, k := range keys {
		if strings.Contains(layout, k) {
			layout = strings.ReplaceAll(layout, k, loc.FormatShortcuts[k])
		}
	}
	return layout
}

// Format renders f using layout, substituting locale names/ordinals from
// loc. Returns InvalidDateString if f.Valid is false.
func Format(layout string, f Fields, loc locale.Locale) string {
	if !f.Valid {
		return InvalidDateString
	}
	layout = expandShortcuts(layout, loc)

	var out strings.Builder
	last := 0
	for _, loc2 := range escapeBlock.FindAllStringIndex(layout, -1) {
		out.WriteString(substituteTokens(layout[last:loc2[0]], f, loc))
		out.WriteString(layout[loc2[0]+1 : loc2[1]-1]) // strip the [ ] literally
		last = loc2[1]
	}
	out.WriteString(substituteTokens(layout[last:], f, loc))
	return out.String()
}

// substituteTokens walks span once, left to right: each regex match is
// replaced with its producer's output directly, so locale-supplied
// names (e.g. "March", "Friday") are never rescanned for shorter
// tokens they happen to contain.
func substituteTokens(span string, f Fields, loc locale.Locale) string {
	var out strings.Builder
	last := 0
	for _, m := range tokenRegex.FindAllStringIndex(span, -1) {
		out.WriteString(span[last:m[0]])
		out.WriteString(tokenTable[span[m[0]:m[1]]](f, loc))
		last = m[1]
	}
	out.WriteString(span[last:])
	return out.String()
}

func hour12(h int) int {
	h = h % 12
	if h == 0 {
		return 12
	}
	return h
}

func defaultMeridiem(hour int, uppercase bool) string {
	marker := "am"
	if hour >= 12 {
		marker = "pm"
	}
	if uppercase {
		return strings.ToUpper(marker)
	}
	return marker
}

func epochMillis(f Fields) int64 {
	days := calendar.DaysSinceEpoch(f.Year, f.Month, f.Day)
	local := days*86400000 + int64(f.Hour)*3600000 + int64(f.Minute)*60000 + int64(f.Second)*1000 + int64(f.Millisecond)
	return local - int64(f.OffsetMinutes)*60000
}

func offsetString(minutes int, colon bool) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	h := minutes / 60
	m := minutes % 60
	if colon {
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	}
	return fmt.Sprintf("%s%02d%02d", sign, h, m)
}
