package parse

import (
	"regexp"
	"strconv"

	"github.com/kairos-go/kairos/calendar"
)

var numericPattern = regexp.MustCompile(`^-?\d+$`)

const secondsVsMillisBoundary = 10_000_000_000 // 10^10, per spec.md §4.6.3

// parseUnixEpoch implements spec.md §4.6.3: numeric input under the
// boundary is seconds, at or above it is milliseconds. Per the
// documented bug-fix in §9, a result is only rejected when BOTH
// interpretations would fall outside the [1970, 2100] calendar-year
// window; otherwise the broader-range interpretation is accepted.
func parseUnixEpoch(input, _ string) (int64, bool) {
	if !numericPattern.MatchString(input) {
		return 0, false
	}
	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, false
	}

	abs := value
	if abs < 0 {
		abs = -abs
	}

	secondsMS := value * 1000
	millisMS := value

	secondsOK := yearInRange(secondsMS)
	millisOK := yearInRange(millisMS)

	if abs < secondsVsMillisBoundary {
		if secondsOK {
			return secondsMS, true
		}
		if millisOK {
			return millisMS, true
		}
		return 0, false
	}

	if millisOK {
		return millisMS, true
	}
	if secondsOK {
		return secondsMS, true
	}
	return 0, false
}

func yearInRange(ms int64) bool {
	days := ms / 86400000
	if ms%86400000 != 0 && ms < 0 {
		days--
	}
	d := calendar.DateFromEpochDays(days)
	return d.Year >= 1970 && d.Year <= 2100
}
