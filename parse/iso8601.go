package parse

import (
	"regexp"
	"strconv"

	"github.com/kairos-go/kairos/calendar"
)

// isoPattern anchors spec.md §4.6.1: YYYY-MM-DD[Thh:mm:ss[.fff][Z|±hh:mm]].
var isoPattern = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})` +
		`(?:[T ](\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,3}))?` +
		`(Z|[+-]\d{2}:\d{2})?)?$`,
)

func parseISO8601(input, _ string) (int64, bool) {
	m := isoPattern.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}

	year, err1 := strconv.Atoi(m[1])
	month, err2 := strconv.Atoi(m[2])
	day, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	if !calendar.ValidDate(year, month, day) {
		return 0, false
	}

	hour, minute, second, milli := 0, 0, 0, 0
	if m[4] != "" {
		var err error
		hour, err = strconv.Atoi(m[4])
		if err != nil || hour > 23 {
			return 0, false
		}
		minute, err = strconv.Atoi(m[5])
		if err != nil || minute > 59 {
			return 0, false
		}
		second, err = strconv.Atoi(m[6])
		if err != nil || second > 59 {
			return 0, false
		}
		if m[7] != "" {
			milli, err = parseFractionalSeconds(m[7])
			if err != nil {
				return 0, false
			}
		}
	}

	days := calendar.DaysSinceEpoch(year, month, day)
	ms := days*86400000 + int64(hour)*3600000 + int64(minute)*60000 + int64(second)*1000 + int64(milli)

	offsetMin := 0
	if m[8] != "" && m[8] != "Z" {
		sign := 1
		if m[8][0] == '-' {
			sign = -1
		}
		oh, _ := strconv.Atoi(m[8][1:3])
		om, _ := strconv.Atoi(m[8][4:6])
		offsetMin = sign * (oh*60 + om)
	}
	ms -= int64(offsetMin) * 60000

	return ms, true
}

// parseFractionalSeconds right-pads 1-3 digit fractional seconds to
// milliseconds, per spec.md §4.6.1.
func parseFractionalSeconds(s string) (int, error) {
	for len(s) < 3 {
		s += "0"
	}
	return strconv.Atoi(s)
}
