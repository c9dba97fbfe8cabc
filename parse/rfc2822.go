package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kairos-go/kairos/calendar"
)

// rfc2822Pattern matches spec.md §4.6.2: "[Day, ]DD Mon YYYY HH:MM:SS
// (GMT|±HHMM)".
var rfc2822Pattern = regexp.MustCompile(
	`^(?:[A-Za-z]{3},\s*)?(\d{1,2})\s+([A-Za-z]{3})\s+(\d{4})\s+(\d{2}):(\d{2}):(\d{2})\s+(GMT|[+-]\d{4})$`,
)

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func parseRFC2822(input, _ string) (int64, bool) {
	m := rfc2822Pattern.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	month, ok := months[strings.ToLower(m[2])]
	if !ok {
		return 0, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false
	}
	if !calendar.ValidDate(year, month, day) {
		return 0, false
	}
	hour, err1 := strconv.Atoi(m[4])
	minute, err2 := strconv.Atoi(m[5])
	second, err3 := strconv.Atoi(m[6])
	if err1 != nil || err2 != nil || err3 != nil || hour > 23 || minute > 59 || second > 59 {
		return 0, false
	}

	offsetMin := 0
	if m[7] != "GMT" {
		sign := 1
		if m[7][0] == '-' {
			sign = -1
		}
		oh, _ := strconv.Atoi(m[7][1:3])
		om, _ := strconv.Atoi(m[7][3:5])
		offsetMin = sign * (oh*60 + om)
	}

	days := calendar.DaysSinceEpoch(year, month, day)
	ms := days*86400000 + int64(hour)*3600000 + int64(minute)*60000 + int64(second)*1000
	ms -= int64(offsetMin) * 60000
	return ms, true
}
