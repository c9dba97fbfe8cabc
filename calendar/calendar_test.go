package calendar

import "testing"

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2024: true, 2023: false, 2000: true, 1900: false, 2400: true,
	}
	for y, want := range cases {
		if got := IsLeapYear(y); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", y, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, 2); got != 29 {
		t.Errorf("DaysInMonth(2024,2) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, 2); got != 28 {
		t.Errorf("DaysInMonth(2023,2) = %d, want 28", got)
	}
}

func TestAddMonthsClamps(t *testing.T) {
	got := AddMonths(2024, 1, 31, 1)
	want := Date{2024, 2, 29}
	if got != want {
		t.Errorf("AddMonths(2024-01-31, +1mo) = %v, want %v", got, want)
	}
}

func TestWeekdayKnownDates(t *testing.T) {
	// 2024-06-15 is a Saturday.
	if got := Weekday(2024, 6, 15); got != 6 {
		t.Errorf("Weekday(2024-06-15) = %d, want 6 (Saturday)", got)
	}
	// 1970-01-01 is a Thursday.
	if got := Weekday(1970, 1, 1); got != 4 {
		t.Errorf("Weekday(1970-01-01) = %d, want 4 (Thursday)", got)
	}
}

func TestDaysSinceEpochRoundTrip(t *testing.T) {
	for _, d := range []Date{{1970, 1, 1}, {2024, 2, 29}, {1, 1, 1}, {9999, 12, 31}, {1900, 1, 1}} {
		n := DaysSinceEpoch(d.Year, d.Month, d.Day)
		got := DateFromEpochDays(n)
		if got != d {
			t.Errorf("round trip %v -> %d -> %v", d, n, got)
		}
	}
}

func TestISOWeekYearBoundary(t *testing.T) {
	// 2024-12-31 is a Tuesday in ISO week 1 of 2025.
	y, w := ISOWeek(2024, 12, 31)
	if y != 2025 || w != 1 {
		t.Errorf("ISOWeek(2024-12-31) = (%d,%d), want (2025,1)", y, w)
	}
	// 2021-01-01 is a Friday, belongs to ISO week 53 of 2020.
	y, w = ISOWeek(2021, 1, 1)
	if y != 2020 || w != 53 {
		t.Errorf("ISOWeek(2021-01-01) = (%d,%d), want (2020,53)", y, w)
	}
}

func TestEasterSundayKnownYears(t *testing.T) {
	cases := map[int]Date{
		2024: {2024, 3, 31},
		2025: {2025, 4, 20},
		2016: {2016, 3, 27},
	}
	for y, want := range cases {
		if got := EasterSunday(y); got != want {
			t.Errorf("EasterSunday(%d) = %v, want %v", y, got, want)
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	// US Thanksgiving 2024: 4th Thursday in November = 2024-11-28.
	got := NthWeekdayOfMonth(2024, 11, 4, 4)
	want := Date{2024, 11, 28}
	if got != want {
		t.Errorf("NthWeekdayOfMonth = %v, want %v", got, want)
	}
	// Last Monday in May 2024 (Memorial Day) = 2024-05-27.
	got = NthWeekdayOfMonth(2024, 5, 1, -1)
	want = Date{2024, 5, 27}
	if got != want {
		t.Errorf("last Monday = %v, want %v", got, want)
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate(2024, 2, 29) {
		t.Error("2024-02-29 should be valid")
	}
	if ValidDate(2023, 2, 29) {
		t.Error("2023-02-29 should be invalid")
	}
	if ValidDate(2024, 13, 1) {
		t.Error("month 13 should be invalid")
	}
}
