package kairos

import "testing"

func TestAddMonthsClampsEndOfMonth(t *testing.T) {
	i, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 31})
	got := i.Add(1, "month")
	if got.Year() != 2024 || got.Month() != 2 || got.Day() != 29 { // 2024 is a leap year
		t.Fatalf("got %04d-%02d-%02d, want 2024-02-29", got.Year(), got.Month(), got.Day())
	}
}

func TestAddDayPreservesUTCFlag(t *testing.T) {
	i, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1})
	i = i.UTC()
	got := i.Add(1, "day")
	if !got.utc {
		t.Fatalf("expected utc flag preserved across Add")
	}
}

func TestSubtractIsAddNegated(t *testing.T) {
	i, _ := FromComponents(Components{Year: 2024, Month: 3, Day: 15})
	a := i.Add(-5, "day")
	b := i.Subtract(5, "day")
	if !a.Equals(b) {
		t.Fatalf("expected Subtract(5) to equal Add(-5)")
	}
}

func TestStartOfEndOfMonth(t *testing.T) {
	i, _ := FromComponents(Components{Year: 2024, Month: 2, Day: 15, Hour: 12})
	start := i.StartOf("month")
	if start.Day() != 1 || start.Hour() != 0 {
		t.Fatalf("got day=%d hour=%d", start.Day(), start.Hour())
	}
	end := i.EndOf("month")
	if end.Day() != 29 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 || end.Millisecond() != 999 {
		t.Fatalf("got %+v", end.componentsInFrame())
	}
}

func TestStartOfWeekDefaultsSunday(t *testing.T) {
	// 2024-03-15 is a Friday.
	i, _ := FromComponents(Components{Year: 2024, Month: 3, Day: 15})
	start := i.StartOf("week")
	if start.Weekday() != 0 {
		t.Fatalf("expected Sunday (0), got weekday %d", start.Weekday())
	}
	if start.Day() != 10 {
		t.Fatalf("expected March 10, got %d", start.Day())
	}
}

func TestDiffMonthsCalendarAware(t *testing.T) {
	a, _ := FromComponents(Components{Year: 2024, Month: 3, Day: 1})
	b, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 31})
	got := a.Diff(b, "month", false)
	if got != 1 {
		t.Fatalf("expected 1 whole month (Mar 1 is not yet 2 full months past Jan 31), got %v", got)
	}
}

func TestDiffMonthsAnchorsThroughMonthEndClamping(t *testing.T) {
	a, _ := FromComponents(Components{Year: 2024, Month: 2, Day: 29})
	b, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 31})
	got := a.Diff(b, "month", false)
	if got != 1 {
		t.Fatalf("expected 2024-01-31 vs 2024-02-29 to differ by 1 month, got %v", got)
	}
}

func TestDiffHoursWholeAndPrecise(t *testing.T) {
	a, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1, Hour: 23})
	b, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1})
	got := a.Diff(b, "hour", false)
	if got != 23 {
		t.Fatalf("got %v, want 23", got)
	}
	precise := a.Diff(b, "hour", true)
	if precise != 23 {
		t.Fatalf("got %v, want 23", precise)
	}
}

func TestDiffSignFollowsOrder(t *testing.T) {
	a, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 10})
	b, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1})
	if a.Diff(b, "day", false) != 9 {
		t.Fatalf("expected +9")
	}
	if b.Diff(a, "day", false) != -9 {
		t.Fatalf("expected -9")
	}
}
