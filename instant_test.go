package kairos

import (
	"errors"
	"testing"
)

func TestFromComponentsRoundTrip(t *testing.T) {
	i, err := FromComponents(Components{Year: 2024, Month: 3, Day: 15, Hour: 10, Minute: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Year() != 2024 || i.Month() != 3 || i.Day() != 15 || i.Hour() != 10 || i.Minute() != 30 {
		t.Fatalf("got %+v", i.componentsInFrame())
	}
}

func TestFromComponentsRejectsOutOfRange(t *testing.T) {
	_, err := FromComponents(Components{Year: 2024, Month: 2, Day: 30})
	if err == nil {
		t.Fatalf("expected Feb 30 to be rejected")
	}
	var ke *Error
	if !errors.As(err, &ke) || ke.Kind != KindInvalidDate {
		t.Fatalf("expected KindInvalidDate, got %v", err)
	}
}

func TestFromComponentArrayZeroIndexedMonth(t *testing.T) {
	i, err := FromComponentArray([]int{2024, 0, 1}) // January 1 (month 0 = Jan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Month() != 1 {
		t.Fatalf("expected month 1, got %d", i.Month())
	}
}

func TestUnixSeconds(t *testing.T) {
	i := Unix(0)
	if i.Year() != 1970 || i.Month() != 1 || i.Day() != 1 {
		t.Fatalf("expected epoch, got %04d-%02d-%02d", i.Year(), i.Month(), i.Day())
	}
}

func TestInvalidPropagates(t *testing.T) {
	i := Invalid()
	if i.IsValid() {
		t.Fatalf("expected invalid")
	}
	if i.Year() != 0 || i.EpochMilliseconds() != 0 {
		t.Fatalf("expected zero-valued accessors on an invalid instant")
	}
	shifted := i.Add(1, "day")
	if shifted.IsValid() {
		t.Fatalf("expected invalidity to propagate through Add")
	}
}

func TestCompareOrdersInvalidBelowValid(t *testing.T) {
	valid, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1})
	inv := Invalid()
	if inv.Compare(valid) >= 0 {
		t.Fatalf("expected invalid to compare less than valid")
	}
	if !inv.Equals(Invalid()) {
		t.Fatalf("expected two invalids to compare equal")
	}
}

func TestIsBeforeIsAfter(t *testing.T) {
	a, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1})
	b, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 2})
	if !a.IsBefore(b) || !b.IsAfter(a) {
		t.Fatalf("expected a before b")
	}
}

func TestIsSameUsesStartOfUnit(t *testing.T) {
	a, _ := FromComponents(Components{Year: 2024, Month: 3, Day: 15, Hour: 1})
	b, _ := FromComponents(Components{Year: 2024, Month: 3, Day: 15, Hour: 23})
	if !a.IsSame(b, UnitDay) {
		t.Fatalf("expected same calendar day")
	}
	if a.IsSame(b, UnitHour) {
		t.Fatalf("expected different hour bucket")
	}
}
