package business

import (
	"testing"

	"github.com/kairos-go/kairos/calendar"
	"github.com/kairos-go/kairos/holiday"
)

func mustEngine(t *testing.T) *holiday.Engine {
	t.Helper()
	e, err := holiday.NewEngine(0, nil)
	if err != nil {
		t.Fatalf("holiday.NewEngine: %v", err)
	}
	return e
}

func TestNewRejectsAllWeekendConfig(t *testing.T) {
	e := mustEngine(t)
	_, err := New(e, Config{
		Weekends: map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true},
	})
	if err != ErrNoBusinessDayPossible {
		t.Fatalf("got %v, want ErrNoBusinessDayPossible", err)
	}
}

func TestIsBusinessDaySkipsWeekendsAndHolidays(t *testing.T) {
	e := mustEngine(t)
	cal, err := New(e, Config{
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Type: holiday.TypeFixed, Active: true, Month: 1, Day: 1},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// 2025-01-01 is a Wednesday, but a holiday.
	ok, err := cal.IsBusinessDay(calendar.Date{Year: 2025, Month: 1, Day: 1})
	if err != nil || ok {
		t.Fatalf("expected holiday to not be a business day, ok=%v err=%v", ok, err)
	}

	// 2025-01-04 is a Saturday.
	ok, err = cal.IsBusinessDay(calendar.Date{Year: 2025, Month: 1, Day: 4})
	if err != nil || ok {
		t.Fatalf("expected Saturday to not be a business day, ok=%v err=%v", ok, err)
	}

	// 2025-01-02 is an ordinary Thursday.
	ok, err = cal.IsBusinessDay(calendar.Date{Year: 2025, Month: 1, Day: 2})
	if err != nil || !ok {
		t.Fatalf("expected ordinary weekday to be a business day, ok=%v err=%v", ok, err)
	}
}

func TestAddBusinessDaysSkipsWeekend(t *testing.T) {
	e := mustEngine(t)
	cal, err := New(e, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// 2025-01-02 is a Thursday; +2 business days should land on 2025-01-06
	// (Monday), skipping the weekend.
	got, err := cal.AddBusinessDays(calendar.Date{Year: 2025, Month: 1, Day: 2}, 2)
	if err != nil {
		t.Fatalf("AddBusinessDays: %v", err)
	}
	want := calendar.Date{Year: 2025, Month: 1, Day: 6}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAddBusinessDaysZeroReturnsInputUnchanged(t *testing.T) {
	e := mustEngine(t)
	cal, err := New(e, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// 2025-01-04 is a Saturday, not a business day, but n=0 must return it
	// unchanged per spec.md §4.9.
	sat := calendar.Date{Year: 2025, Month: 1, Day: 4}
	got, err := cal.AddBusinessDays(sat, 0)
	if err != nil || !got.Equal(sat) {
		t.Fatalf("got %v err=%v, want %v unchanged", got, err, sat)
	}
}

func TestBusinessDaysBetweenInclusiveAndSigned(t *testing.T) {
	e := mustEngine(t)
	cal, err := New(e, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := calendar.Date{Year: 2025, Month: 1, Day: 1}
	b := calendar.Date{Year: 2025, Month: 1, Day: 7}
	fwd, err := cal.BusinessDaysBetween(a, b)
	if err != nil {
		t.Fatalf("BusinessDaysBetween: %v", err)
	}
	back, err := cal.BusinessDaysBetween(b, a)
	if err != nil {
		t.Fatalf("BusinessDaysBetween: %v", err)
	}
	if fwd != 5 {
		t.Fatalf("expected 5 business days from Wed 2025-01-01 through Tue 2025-01-07 inclusive, got %d", fwd)
	}
	if fwd != -back {
		t.Fatalf("expected symmetric sign, got fwd=%d back=%d", fwd, back)
	}
}

func TestNoBusinessDayFoundWhenExhausted(t *testing.T) {
	e := mustEngine(t)
	cal, err := New(e, Config{
		Weekends:      map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true},
		MaxIterations: 2,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = cal.NextBusinessDay(calendar.Date{Year: 2025, Month: 1, Day: 1})
	if err != ErrNoBusinessDayFound {
		t.Fatalf("got %v, want ErrNoBusinessDayFound", err)
	}
}

func TestSettlementDate(t *testing.T) {
	e := mustEngine(t)
	cal, err := New(e, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := cal.SettlementDate(calendar.Date{Year: 2025, Month: 1, Day: 2}, 2)
	if err != nil {
		t.Fatalf("SettlementDate: %v", err)
	}
	want := calendar.Date{Year: 2025, Month: 1, Day: 6}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
