package kairos

import "testing"

func mustDate(t *testing.T, y, m, d int) Instant {
	t.Helper()
	i, err := FromComponents(Components{Year: y, Month: m, Day: d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return i
}

func TestNewRangeRejectsBadStep(t *testing.T) {
	start := mustDate(t, 2024, 1, 1)
	end := mustDate(t, 2024, 1, 10)
	_, err := NewRange(start, end, "day", 0, true)
	if err == nil {
		t.Fatalf("expected a non-positive step to be rejected")
	}
}

func TestRangeContainsRespectsClosedFlag(t *testing.T) {
	start := mustDate(t, 2024, 1, 1)
	end := mustDate(t, 2024, 1, 10)
	closed, _ := NewRange(start, end, "day", 1, true)
	open, _ := NewRange(start, end, "day", 1, false)
	if !closed.Contains(end) {
		t.Fatalf("expected closed range to contain its end")
	}
	if open.Contains(end) {
		t.Fatalf("expected open range to exclude its end")
	}
}

func TestRangeIterateStepsAndStops(t *testing.T) {
	start := mustDate(t, 2024, 1, 1)
	end := mustDate(t, 2024, 1, 5)
	r, _ := NewRange(start, end, "day", 2, true)
	var days []int
	r.Iterate(func(i Instant) bool {
		days = append(days, i.Day())
		return true
	})
	if len(days) != 3 || days[0] != 1 || days[1] != 3 || days[2] != 5 {
		t.Fatalf("got %v, want [1 3 5]", days)
	}
}

func TestRangeIterateEarlyExit(t *testing.T) {
	start := mustDate(t, 2024, 1, 1)
	end := mustDate(t, 2024, 1, 10)
	r, _ := NewRange(start, end, "day", 1, true)
	count := 0
	r.Iterate(func(i Instant) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Fatalf("expected iteration to stop after 3 calls, got %d", count)
	}
}

func TestRangeOverlapsAndIntersect(t *testing.T) {
	a, _ := NewRange(mustDate(t, 2024, 1, 1), mustDate(t, 2024, 1, 10), "day", 1, true)
	b, _ := NewRange(mustDate(t, 2024, 1, 5), mustDate(t, 2024, 1, 15), "day", 1, true)
	if !a.Overlaps(b) {
		t.Fatalf("expected overlap")
	}
	inter, ok := a.Intersect(b)
	if !ok {
		t.Fatalf("expected an intersection")
	}
	if inter.Start().Day() != 5 || inter.End().Day() != 10 {
		t.Fatalf("got [%d,%d], want [5,10]", inter.Start().Day(), inter.End().Day())
	}
}

func TestRangeChunkCoversEveryInstantOnce(t *testing.T) {
	start := mustDate(t, 2024, 1, 1)
	end := mustDate(t, 2024, 1, 10)
	r, _ := NewRange(start, end, "day", 1, true)
	chunks, err := r.Chunk(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, c := range chunks {
		c.Iterate(func(Instant) bool {
			total++
			return true
		})
	}
	if total != 10 {
		t.Fatalf("expected 10 total instants across chunks, got %d", total)
	}
}

func TestRangeChunkRejectsNonPositive(t *testing.T) {
	start := mustDate(t, 2024, 1, 1)
	end := mustDate(t, 2024, 1, 10)
	r, _ := NewRange(start, end, "day", 1, true)
	if _, err := r.Chunk(0); err == nil {
		t.Fatalf("expected chunk size 0 to be rejected")
	}
}

func TestRangeWeekdays(t *testing.T) {
	start := mustDate(t, 2024, 3, 11) // Monday
	end := mustDate(t, 2024, 3, 17)   // Sunday
	r, _ := NewRange(start, end, "day", 1, true)
	weekend := r.Weekdays(0, 6)
	if len(weekend) != 2 {
		t.Fatalf("expected 2 weekend days, got %d", len(weekend))
	}
}
