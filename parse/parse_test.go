package parse

import "testing"

func TestParseISO8601Basic(t *testing.T) {
	ms, ok := Parse("2024-03-15T10:30:00Z", "")
	if !ok {
		t.Fatalf("expected ISO-8601 parse to succeed")
	}
	// 2024-03-15 is day 19797 since epoch; 10:30:00 = 37800000ms.
	wantDays := int64(19797)
	want := wantDays*86400000 + 37800000
	if ms != want {
		t.Fatalf("got %d, want %d", ms, want)
	}
}

func TestParseISO8601FractionalSeconds(t *testing.T) {
	ms1, ok1 := Parse("2024-01-01T00:00:00.5Z", "")
	ms2, ok2 := Parse("2024-01-01T00:00:00.500Z", "")
	if !ok1 || !ok2 || ms1 != ms2 {
		t.Fatalf("expected right-padded fractional seconds to match: %d ok=%v vs %d ok=%v", ms1, ok1, ms2, ok2)
	}
}

func TestParseISO8601Offset(t *testing.T) {
	utcMS, _ := Parse("2024-01-01T00:00:00Z", "")
	offsetMS, ok := Parse("2024-01-01T09:00:00+09:00", "")
	if !ok || offsetMS != utcMS {
		t.Fatalf("expected +09:00 offset to normalize to the same instant as UTC, got %d vs %d", offsetMS, utcMS)
	}
}

func TestParseRFC2822(t *testing.T) {
	ms, ok := Parse("Fri, 15 Mar 2024 10:30:00 GMT", "")
	if !ok {
		t.Fatalf("expected RFC-2822 parse to succeed")
	}
	want, _ := Parse("2024-03-15T10:30:00Z", "")
	if ms != want {
		t.Fatalf("got %d, want %d", ms, want)
	}
}

func TestParseUnixEpochSecondsVsMillis(t *testing.T) {
	secondsMS, ok := Parse("1700000000", "")
	if !ok || secondsMS != 1700000000000 {
		t.Fatalf("expected seconds interpretation, got %d ok=%v", secondsMS, ok)
	}
	millisMS, ok := Parse("1700000000000", "")
	if !ok || millisMS != 1700000000000 {
		t.Fatalf("expected millis interpretation, got %d ok=%v", millisMS, ok)
	}
}

func TestParseFlexibleRejectsRollover(t *testing.T) {
	_, ok := Parse("2024-02-30", "")
	if ok {
		t.Fatalf("expected Feb 30 to be rejected, not rolled over")
	}
}

func TestParseFlexibleAmbiguousDefaultsEuropeanFirst(t *testing.T) {
	ms, ok := Parse("03-05-2024", "")
	if !ok {
		t.Fatalf("expected ambiguous date to parse")
	}
	// European (day-first) interpretation: day=3, month=5 -> May 3, 2024.
	want, _ := Parse("2024-05-03", "")
	if ms != want {
		t.Fatalf("got %d, want %d (May 3, European day-first)", ms, want)
	}
}

func TestParseFlexibleAmbiguousUSHint(t *testing.T) {
	ms, ok := Parse("03-05-2024", "us")
	if !ok {
		t.Fatalf("expected ambiguous date to parse with US hint")
	}
	want, _ := Parse("2024-03-05", "")
	if ms != want {
		t.Fatalf("got %d, want %d (March 5, US month-first)", ms, want)
	}
}

func TestParseInvalidInputNotCached(t *testing.T) {
	_, ok := Parse("not a date", "")
	if ok {
		t.Fatalf("expected garbage input to fail every strategy")
	}
	if _, cached := resultCache.Get(cacheKey{input: "not a date", hint: ""}); cached {
		t.Fatalf("expected a failed parse not to be cached")
	}
}
