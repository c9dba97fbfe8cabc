package duration

import "testing"

func TestMillisecondsBounds(t *testing.T) {
	if _, err := Milliseconds(MaxSafeInteger); err != nil {
		t.Errorf("MaxSafeInteger should be accepted: %v", err)
	}
	if _, err := Milliseconds(MaxSafeInteger + 1); err == nil {
		t.Error("MaxSafeInteger+1 should be rejected")
	}
}

func TestParseISORoundTrip(t *testing.T) {
	d, err := Parse("P1Y2M3DT4H5M6S")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := d.ToISOString(); got != "P1Y2M3DT4H5M6S" {
		t.Errorf("ToISOString() = %q, want %q", got, "P1Y2M3DT4H5M6S")
	}
}

func TestParseISOWeeksExclusive(t *testing.T) {
	if _, err := Parse("P1W2D"); err == nil {
		t.Error("weeks combined with days should be rejected")
	}
	if _, err := Parse("P2W"); err != nil {
		t.Errorf("P2W alone should parse: %v", err)
	}
}

func TestParseISORejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1Y2M", "PXY", "P"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	d := MustMilliseconds(1000)
	if _, err := d.Divide(0); err != ErrDivisionByZero {
		t.Errorf("Divide(0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestNegateIdempotent(t *testing.T) {
	d := MustMilliseconds(5000)
	if got := d.Negate().Negate(); got != d {
		t.Errorf("double negate = %v, want %v", got, d)
	}
}

func TestToISOStringOmitsZeroComponents(t *testing.T) {
	d := MustMilliseconds(3661000) // 1h1m1s
	if got := d.ToISOString(); got != "PT1H1M1S" {
		t.Errorf("ToISOString() = %q, want PT1H1M1S", got)
	}
}

func TestToISOStringFractionalSeconds(t *testing.T) {
	d := MustMilliseconds(1500)
	if got := d.ToISOString(); got != "PT1.5S" {
		t.Errorf("ToISOString() = %q, want PT1.5S", got)
	}
}

func TestHumanizeThresholds(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{30 * 1000, "a few seconds"},
		{60 * 1000, "a minute"},
		{5 * 60 * 1000, "5 minutes"},
		{2 * 3600 * 1000, "2 hours"},
		{23 * 3600 * 1000, "a day"},
	}
	for _, c := range cases {
		d := MustMilliseconds(c.ms)
		if got := d.Humanize(DefaultThresholds); got != c.want {
			t.Errorf("Humanize(%dms) = %q, want %q", c.ms, got, c.want)
		}
	}
}

func TestFromComponentsAverages(t *testing.T) {
	d, err := FromComponents(Components{Years: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d.Milliseconds() != AverageYear {
		t.Errorf("1 year = %d ms, want %d", d.Milliseconds(), AverageYear)
	}
}
