package kairos

import (
	"testing"

	"github.com/kairos-go/kairos/plugin"
)

func TestNewWithNoInputBehavesLikeNow(t *testing.T) {
	before := Now().EpochMilliseconds()
	got := New().EpochMilliseconds()
	after := Now().EpochMilliseconds()
	if got < before || got > after {
		t.Fatalf("expected New() with no args to read the current instant")
	}
}

func TestNewParsesISO8601(t *testing.T) {
	i := New("2024-03-15T10:30:00Z")
	if !i.IsValid() || i.Year() != 2024 || i.Month() != 3 || i.Day() != 15 {
		t.Fatalf("expected a valid parsed instant, got %+v", i)
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	i := New("not a date at all")
	if i.IsValid() {
		t.Fatalf("expected invalid instant for unparseable input")
	}
}

func TestParseWithLocaleUSHint(t *testing.T) {
	i := ParseWithLocale("03-05-2024", "us")
	if !i.IsValid() || i.Month() != 3 || i.Day() != 5 {
		t.Fatalf("expected US month-first parse, got %04d-%02d-%02d", i.Year(), i.Month(), i.Day())
	}
}

func TestUTCNowSetsUTCFlag(t *testing.T) {
	i := UTCNow()
	if !i.utc {
		t.Fatalf("expected UTCNow to set the UTC flag")
	}
}

func TestDurationParsesISO8601Duration(t *testing.T) {
	d, err := Duration("P1D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Milliseconds() != 24*3600*1000 {
		t.Fatalf("got %d ms, want one day", d.Milliseconds())
	}
}

func TestMakeRangeIsClosedDayStepped(t *testing.T) {
	start, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 1})
	end, _ := FromComponents(Components{Year: 2024, Month: 1, Day: 3})
	r, err := MakeRange(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(end) {
		t.Fatalf("expected a closed range to contain its end")
	}
}

func TestSetLocaleUnknownCodeIsNoOp(t *testing.T) {
	before := ActiveLocale()
	SetLocale("xx-totally-unknown")
	if ActiveLocale() != before {
		t.Fatalf("expected unknown locale code to be a no-op, active changed from %q to %q", before, ActiveLocale())
	}
}

func TestSetLocaleKnownCodeSwitchesActive(t *testing.T) {
	before := ActiveLocale()
	defer SetLocale(before)
	SetLocale("de-DE")
	if ActiveLocale() != "de-de" {
		t.Fatalf("expected active locale de-de, got %q", ActiveLocale())
	}
}

func TestUseInstallsAPlugin(t *testing.T) {
	installed := false
	err := Use(plugin.Plugin{Name: "kairos-test-plugin", Install: func(r *plugin.Registry) error {
		installed = true
		return nil
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !installed {
		t.Fatalf("expected the plugin's Install to run")
	}
}
