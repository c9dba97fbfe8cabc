package locale

import (
	"testing"

	"github.com/kairos-go/kairos/holiday"
)

func TestStoreRegisterGetActive(t *testing.T) {
	s := NewStore()
	s.Register("en-US", Locale{Code: "en-US"})
	l, ok := s.Get("EN-us")
	if !ok || l.Code != "en-US" {
		t.Fatalf("Get should be case-insensitive, got %+v ok=%v", l, ok)
	}
	if s.Active() != "en-us" {
		t.Fatalf("first registered locale should become active, got %q", s.Active())
	}
}

func TestStoreSetActiveUnknownCodeIsNoOp(t *testing.T) {
	s := NewStore()
	s.Register("en-US", Locale{Code: "en-US"})
	ok := s.SetActive("xx-XX")
	if ok {
		t.Fatalf("expected SetActive to report false for unknown code")
	}
	if s.Active() != "en-us" {
		t.Fatalf("active locale should remain unchanged, got %q", s.Active())
	}
}

func TestStoreList(t *testing.T) {
	s := NewStore()
	s.Register("en-US", Locale{Code: "en-US"})
	s.Register("de-DE", Locale{Code: "de-DE"})
	codes := s.List()
	if len(codes) != 2 {
		t.Fatalf("expected 2 codes, got %d: %v", len(codes), codes)
	}
}

func TestGlobalHasBuiltins(t *testing.T) {
	for _, code := range []string{"en-US", "de-DE", "fr-FR", "es-ES", "it-IT", "pt-BR", "ru-RU", "zh-CN", "ja-JP", "tr-TR"} {
		if _, ok := Global.Get(code); !ok {
			t.Fatalf("expected builtin locale %q to be registered", code)
		}
	}
	if Global.Active() != "en-us" {
		t.Fatalf("expected en-US to be the default active locale, got %q", Global.Active())
	}
}

func TestHolidayRulesRegionFiltering(t *testing.T) {
	// The builtin locales carry regional rules in Holidays (filtered by
	// Rule.Regions in the holiday engine), so this uses a locale that
	// populates RegionalHolidays.
	l := Locale{
		Code:             "xx-XX",
		Holidays:         []holiday.Rule{{Name: "National Day"}},
		RegionalHolidays: map[string][]holiday.Rule{"by": {{Name: "Regional Day"}}},
	}
	base := l.HolidayRules("")
	bavaria := l.HolidayRules("BY")
	if len(bavaria) <= len(base) {
		t.Fatalf("expected region-filtered rule set to include more rules than the base set")
	}
}
