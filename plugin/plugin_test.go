package plugin

import (
	"errors"
	"testing"

	"github.com/kairos-go/kairos/locale"
)

func freshRegistry() *Registry {
	return NewRegistry(locale.NewStore())
}

func TestUseInstallsInDependencyOrder(t *testing.T) {
	r := freshRegistry()
	var order []string

	base := Plugin{Name: "base", Install: func(reg *Registry) error {
		order = append(order, "base")
		reg.RegisterStatic("base.hello", func(args ...any) (any, error) { return "hello", nil })
		return nil
	}}
	dependent := Plugin{Name: "dependent", Dependencies: []string{"base"}, Install: func(reg *Registry) error {
		order = append(order, "dependent")
		return nil
	}}

	if err := r.Use(dependent, base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "base" || order[1] != "dependent" {
		t.Fatalf("expected base installed before dependent, got %v", order)
	}
	if !r.IsInstalled("base") || !r.IsInstalled("dependent") {
		t.Fatalf("expected both plugins marked installed")
	}
	fn, ok := r.StaticFunc("base.hello")
	if !ok {
		t.Fatalf("expected base.hello to be registered")
	}
	got, err := fn()
	if err != nil || got != "hello" {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestUseMissingDependency(t *testing.T) {
	r := freshRegistry()
	p := Plugin{Name: "orphan", Dependencies: []string{"nonexistent"}}
	err := r.Use(p)
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindMissingDependency {
		t.Fatalf("expected KindMissingDependency, got %v", err)
	}
}

func TestUseCircularDependency(t *testing.T) {
	r := freshRegistry()
	a := Plugin{Name: "a", Dependencies: []string{"b"}}
	b := Plugin{Name: "b", Dependencies: []string{"a"}}
	err := r.Use(a, b)
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindCircularDependency {
		t.Fatalf("expected KindCircularDependency, got %v", err)
	}
}

func TestUseIsIdempotentPerPlugin(t *testing.T) {
	r := freshRegistry()
	installs := 0
	p := Plugin{Name: "once", Install: func(reg *Registry) error {
		installs++
		return nil
	}}
	if err := r.Use(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Use(p); err != nil {
		t.Fatalf("unexpected error on second Use: %v", err)
	}
	if installs != 1 {
		t.Fatalf("expected Install to run exactly once, ran %d times", installs)
	}
}

func TestRegisterLocaleViaPlugin(t *testing.T) {
	r := freshRegistry()
	p := Plugin{Name: "locale-pt", Install: func(reg *Registry) error {
		reg.RegisterLocale("xx-XX", locale.Locale{Code: "xx-XX"})
		return nil
	}}
	if err := r.Use(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
