package kairos

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIsComparesByKindOnly(t *testing.T) {
	a := newError(KindInvalidDate, "first message")
	b := newError(KindInvalidDate, "a different message")
	if !errors.Is(a, b) {
		t.Fatalf("expected errors of the same kind to match via Is")
	}
	c := newError(KindInvalidDuration, "first message")
	if errors.Is(a, c) {
		t.Fatalf("expected different kinds not to match")
	}
}

func TestWrapErrorUnwrapsToCause(t *testing.T) {
	cause := errors.New("underlying failure")
	wrapped := wrapError(KindHolidayCycle, "cycle detected", cause)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
}

func TestErrorMessageIncludesKind(t *testing.T) {
	err := newError(KindNoBusinessDayFound, "exhausted search")
	if err.Error() == "" {
		t.Fatalf("expected a non-empty message")
	}
	if !strings.Contains(err.Error(), string(KindNoBusinessDayFound)) {
		t.Fatalf("expected message %q to include kind %q", err.Error(), KindNoBusinessDayFound)
	}
}
