package duration

import "errors"

// ErrInvalidDuration is returned for non-finite, over-bounds, or
// malformed ISO-8601 duration input. It is wrapped with context via
// fmt.Errorf("%w: ...", ErrInvalidDuration, ...) so callers can still
// match it with errors.Is.
var ErrInvalidDuration = errors.New("duration: invalid duration")

// ErrDivisionByZero is returned by Divide when the divisor is exactly
// zero.
var ErrDivisionByZero = errors.New("duration: division by zero")
