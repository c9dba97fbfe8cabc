package business

import "errors"

// ErrNoBusinessDayPossible is returned at construction when the
// configured weekend set covers all seven weekdays.
var ErrNoBusinessDayPossible = errors.New("business: weekend set covers all seven weekdays; no business day is possible")

// ErrInvalidMaxIterations is returned at construction when MaxIterations
// is negative.
var ErrInvalidMaxIterations = errors.New("business: max_iterations must be >= 1")

// ErrNoBusinessDayFound is returned when a next/previous business day
// search exceeds its configured iteration bound.
var ErrNoBusinessDayFound = errors.New("business: no business day found within max_iterations")
