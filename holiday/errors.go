package holiday

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned for rule/observed-rule
// configurations that can never be evaluated meaningfully (out-of-range
// fields, all-weekend observed rules, etc).
var ErrInvalidConfiguration = errors.New("holiday: invalid configuration")

// ErrHolidayCycle is returned when resolving relative rules discovers a
// reference cycle (A relative to B relative to A).
var ErrHolidayCycle = errors.New("holiday: relative-rule reference cycle")

// ErrUnknownRule is returned when a relative rule references a name/id
// that is not registered in the same rule set.
var ErrUnknownRule = errors.New("holiday: relative rule references an unknown rule")

func newConfigError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, msg)
}
