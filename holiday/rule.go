// Package holiday implements the tagged-variant holiday rule engine of
// spec.md §3/§4.8: fixed, nth-weekday, relative, lunar, Easter-based, and
// custom rules, dispatched through a single table, memoized per
// (rule, year), and substituted onto an observed date when the computed
// date falls on a weekend.
//
// The rule shape is grounded on the teacher's (coredds/GoHoliday)
// per-country Go files — each of which hand-writes "New Year's Day",
// "nth Monday of month", "N days after Easter" as inline time.Time
// arithmetic — generalized here into data (a Rule value) interpreted by
// one dispatcher, per spec.md §9's "prefer an algebraic sum type with
// exhaustive match" guidance.
package holiday

import (
	"fmt"

	"github.com/kairos-go/kairos/calendar"
)

// Type is the rule's tagged-variant discriminant.
type Type string

const (
	TypeFixed       Type = "fixed"
	TypeNthWeekday  Type = "nth_weekday"
	TypeRelative    Type = "relative"
	TypeLunar       Type = "lunar"
	TypeEasterBased Type = "easter_based"
	TypeCustom      Type = "custom"
)

// Direction is the shift direction for ObservedRule.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
	DirectionNearest  Direction = "nearest"
)

// SubstitutionType is the kind of observed-date substitution applied.
type SubstitutionType string

const (
	SubstitutionSubstitute   SubstitutionType = "substitute"
	SubstitutionBridge       SubstitutionType = "bridge"
	SubstitutionNearestWeekday SubstitutionType = "nearest_weekday"
)

// ObservedRule describes how a holiday that falls on a weekend is shifted
// to its publicly observed date. See spec.md §3.
type ObservedRule struct {
	Type      SubstitutionType
	Weekends  map[int]bool // 0=Sunday..6=Saturday; nil means the default {0,6}
	Direction Direction
}

func (o *ObservedRule) weekendSet() map[int]bool {
	if o == nil || o.Weekends == nil {
		return map[int]bool{0: true, 6: true}
	}
	return o.Weekends
}

// Validate rejects observed-rule configurations that can never produce a
// representable substitute date (all seven weekdays marked as weekend).
// This runs at registration time, not at search time, per spec.md §4.8.
func (o *ObservedRule) Validate() error {
	if o == nil {
		return nil
	}
	ws := o.weekendSet()
	if len(ws) >= 7 {
		return newConfigError("observed_rule.weekends covers all seven weekdays; no representable substitute date exists")
	}
	return nil
}

// Rule is the tagged-variant holiday definition of spec.md §3. Only the
// fields relevant to Type are meaningful; Validate checks this.
type Rule struct {
	Name         string
	Type         Type
	ID           string
	DurationDays int
	Regions      []string
	Active       bool
	Observed     *ObservedRule
	Category     string

	// TypeFixed
	Month int
	Day   int

	// TypeNthWeekday
	Weekday int // 0=Sunday..6=Saturday
	Nth     int // -1 or 1..5

	// TypeRelative
	RelativeTo string // name or id of another rule
	OffsetDays int

	// TypeLunar
	Calendar string // islamic|chinese|hebrew|persian
	// Month, Day reused for the lunar calendar's own month/day

	// TypeEasterBased
	// OffsetDays reused

	// TypeCustom
	Calculate func(year int) ([]calendar.Date, error)
}

// identifier returns the rule's ID if set, else its Name. Relative rules
// and ordering ties resolve against this.
func (r Rule) identifier() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

// withDefaults returns a copy of r with DurationDays/Active defaulted per
// spec.md §3 ("duration_days >= 1 (default 1)", "active: bool (default
// true)"). Rule literals built by Go code naturally zero-value Active to
// false, which would contradict the documented default, so registration
// always passes rules through this.
func (r Rule) withDefaults() Rule {
	if r.DurationDays == 0 {
		r.DurationDays = 1
	}
	if !r.Active {
		r.Active = true
	}
	return r
}

// Validate checks r's fields against its Type's natural ranges and
// returns an InvalidConfiguration-class error if they are out of range.
// The engine calls it each time it computes a rule, not only once.
func (r Rule) Validate() error {
	if r.Name == "" {
		return newConfigError("holiday rule must have a non-empty name")
	}
	if r.DurationDays < 1 {
		return newConfigError(fmt.Sprintf("rule %q: duration_days must be >= 1", r.Name))
	}
	if err := r.Observed.Validate(); err != nil {
		return fmt.Errorf("rule %q: %w", r.Name, err)
	}

	switch r.Type {
	case TypeFixed:
		if r.Month < 1 || r.Month > 12 {
			return newConfigError(fmt.Sprintf("rule %q: month %d out of range 1..12", r.Name, r.Month))
		}
		if r.Day < 1 || r.Day > 31 {
			return newConfigError(fmt.Sprintf("rule %q: day %d out of range 1..31", r.Name, r.Day))
		}
	case TypeNthWeekday:
		if r.Month < 1 || r.Month > 12 {
			return newConfigError(fmt.Sprintf("rule %q: month %d out of range 1..12", r.Name, r.Month))
		}
		if r.Weekday < 0 || r.Weekday > 6 {
			return newConfigError(fmt.Sprintf("rule %q: weekday %d out of range 0..6", r.Name, r.Weekday))
		}
		if r.Nth != -1 && (r.Nth < 1 || r.Nth > 5) {
			return newConfigError(fmt.Sprintf("rule %q: nth %d must be -1 or in 1..5", r.Name, r.Nth))
		}
	case TypeRelative:
		if r.RelativeTo == "" {
			return newConfigError(fmt.Sprintf("rule %q: relative_to must reference another rule", r.Name))
		}
	case TypeLunar:
		switch r.Calendar {
		case "islamic", "chinese", "hebrew", "persian":
		default:
			return newConfigError(fmt.Sprintf("rule %q: unknown lunar calendar %q", r.Name, r.Calendar))
		}
		if r.Month < 1 || r.Month > 12 {
			return newConfigError(fmt.Sprintf("rule %q: lunar month %d out of range 1..12", r.Name, r.Month))
		}
		if r.Day < 1 || r.Day > 31 {
			return newConfigError(fmt.Sprintf("rule %q: lunar day %d out of range 1..31", r.Name, r.Day))
		}
	case TypeEasterBased:
		// OffsetDays is an unconstrained signed integer.
	case TypeCustom:
		if r.Calculate == nil {
			return newConfigError(fmt.Sprintf("rule %q: custom rule requires a Calculate function", r.Name))
		}
	default:
		return newConfigError(fmt.Sprintf("rule %q: unknown rule type %q", r.Name, r.Type))
	}
	return nil
}
