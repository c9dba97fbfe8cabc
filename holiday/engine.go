package holiday

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kairos-go/kairos/cache"
	"github.com/kairos-go/kairos/calendar"
)

// Info is the computed, immutable result of evaluating a Rule for one
// calendar year. See spec.md §3 HolidayInfo.
type Info struct {
	ID           string
	Name         string
	Type         Type
	Date         calendar.Date
	OriginalDate calendar.Date
	Observed     bool
	DurationDays int
	Regions      []string
	Category     string
}

// observedShiftBound is the hard cap on the observed-date search per
// spec.md §4.8 ("bounded to at most 7 iterations").
const observedShiftBound = 7

// Engine evaluates HolidayRule sets. It is safe for concurrent use: the
// memoization cache is a mutex-guarded cache.LRU (see package cache), and
// cycle-detection state is allocated fresh per call, never stored on the
// Engine, per spec.md §4.8's "visited set is per-resolution-call... not
// instance state".
type Engine struct {
	cache  *cache.LRU[string, []calendar.Date]
	lunar  LunarCalculator
}

// DefaultRuleCacheCapacity bounds the number of distinct (rule, year)
// results memoized at once, matching spec.md §1.8's "LRU caches &
// bounded resources" requirement that no cache grow unbounded.
const DefaultRuleCacheCapacity = 4096

// NewEngine creates a holiday rule engine with the given rule-cache
// capacity and lunar collaborator. Pass nil for lunar to use
// DefaultLunarCalculator.
func NewEngine(cacheCapacity int, lunar LunarCalculator) (*Engine, error) {
	if cacheCapacity <= 0 {
		cacheCapacity = DefaultRuleCacheCapacity
	}
	c, err := cache.New[string, []calendar.Date](cacheCapacity)
	if err != nil {
		return nil, err
	}
	if lunar == nil {
		lunar = DefaultLunarCalculator{}
	}
	return &Engine{cache: c, lunar: lunar}, nil
}

func cacheKey(hash string, year int) string {
	return fmt.Sprintf("%s@%d", hash, year)
}

// Compute evaluates rule for year, returning the (possibly empty, for
// Feb-29-only or not-yet-applicable rules) list of Gregorian dates it
// produces. Relative rules cannot be computed in isolation — use
// HolidaysInYear for a rule set containing relative rules. Results are
// memoized by (stable rule hash, year).
func (e *Engine) Compute(rule Rule, year int) ([]calendar.Date, error) {
	return e.compute(rule, year, nil)
}

// resolved carries pass-1 results (name/id -> computed dates) for
// resolving pass-2 relative rules, plus the per-call visited set used for
// cycle detection.
type resolveCtx struct {
	byID    map[string][]calendar.Date
	ruleSet map[string]Rule
	visited map[string]bool
}

func (e *Engine) compute(rule Rule, year int, ctx *resolveCtx) ([]calendar.Date, error) {
	rule = rule.withDefaults()
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if !rule.Active {
		return nil, nil
	}

	hash := stableHash(rule)
	key := cacheKey(hash, year)
	if rule.Type != TypeRelative && rule.Type != TypeCustom {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	var dates []calendar.Date
	var err error

	switch rule.Type {
	case TypeFixed:
		dates = e.computeFixed(rule, year)
	case TypeNthWeekday:
		dates = e.computeNthWeekday(rule, year)
	case TypeEasterBased:
		dates = e.computeEasterBased(rule, year)
	case TypeLunar:
		dates, err = e.computeLunar(rule, year)
	case TypeRelative:
		dates, err = e.computeRelative(rule, year, ctx)
	case TypeCustom:
		dates, err = rule.Calculate(year)
	default:
		return nil, fmt.Errorf("%w: unknown rule type %q", ErrInvalidConfiguration, rule.Type)
	}
	if err != nil {
		return nil, err
	}

	if rule.Type != TypeRelative && rule.Type != TypeCustom {
		e.cache.Put(key, dates)
	}
	return dates, nil
}

func (e *Engine) computeFixed(rule Rule, year int) []calendar.Date {
	if !calendar.ValidDate(year, rule.Month, rule.Day) {
		return nil
	}
	return []calendar.Date{{Year: year, Month: rule.Month, Day: rule.Day}}
}

func (e *Engine) computeNthWeekday(rule Rule, year int) []calendar.Date {
	return []calendar.Date{calendar.NthWeekdayOfMonth(year, rule.Month, rule.Weekday, rule.Nth)}
}

func (e *Engine) computeEasterBased(rule Rule, year int) []calendar.Date {
	easter := calendar.EasterSunday(year)
	days := calendar.DaysSinceEpoch(easter.Year, easter.Month, easter.Day) + int64(rule.OffsetDays)
	return []calendar.Date{calendar.DateFromEpochDays(days)}
}

func (e *Engine) computeLunar(rule Rule, year int) ([]calendar.Date, error) {
	return e.lunar.ComputeGregorian(rule.Calendar, year, rule.Month, rule.Day)
}

func (e *Engine) computeRelative(rule Rule, year int, ctx *resolveCtx) ([]calendar.Date, error) {
	if ctx == nil {
		return nil, fmt.Errorf("holiday: relative rule %q cannot be computed outside a rule set; use HolidaysInYear", rule.Name)
	}
	self := rule.identifier()
	if ctx.visited[self] {
		return nil, fmt.Errorf("%w: %s", ErrHolidayCycle, self)
	}
	if base, ok := ctx.byID[rule.RelativeTo]; ok {
		out := make([]calendar.Date, len(base))
		for i, d := range base {
			days := calendar.DaysSinceEpoch(d.Year, d.Month, d.Day) + int64(rule.OffsetDays)
			out[i] = calendar.DateFromEpochDays(days)
		}
		return out, nil
	}
	target, ok := ctx.ruleSet[rule.RelativeTo]
	if !ok {
		return nil, fmt.Errorf("%w: %q (referenced by %q)", ErrUnknownRule, rule.RelativeTo, rule.Name)
	}
	ctx.visited[self] = true
	base, err := e.compute(target, year, ctx)
	delete(ctx.visited, self)
	if err != nil {
		return nil, err
	}
	out := make([]calendar.Date, len(base))
	for i, d := range base {
		days := calendar.DaysSinceEpoch(d.Year, d.Month, d.Day) + int64(rule.OffsetDays)
		out[i] = calendar.DateFromEpochDays(days)
	}
	return out, nil
}

// applyObserved shifts date onto its publicly observed date per
// rule.Observed if date falls on a configured weekend, bounded to
// observedShiftBound iterations. Only Fixed and NthWeekday rules are
// eligible for observed-date substitution per spec.md §4.8.
func applyObserved(rule Rule, date calendar.Date) (observedDate calendar.Date, shifted bool) {
	if rule.Observed == nil {
		return date, false
	}
	if rule.Type != TypeFixed && rule.Type != TypeNthWeekday {
		return date, false
	}
	weekends := rule.Observed.weekendSet()
	wd := calendar.Weekday(date.Year, date.Month, date.Day)
	if !weekends[wd] {
		return date, false
	}

	days := calendar.DaysSinceEpoch(date.Year, date.Month, date.Day)
	step := int64(1)
	switch rule.Observed.Direction {
	case DirectionBackward:
		step = -1
	case DirectionForward:
		step = 1
	case DirectionNearest:
		step = 1 // direction chosen dynamically below
	}

	if rule.Observed.Direction == DirectionNearest {
		// Search outward alternating forward/back, bounded.
		for i := int64(1); i <= observedShiftBound; i++ {
			fwd := calendar.DateFromEpochDays(days + i)
			if !weekends[calendar.Weekday(fwd.Year, fwd.Month, fwd.Day)] {
				return fwd, true
			}
			back := calendar.DateFromEpochDays(days - i)
			if !weekends[calendar.Weekday(back.Year, back.Month, back.Day)] {
				return back, true
			}
		}
		return date, false
	}

	for i := int64(1); i <= observedShiftBound; i++ {
		cand := calendar.DateFromEpochDays(days + step*i)
		if !weekends[calendar.Weekday(cand.Year, cand.Month, cand.Day)] {
			return cand, true
		}
	}
	return date, false
}

func regionMatches(ruleRegions []string, region string) bool {
	if region == "" || len(ruleRegions) == 0 {
		return true
	}
	region = strings.ToLower(strings.TrimSpace(region))
	for _, r := range ruleRegions {
		if strings.ToLower(r) == region {
			return true
		}
	}
	return false
}

// HolidaysInYear evaluates every rule in rules for year and returns the
// resulting Info values, sorted ascending by date with ties broken by
// identifier (id, or name if id is empty), per spec.md §3/§4.8. Relative
// rules are resolved in a second pass against the first pass's results;
// reference cycles fail the whole call with ErrHolidayCycle. An optional
// region filters out rules whose Regions set doesn't include it (a rule
// with no Regions always matches, per spec.md §4.9 supplement in
// SPEC_FULL.md §7).
func (e *Engine) HolidaysInYear(rules []Rule, year int, region string) ([]Info, error) {
	for _, r := range rules {
		if err := r.withDefaults().Validate(); err != nil {
			return nil, err
		}
	}

	ruleSet := make(map[string]Rule, len(rules))
	for _, r := range rules {
		r = r.withDefaults()
		ruleSet[r.identifier()] = r
	}

	ctx := &resolveCtx{
		byID:    make(map[string][]calendar.Date, len(rules)),
		ruleSet: ruleSet,
		visited: make(map[string]bool),
	}

	// Pass 1: every non-relative rule.
	for _, r := range rules {
		r = r.withDefaults()
		if r.Type == TypeRelative || !r.Active {
			continue
		}
		dates, err := e.compute(r, year, ctx)
		if err != nil {
			return nil, err
		}
		ctx.byID[r.identifier()] = dates
	}

	var out []Info
	for _, r := range rules {
		r = r.withDefaults()
		if !r.Active || !regionMatches(r.Regions, region) {
			continue
		}
		var dates []calendar.Date
		var err error
		if r.Type == TypeRelative {
			dates, err = e.compute(r, year, ctx)
			if err != nil {
				return nil, err
			}
		} else {
			dates = ctx.byID[r.identifier()]
		}
		for _, d := range dates {
			observedDate, shifted := applyObserved(r, d)
			out = append(out, Info{
				ID:           r.identifier(),
				Name:         r.Name,
				Type:         r.Type,
				Date:         observedDate,
				OriginalDate: d,
				Observed:     shifted,
				DurationDays: r.DurationDays,
				Regions:      r.Regions,
				Category:     r.Category,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// HolidaysInRange returns every Info whose Date falls within [start, end]
// inclusive, across however many calendar years that spans.
func (e *Engine) HolidaysInRange(rules []Rule, start, end calendar.Date, region string) ([]Info, error) {
	if end.Before(start) {
		start, end = end, start
	}
	var out []Info
	for y := start.Year; y <= end.Year; y++ {
		infos, err := e.HolidaysInYear(rules, y, region)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if !info.Date.Before(start) && !end.Before(info.Date) {
				out = append(out, info)
			}
		}
	}
	return out, nil
}

// IsHoliday returns the Info for date if some rule in rules produces a
// holiday whose Date (the observed date when an observed rule shifted
// it) equals date, else ok is false. A shifted holiday's OriginalDate
// does not match.
func (e *Engine) IsHoliday(rules []Rule, date calendar.Date, region string) (info Info, ok bool, err error) {
	infos, err := e.HolidaysInYear(rules, date.Year, region)
	if err != nil {
		return Info{}, false, err
	}
	for _, i := range infos {
		if i.Date.Equal(date) {
			return i, true, nil
		}
	}
	return Info{}, false, nil
}

// NextHoliday returns the earliest Info with Date strictly after "after".
func (e *Engine) NextHoliday(rules []Rule, after calendar.Date, region string) (Info, bool, error) {
	for y := after.Year; y <= after.Year+5; y++ {
		infos, err := e.HolidaysInYear(rules, y, region)
		if err != nil {
			return Info{}, false, err
		}
		for _, i := range infos {
			if after.Before(i.Date) {
				return i, true, nil
			}
		}
	}
	return Info{}, false, nil
}

// PreviousHoliday returns the latest Info with Date strictly before
// "before".
func (e *Engine) PreviousHoliday(rules []Rule, before calendar.Date, region string) (Info, bool, error) {
	for y := before.Year; y >= before.Year-5; y-- {
		infos, err := e.HolidaysInYear(rules, y, region)
		if err != nil {
			return Info{}, false, err
		}
		for i := len(infos) - 1; i >= 0; i-- {
			if infos[i].Date.Before(before) {
				return infos[i], true, nil
			}
		}
	}
	return Info{}, false, nil
}
