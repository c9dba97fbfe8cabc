// Package business implements weekend- and holiday-aware business-day
// arithmetic: spec.md §4.9's is_business_day/next_business_day/
// previous_business_day/add_business_days/business_days_between/
// business_days_in_month/business_days_in_year/settlement_date.
//
// Grounded on the teacher's (coredds/GoHoliday) business.go
// BusinessDayCalculator — same weekend-set-plus-holiday-provider shape —
// generalized from a hardcoded []time.Weekday and single *Country to a
// configurable weekend set and a holiday.Engine-backed checker, with the
// teacher's unbounded next/previous loops replaced by a bounded search
// per spec.md §1.8/§4.9's cancellation-by-iteration-budget design.
package business

import (
	"github.com/kairos-go/kairos/calendar"
	"github.com/kairos-go/kairos/holiday"
)

// DefaultMaxIterations is the bound applied to next/previous business day
// search when Config.MaxIterations is left at zero.
const DefaultMaxIterations = 1000

// Config configures a Calendar per spec.md §4.9.
type Config struct {
	Weekends      map[int]bool // 0=Sunday..6=Saturday; nil means default {0,6}
	Rules         []holiday.Rule
	Region        string
	MaxIterations int // default 1000; must be >= 1
}

func (c Config) weekendSet() map[int]bool {
	if c.Weekends == nil {
		return map[int]bool{0: true, 6: true}
	}
	return c.Weekends
}

func (c Config) maxIterations() int {
	if c.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}

// Calendar is a validated business-day calculator over a weekend set and
// a holiday rule set.
type Calendar struct {
	weekends      map[int]bool
	maxIterations int
	checker       *holiday.FastChecker
}

// New validates cfg and builds a Calendar. Rejects configurations where
// every weekday is marked as a weekend (no business day could ever
// exist) or where MaxIterations is negative.
func New(engine *holiday.Engine, cfg Config) (*Calendar, error) {
	weekends := cfg.weekendSet()
	if len(weekends) >= 7 {
		return nil, ErrNoBusinessDayPossible
	}
	maxIter := cfg.maxIterations()
	if maxIter < 1 {
		return nil, ErrInvalidMaxIterations
	}
	return &Calendar{
		weekends:      weekends,
		maxIterations: maxIter,
		checker:       holiday.NewFastChecker(engine, cfg.Rules, cfg.Region),
	}, nil
}

// IsBusinessDay reports whether date is neither a configured weekend day
// nor a holiday.
func (c *Calendar) IsBusinessDay(date calendar.Date) (bool, error) {
	wd := calendar.Weekday(date.Year, date.Month, date.Day)
	if c.weekends[wd] {
		return false, nil
	}
	isHoliday, err := c.checker.IsHoliday(date)
	if err != nil {
		return false, err
	}
	return !isHoliday, nil
}

func (c *Calendar) step(date calendar.Date, direction int64) (calendar.Date, error) {
	days := calendar.DaysSinceEpoch(date.Year, date.Month, date.Day)
	for i := 0; i < c.maxIterations; i++ {
		days += direction
		cand := calendar.DateFromEpochDays(days)
		ok, err := c.IsBusinessDay(cand)
		if err != nil {
			return calendar.Date{}, err
		}
		if ok {
			return cand, nil
		}
	}
	return calendar.Date{}, ErrNoBusinessDayFound
}

// NextBusinessDay returns the next business day strictly after date,
// bounded by Config.MaxIterations.
func (c *Calendar) NextBusinessDay(date calendar.Date) (calendar.Date, error) {
	return c.step(date, 1)
}

// PreviousBusinessDay returns the previous business day strictly before
// date, bounded by Config.MaxIterations.
func (c *Calendar) PreviousBusinessDay(date calendar.Date) (calendar.Date, error) {
	return c.step(date, -1)
}

// AddBusinessDays applies n next/previous steps starting from date. n=0
// returns date unchanged, whether or not it is itself a business day —
// callers wanting "snap to the nearest business day" should call
// IsBusinessDay first, per spec.md §4.9.
func (c *Calendar) AddBusinessDays(date calendar.Date, n int) (calendar.Date, error) {
	current := date
	var err error
	if n > 0 {
		for i := 0; i < n; i++ {
			current, err = c.NextBusinessDay(current)
			if err != nil {
				return calendar.Date{}, err
			}
		}
	} else if n < 0 {
		for i := 0; i < -n; i++ {
			current, err = c.PreviousBusinessDay(current)
			if err != nil {
				return calendar.Date{}, err
			}
		}
	}
	return current, nil
}

// BusinessDaysBetween counts business days in the inclusive interval
// [min(a,b), max(a,b)]; the sign follows the direction from a to b.
func (c *Calendar) BusinessDaysBetween(a, b calendar.Date) (int, error) {
	aDays := calendar.DaysSinceEpoch(a.Year, a.Month, a.Day)
	bDays := calendar.DaysSinceEpoch(b.Year, b.Month, b.Day)
	negate := false
	if aDays > bDays {
		aDays, bDays = bDays, aDays
		negate = true
	}

	count := 0
	for d := aDays; d <= bDays; d++ {
		date := calendar.DateFromEpochDays(d)
		ok, err := c.IsBusinessDay(date)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	if negate {
		return -count, nil
	}
	return count, nil
}

// BusinessDaysInMonth counts business days in calendar month (year, month).
func (c *Calendar) BusinessDaysInMonth(year, month int) (int, error) {
	days := calendar.DaysInMonth(year, month)
	return c.BusinessDaysBetween(
		calendar.Date{Year: year, Month: month, Day: 1},
		calendar.Date{Year: year, Month: month, Day: days},
	)
}

// BusinessDaysInYear counts business days across calendar year.
func (c *Calendar) BusinessDaysInYear(year int) (int, error) {
	return c.BusinessDaysBetween(
		calendar.Date{Year: year, Month: 1, Day: 1},
		calendar.Date{Year: year, Month: 12, Day: 31},
	)
}

// SettlementDate returns tradeDate shifted by tPlusN business days, e.g.
// T+2 settlement.
func (c *Calendar) SettlementDate(tradeDate calendar.Date, tPlusN int) (calendar.Date, error) {
	return c.AddBusinessDays(tradeDate, tPlusN)
}
