package holiday

import (
	"sync"

	"github.com/kairos-go/kairos/calendar"
)

// FastChecker is a read-mostly wrapper around Engine optimized for the
// tight is-this-a-business-day loops that business.AddBusinessDays and
// similar operations run: rather than re-evaluating the full rule set on
// every single-date check, it loads and retains one year's worth of
// Info at a time and answers subsequent IsHoliday calls against the
// retained map.
//
// Grounded on the teacher's chronogo/integration.go FastCountryChecker:
// same per-year-cache-with-RWMutex shape, generalized from one
// hardcoded country provider to an arbitrary Rule set plus region.
type FastChecker struct {
	engine  *Engine
	rules   []Rule
	region  string
	mu      sync.RWMutex
	byYear  map[int]map[calendar.Date]Info
}

// NewFastChecker builds a FastChecker over rules, filtered to region
// ("" for no filtering).
func NewFastChecker(engine *Engine, rules []Rule, region string) *FastChecker {
	return &FastChecker{
		engine: engine,
		rules:  rules,
		region: region,
		byYear: make(map[int]map[calendar.Date]Info),
	}
}

func (f *FastChecker) ensureYearLoaded(year int) error {
	f.mu.RLock()
	_, exists := f.byYear[year]
	f.mu.RUnlock()
	if exists {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byYear[year]; exists {
		return nil
	}
	infos, err := f.engine.HolidaysInYear(f.rules, year, f.region)
	if err != nil {
		return err
	}
	m := make(map[calendar.Date]Info, len(infos))
	for _, i := range infos {
		m[i.Date] = i
	}
	f.byYear[year] = m
	return nil
}

// IsHoliday reports whether date is a holiday, loading and retaining
// that year's rule evaluation on first access.
func (f *FastChecker) IsHoliday(date calendar.Date) (bool, error) {
	if err := f.ensureYearLoaded(date.Year); err != nil {
		return false, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.byYear[date.Year][date]
	return ok, nil
}

// Name returns the holiday's name for date, or "" if date is not a
// holiday.
func (f *FastChecker) Name(date calendar.Date) (string, error) {
	if err := f.ensureYearLoaded(date.Year); err != nil {
		return "", err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.byYear[date.Year][date].Name, nil
}

// AreHolidays batch-checks dates, pre-loading every year it touches
// before answering, same grouping strategy as the teacher's AreHolidays.
func (f *FastChecker) AreHolidays(dates []calendar.Date) ([]bool, error) {
	years := make(map[int]bool)
	for _, d := range dates {
		years[d.Year] = true
	}
	for y := range years {
		if err := f.ensureYearLoaded(y); err != nil {
			return nil, err
		}
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]bool, len(dates))
	for i, d := range dates {
		_, out[i] = f.byYear[d.Year][d]
	}
	return out, nil
}

// ClearCache discards every retained year, freeing memory in long-running
// hosts that have moved past the years they checked.
func (f *FastChecker) ClearCache() {
	f.mu.Lock()
	f.byYear = make(map[int]map[calendar.Date]Info)
	f.mu.Unlock()
}
