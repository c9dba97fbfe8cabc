// Package parse implements the strategy-chain date/time parser of
// spec.md §4.6: ISO-8601, RFC-2822, Unix epoch, and flexible-pattern
// strategies tried in order, with round-trip validation and a bounded
// parse cache that never retains invalid results.
//
// Grounded on the teacher's (coredds/GoHoliday) preference for small,
// independently testable pure functions over time.Time values; the
// multi-strategy chain itself is grounded on spec.md §4.6's own
// ordering, since the teacher has no parser of its own (it consumes
// already-parsed time.Time throughout).
package parse

import (
	"strings"

	"github.com/kairos-go/kairos/cache"
)

type cacheKey struct {
	input string
	hint  string
}

var resultCache = cache.MustNew[cacheKey, int64](DefaultCacheCapacity)

// DefaultCacheCapacity bounds the parse cache, per spec.md §4.2/§5's
// "every cache has an explicit capacity" requirement.
const DefaultCacheCapacity = 2048

// strategy tries to parse input, returning the epoch milliseconds and
// whether it matched. localeHint is only consulted by the flexible
// strategy's ambiguous-date resolution.
type strategy func(input, localeHint string) (int64, bool)

var strategies = []strategy{
	parseISO8601,
	parseRFC2822,
	parseUnixEpoch,
	parseFlexible,
}

// Parse tries each strategy in spec.md §4.6's fixed order, returning the
// first match. Results are cached by (trimmed input, localeHint);
// invalid inputs are never cached, per spec.md §4.6's "invalid inputs
// are not cached" rule.
func Parse(input, localeHint string) (int64, bool) {
	trimmed := strings.TrimSpace(input)
	key := cacheKey{input: trimmed, hint: localeHint}
	if ms, ok := resultCache.Get(key); ok {
		return ms, true
	}
	for _, s := range strategies {
		if ms, ok := s(trimmed, localeHint); ok {
			resultCache.Put(key, ms)
			return ms, true
		}
	}
	return 0, false
}
