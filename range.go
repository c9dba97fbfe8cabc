package kairos

import "github.com/kairos-go/kairos/business"

// Range is the half-open-or-closed interval of spec.md §4.11: a start
// and end Instant in a chosen Unit, walked by a positive integer step.
type Range struct {
	start  Instant
	end    Instant
	unit   Unit
	step   int
	closed bool // true: end inclusive; false: end exclusive
}

// NewRange validates and constructs a Range. step must be a positive
// integer; closed chooses whether end is included in iteration/contains
// checks.
func NewRange(start, end Instant, unit string, step int, closed bool) (Range, error) {
	if step <= 0 {
		return Range{}, newError(KindInvalidConfiguration, "range step must be a positive integer")
	}
	if !start.valid || !end.valid {
		return Range{}, newError(KindInvalidDate, "range endpoints must be valid instants")
	}
	return Range{start: start, end: end, unit: normalizeUnit(unit), step: step, closed: closed}, nil
}

// Start and End return the range's endpoints.
func (r Range) Start() Instant { return r.start }
func (r Range) End() Instant   { return r.end }

// Contains reports whether i falls within the range, respecting the
// closed/open end convention.
func (r Range) Contains(i Instant) bool {
	if !i.valid {
		return false
	}
	if i.IsBefore(r.start) {
		return false
	}
	if r.closed {
		return !i.IsAfter(r.end)
	}
	return i.IsBefore(r.end)
}

// Overlaps reports whether r and other share any instant.
func (r Range) Overlaps(other Range) bool {
	aEnd, bEnd := r.end, other.end
	endOK := aEnd.IsAfter(other.start) || (r.closed && aEnd.Equals(other.start))
	startOK := other.end.IsAfter(r.start) || (other.closed && bEnd.Equals(r.start))
	return endOK && startOK
}

// Intersect returns the overlapping sub-range of r and other, and false
// if they do not overlap.
func (r Range) Intersect(other Range) (Range, bool) {
	if !r.Overlaps(other) {
		return Range{}, false
	}
	start := r.start
	if other.start.IsAfter(start) {
		start = other.start
	}
	end := r.end
	closed := r.closed
	if other.end.IsBefore(end) {
		end = other.end
		closed = other.closed
	} else if other.end.Equals(end) {
		closed = r.closed && other.closed
	}
	return Range{start: start, end: end, unit: r.unit, step: r.step, closed: closed}, true
}

// Union returns the smallest range spanning both r and other. Callers
// should confirm Overlaps (or adjacency) first if a non-overlapping
// union would be semantically meaningless for their use case.
func (r Range) Union(other Range) Range {
	start := r.start
	if other.start.IsBefore(start) {
		start = other.start
	}
	end := r.end
	closed := r.closed
	if other.end.IsAfter(end) {
		end = other.end
		closed = other.closed
	} else if other.end.Equals(end) {
		closed = r.closed || other.closed
	}
	return Range{start: start, end: end, unit: r.unit, step: r.step, closed: closed}
}

// Iterate calls fn for every step'th Instant from start up to (and,
// if closed, including) end, stopping early if fn returns false. This
// runs in O(1) memory per spec.md §5's "lazy sequences" requirement.
func (r Range) Iterate(fn func(Instant) bool) {
	current := r.start
	for {
		if r.closed {
			if current.IsAfter(r.end) {
				return
			}
		} else if !current.IsBefore(r.end) {
			return
		}
		if !fn(current) {
			return
		}
		current = current.Add(r.step, string(r.unit))
		if !current.valid {
			return
		}
	}
}

// Chunk splits the range into n contiguous sub-ranges of roughly equal
// instant-count, preserving r's unit/step/closedness on every chunk
// except that only the final chunk keeps r's own closed flag (interior
// chunk boundaries are always half-open so instants aren't counted
// twice). n must be a positive integer.
func (r Range) Chunk(n int) ([]Range, error) {
	if n <= 0 {
		return nil, newError(KindInvalidChunkSize, "chunk size must be a positive integer")
	}
	var all []Instant
	r.Iterate(func(i Instant) bool {
		all = append(all, i)
		return true
	})
	if len(all) == 0 {
		return nil, nil
	}

	chunkSize := (len(all) + n - 1) / n
	if chunkSize < 1 {
		chunkSize = 1
	}
	var chunks []Range
	for start := 0; start < len(all); start += chunkSize {
		end := start + chunkSize
		if end > len(all) {
			end = len(all)
		}
		isLast := end == len(all)
		chunkEnd := all[end-1]
		closed := true
		if !isLast {
			// Half-open against the first instant of the next chunk.
			chunkEnd = all[end]
			closed = false
		} else if r.closed {
			closed = true
		} else {
			closed = false
		}
		chunks = append(chunks, Range{start: all[start], end: chunkEnd, unit: r.unit, step: r.step, closed: closed})
	}
	return chunks, nil
}

// Weekdays returns every Instant in the range whose Weekday() is in
// days.
func (r Range) Weekdays(days ...int) []Instant {
	want := make(map[int]bool, len(days))
	for _, d := range days {
		want[d] = true
	}
	var out []Instant
	r.Iterate(func(i Instant) bool {
		if want[i.Weekday()] {
			out = append(out, i)
		}
		return true
	})
	return out
}

// BusinessDays returns every Instant in the range that cal considers a
// business day.
func (r Range) BusinessDays(cal *business.Calendar) ([]Instant, error) {
	var out []Instant
	var firstErr error
	r.Iterate(func(i Instant) bool {
		ok, err := cal.IsBusinessDay(i.Date())
		if err != nil {
			firstErr = err
			return false
		}
		if ok {
			out = append(out, i)
		}
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
