// Package monthspec parses month selection strings like "1,3-5,12" into an
// ascending, duplicate-free list of month numbers.
package monthspec

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrorKind identifies which validation rule a selection string violated.
type ErrorKind int

const (
	// ErrFormat means a segment did not match the "N" or "N-M" grammar.
	ErrFormat ErrorKind = iota + 1
	// ErrMonth means a month value was outside 1..12.
	ErrMonth
	// ErrOrder means the first month of a range was not lower than the second.
	ErrOrder
)

// ParseError describes why a month selection string was rejected.
// Segment holds the offending literal for ErrFormat and ErrMonth;
// Start and End hold the range bounds for ErrOrder.
type ParseError struct {
	Kind    ErrorKind
	Segment string
	Start   int
	End     int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrFormat:
		return fmt.Sprintf("illegal list value: %q", e.Segment)
	case ErrMonth:
		return fmt.Sprintf("invalid month: %q", e.Segment)
	case ErrOrder:
		return fmt.Sprintf("first month in range (%d) must be lower than second month (%d)", e.Start, e.End)
	}
	return "invalid month selection"
}

var segmentRe = regexp.MustCompile(`^(\d+)(?:-(\d+))?$`)

// monthRange is half-open and zero-based: [start, end) over month indexes 0..12.
type monthRange struct {
	start int
	end   int
}

// Parse splits spec on commas, validates every segment, and flattens the
// resulting ranges into month numbers. Segments are validated in a fixed
// order (grammar, then month bounds, then range order) so a given bad input
// always produces the same error. Overlapping or redundant ranges collapse:
// "1-5,3-7" yields 1 through 7 with nothing repeated.
func Parse(spec string) ([]int, error) {
	segments := strings.Split(spec, ",")
	ranges := make([]monthRange, 0, len(segments))
	for _, seg := range segments {
		r, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].start != ranges[j].start {
			return ranges[i].start < ranges[j].start
		}
		return ranges[i].end < ranges[j].end
	})

	// Fold over the sorted ranges carrying an offset that marks how far into
	// the 12-month sequence earlier ranges have already consumed. Clipping
	// each range against the offset keeps the output monotonic even when
	// ranges overlap partially, e.g. "1-5,4-10" resumes at month 6.
	months := make([]int, 0, 12)
	offset := 0
	for _, r := range ranges {
		s := max(offset, r.start)
		e := min(12, r.end)
		if s > e {
			continue
		}
		for m := s + 1; m <= e; m++ {
			months = append(months, m)
		}
		offset = e
	}
	return months, nil
}

func parseSegment(seg string) (monthRange, error) {
	m := segmentRe.FindStringSubmatch(seg)
	if m == nil {
		return monthRange{}, &ParseError{Kind: ErrFormat, Segment: seg}
	}

	s, err := strconv.Atoi(m[1])
	if err != nil {
		return monthRange{}, &ParseError{Kind: ErrFormat, Segment: seg}
	}
	if s < 1 || s > 12 {
		return monthRange{}, &ParseError{Kind: ErrMonth, Segment: m[1]}
	}

	if m[2] == "" {
		return monthRange{start: s - 1, end: s}, nil
	}

	e, err := strconv.Atoi(m[2])
	if err != nil {
		return monthRange{}, &ParseError{Kind: ErrFormat, Segment: seg}
	}
	if e < 1 || e > 12 {
		return monthRange{}, &ParseError{Kind: ErrMonth, Segment: m[2]}
	}
	if s >= e {
		return monthRange{}, &ParseError{Kind: ErrOrder, Start: s, End: e}
	}
	return monthRange{start: s - 1, end: e}, nil
}
