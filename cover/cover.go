package cover

import (
	"fmt"
	"sort"
)

// MinPointCover computes the minimum set of points covering all segments.
//
// A point p covers segment (s, e) when s <= p <= e. The returned Result
// carries the minimal count together with one witness set of points; the
// greedy choice of the earliest right endpoint is optimal by the standard
// interval-scheduling exchange argument.
//
// Error Conditions:
//   - ErrSegmentOrder : if any segment has Start > End (wrapped with the
//     offending index and values).
//
// Steps:
//  1. Apply functional Options (observer hooks are no-ops by default).
//  2. Empty input is a defined terminal case: Count=0, Points=[].
//  3. Validate every segment before any work; reject Start > End rather
//     than swapping, so caller bugs are surfaced instead of masked.
//  4. Copy the input and sort the copy ascending by End
//     (sort.SliceStable keeps the caller's relative order on equal ends,
//     making the witness set deterministic). Start is not a sort key.
//  5. Scan left to right. Whenever the most recent point lies left of the
//     current segment's Start (or no point exists yet), select the
//     segment's End as a new point; otherwise the segment is already
//     covered and nothing is added.
//
// The input slice is never mutated. Deterministic: identical input order
// yields an identical Points sequence.
//
// Complexity: O(n log n) time for the sort plus O(n) scan, O(n) memory.
func MinPointCover(segments []Segment, opts ...Option) (*Result, error) {
	// 1. Build options and install any caller hooks.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Zero segments need zero points; not an error.
	n := len(segments)
	if n == 0 {
		return &Result{Count: 0, Points: []int64{}}, nil
	}

	// 3. Validate the structural invariant Start <= End up front.
	for i, s := range segments {
		if s.Start > s.End {
			return nil, fmt.Errorf("%w: segment %d is (%d, %d)", ErrSegmentOrder, i, s.Start, s.End)
		}
	}

	// 4. Sort a copy by right endpoint; leave the caller's slice intact.
	sorted := make([]Segment, n)
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].End < sorted[j].End
	})

	// 5. Greedy scan: reuse the last point while it still lies inside the
	//    current segment, otherwise commit to the segment's right endpoint.
	points := make([]int64, 0, n)
	var (
		last   int64 // most recently selected point; valid only when chosen
		chosen bool  // sentinel for "no point selected yet"
	)
	for i, s := range sorted {
		if !chosen || last < s.Start {
			last = s.End
			chosen = true
			points = append(points, last)
			o.OnPoint(last, len(points))
			o.OnSegment(i, s, false)
			continue
		}
		o.OnSegment(i, s, true)
	}

	return &Result{Count: len(points), Points: points}, nil
}
