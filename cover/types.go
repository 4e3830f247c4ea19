// Package cover provides tunable options and error definitions
// for the minimum interval point cover engine.
package cover

import "errors"

// Sentinel errors for point cover execution.
var (
	// ErrSegmentOrder is returned when a segment has Start > End.
	// The wrapping error identifies the offending index and values;
	// the engine never swaps the endpoints on the caller's behalf.
	ErrSegmentOrder = errors.New("cover: segment start exceeds end")
)

// Segment is a closed integer interval [Start, End].
// A point p covers the segment when Start <= p <= End.
// Inputs must satisfy Start <= End; callers reading unnormalized
// external data should normalize first (see package segio).
type Segment struct {
	Start, End int64
}

// Option configures the engine via functional arguments.
type Option func(*Options)

// Options holds observer callbacks invoked during the greedy scan.
// All hooks are optional, no-op by default, and purely informational:
// they can never alter the computed result.
type Options struct {
	// OnSegment fires once per segment in scan (end-sorted) order.
	// pos is the position within the scan, seg the segment examined,
	// covered reports whether an already-selected point covers it.
	OnSegment func(pos int, seg Segment, covered bool)

	// OnPoint fires when a new cover point is selected.
	// total is the number of points selected so far, p included.
	OnPoint func(p int64, total int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSegment: func(int, Segment, bool) {},
		OnPoint:   func(int64, int) {},
	}
}

// WithOnSegment registers a callback to run for each scanned segment.
func WithOnSegment(fn func(pos int, seg Segment, covered bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSegment = fn
		}
	}
}

// WithOnPoint registers a callback to run for each selected point.
func WithOnPoint(fn func(p int64, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPoint = fn
		}
	}
}

// Result holds the outcome of a point cover computation:
//   - Count:  the minimum number of points needed.
//   - Points: one witness set of cover points, in selection order.
//     Every point is the End of some input segment, and every input
//     segment contains at least one point. Count == len(Points).
type Result struct {
	Count  int
	Points []int64
}
