// Package tripath provides tunable options and error definitions
// for the minimum triangle path engine.
package tripath

import "errors"

// Sentinel errors for triangle path execution.
var (
	// ErrRaggedRow is returned when row i does not hold exactly i+1 values.
	// The wrapping error identifies the row and the want/got lengths; the
	// engine never truncates or pads rows to recover.
	ErrRaggedRow = errors.New("tripath: row length must equal row index plus one")
)

// Option configures the engine via functional arguments.
type Option func(*Options)

// Options holds observer callbacks invoked during the DP fill and the
// path reconstruction. All hooks are optional, no-op by default, and
// purely informational: they can never alter the computed result.
type Options struct {
	// OnRow fires after the DP row for triangle row i is computed,
	// from the bottom row upward. dp is the freshly filled row; the
	// slice is live engine state and must not be retained or mutated.
	OnRow func(i int, dp []int64)

	// OnStep fires for each element appended during reconstruction,
	// from the apex downward.
	OnStep func(row, col int, value int64)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnRow:  func(int, []int64) {},
		OnStep: func(int, int, int64) {},
	}
}

// WithOnRow registers a callback to run after each DP row is filled.
func WithOnRow(fn func(i int, dp []int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRow = fn
		}
	}
}

// WithOnStep registers a callback to run per reconstructed path element.
func WithOnStep(fn func(row, col int, value int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result holds the outcome of a minimum path computation:
//   - Sum:  the minimal top-to-bottom path sum, equal to the sum of Path.
//   - Path: the values along one minimal path, apex first.
//   - Cols: the column chosen at each row; consecutive entries differ
//     by 0 or +1, and Cols[0] == 0.
type Result struct {
	Sum  int64
	Path []int64
	Cols []int
}
