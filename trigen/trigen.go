package trigen

import (
	"errors"
	"fmt"
)

// Sentinel errors for fixture generation.
var (
	// ErrRowCount indicates a negative requested row count.
	ErrRowCount = errors.New("trigen: row count must be non-negative")
	// ErrValueRange indicates minVal > maxVal.
	ErrValueRange = errors.New("trigen: min value exceeds max value")
)

// Triangle generates a jagged triangle of the given number of rows with
// values drawn uniformly from [minVal, maxVal]. Row i holds exactly i+1
// values, so the output is always a valid tripath input.
//
// Generation is deterministic: the same (rows, minVal, maxVal, seed)
// always produces the same triangle, and seed==0 maps to a fixed default
// seed. rows==0 yields an empty triangle.
//
// Complexity: O(rows²) time and memory.
func Triangle(rows int, minVal, maxVal int64, seed int64) ([][]int64, error) {
	if rows < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, rows)
	}
	if minVal > maxVal {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrValueRange, minVal, maxVal)
	}

	rng := rngFromSeed(seed)
	span := maxVal - minVal + 1

	tri := make([][]int64, rows)
	for i := range tri {
		row := make([]int64, i+1)
		for j := range row {
			row[j] = minVal + rng.Int63n(span)
		}
		tri[i] = row
	}
	return tri, nil
}

// Positive generates a triangle of strictly positive values in [1, maxVal].
func Positive(rows int, maxVal int64, seed int64) ([][]int64, error) {
	return Triangle(rows, 1, maxVal, seed)
}

// Negative generates a triangle of strictly negative values in [minVal, -1].
func Negative(rows int, minVal int64, seed int64) ([][]int64, error) {
	return Triangle(rows, minVal, -1, seed)
}

// Mixed generates a triangle of mixed-sign values in [-15, 15].
func Mixed(rows int, seed int64) ([][]int64, error) {
	return Triangle(rows, -15, 15, seed)
}
