package tripath

import "fmt"

// MinPathSum computes the minimum top-to-bottom path sum of a triangle
// and reconstructs one such path.
//
// The triangle is a jagged slice where row i holds exactly i+1 values.
// A path starts at the apex and, from row i column j, descends to row
// i+1 column j or j+1. The returned Result carries the minimal sum, the
// values along one minimal path, and the chosen columns.
//
// Error Conditions:
//   - ErrRaggedRow : if any row i past the first does not hold exactly
//     i+1 values (wrapped with the row index and want/got lengths).
//
// Steps:
//  1. Apply functional Options (observer hooks are no-ops by default).
//  2. Zero rows, or an empty first row, is a defined terminal case:
//     Sum=0, Path=[]. Any other shape violation is rejected before any
//     arithmetic.
//  3. Allocate a DP table shaped like the triangle. The bottom DP row
//     copies the bottom triangle row verbatim.
//  4. Fill upward: dp[i][j] = t[i][j] + min(dp[i+1][j], dp[i+1][j+1]).
//     The answer sum is dp[0][0].
//  5. Reconstruct top-down by a fresh argmin per row: from column j,
//     descend to column j when dp[i][j] <= dp[i][j+1], else to j+1.
//     Ties therefore prefer the lower column index; this is the single
//     documented tie-break rule and makes the witness path fully
//     deterministic.
//
// All arithmetic is int64; inputs are assumed small enough not to
// overflow. The input triangle is never mutated.
//
// Complexity: O(r²) time and memory, where r is the number of rows.
func MinPathSum(triangle [][]int64, opts ...Option) (*Result, error) {
	// 1. Build options and install any caller hooks.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Degenerate-but-well-formed input: nothing to descend through.
	n := len(triangle)
	if n == 0 || len(triangle[0]) == 0 {
		return &Result{Sum: 0, Path: []int64{}, Cols: []int{}}, nil
	}

	// Validate the jagged shape before touching any values.
	for i, row := range triangle {
		if len(row) != i+1 {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRow, i, len(row), i+1)
		}
	}

	// 3. DP table shaped like the triangle; base case is the bottom row.
	dp := make([][]int64, n)
	for i := range dp {
		dp[i] = make([]int64, i+1)
	}
	copy(dp[n-1], triangle[n-1])
	o.OnRow(n-1, dp[n-1])

	// 4. Fill upward; each cell takes the cheaper of its two children.
	for i := n - 2; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			down, diag := dp[i+1][j], dp[i+1][j+1]
			if diag < down {
				down = diag
			}
			dp[i][j] = triangle[i][j] + down
		}
		o.OnRow(i, dp[i])
	}

	// 5. Walk the argmin from the apex, preferring the lower column on ties.
	path := make([]int64, 0, n)
	cols := make([]int, 0, n)
	col := 0
	path = append(path, triangle[0][0])
	cols = append(cols, 0)
	o.OnStep(0, 0, triangle[0][0])
	for i := 1; i < n; i++ {
		if dp[i][col+1] < dp[i][col] {
			col++
		}
		path = append(path, triangle[i][col])
		cols = append(cols, col)
		o.OnStep(i, col, triangle[i][col])
	}

	return &Result{Sum: dp[0][0], Path: path, Cols: cols}, nil
}
