// Package tripath computes the minimum top-to-bottom path sum through a
// numeric triangle and reconstructs one optimal path.
//
// 🚀 What is the triangle path problem?
//
//	Starting at the apex, each step descends to the adjacent column or
//	the next one over. The goal is the cheapest root-to-leaf descent.
//	The same DP shape appears in:
//	  • Cost-minimal routing over layered decision stages
//	  • Cheapest downhill line through a terrain cross-section
//	  • Minimal-penalty schedules over branching day plans
//
// ✨ Key features:
//   - exact bottom-up dynamic programming, answer in dp[0][0]
//   - witness path with one documented tie-break: prefer the lower column
//   - strict shape validation: a ragged row is a sentinel error
//   - optional observer hooks (OnRow, OnStep) for progress narration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/covtri/tripath"
//
//	tri := [][]int64{{2}, {3, 4}, {6, 5, 7}, {4, 1, 8, 3}}
//	res, err := tripath.MinPathSum(tri)
//	if err != nil {
//	  // handle tripath.ErrRaggedRow
//	}
//	fmt.Println(res.Sum, res.Path) // 11 [2 3 5 1]
//
// Performance:
//
//   - Time:   O(r²)
//   - Memory: O(r²)
//
// See examples in example_test.go and random fixtures in package trigen.
package tripath
