// Package cover computes the minimum number of points needed to stab
// every segment in a collection, plus one witness set of such points.
//
// 🚀 What is point cover?
//
//	Given closed integer intervals [s, e], find the fewest points such
//	that each interval contains at least one of them. It shows up in:
//	  • Scheduling a minimal set of inspection dates for overlapping windows
//	  • Placing the fewest sensors along a line of coverage ranges
//	  • Hitting every deadline window with the fewest checkpoints
//
// ✨ Key features:
//   - provably minimal count (greedy earliest-right-endpoint is optimal)
//   - deterministic witness set via stable sort + fixed scan order
//   - strict validation: Start > End is a sentinel error, never auto-fixed
//   - optional observer hooks (OnSegment, OnPoint) for progress narration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/covtri/cover"
//
//	segs := []cover.Segment{{4, 7}, {1, 3}, {2, 5}, {5, 6}}
//	res, err := cover.MinPointCover(segs)
//	if err != nil {
//	  // handle cover.ErrSegmentOrder
//	}
//	fmt.Println(res.Count, res.Points) // 2 [3 6]
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n)
//
// See examples in example_test.go.
package cover
