// Package segio reads segment collections from the count-prefixed
// two-column text format consumed by package cover.
//
// Format:
//
//	4            ← first non-blank line: segment count N
//	4 7          ← N lines of two whitespace-separated integers
//	3 1          ← endpoint order is free; pairs are normalized here
//	2 5
//	5 6          ← blank lines are skipped anywhere
//
// The reader owns normalization (Start <= End); the engine deliberately
// rejects unnormalized pairs so that caller bugs are not masked. Format
// violations surface as sentinel errors identifying the offending line.
package segio
