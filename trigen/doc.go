// Package trigen generates reproducible random triangles for exploratory
// testing and benchmarking of package tripath.
//
// Every generator is deterministic: the same arguments and seed always
// produce the same triangle, and seed==0 maps to a fixed default seed so
// “I don't care” callers still get reproducible fixtures. No time-based
// randomness is used anywhere.
//
// ⚙️ Usage:
//
//	tri, err := trigen.Mixed(8, 42)   // 8 rows, values in [-15, 15]
//	tri, err = trigen.Positive(8, 20, 42)
//	tri, err = trigen.Triangle(8, -10, 10, 42)
//
// Generated triangles always satisfy the tripath shape invariant
// (row i holds i+1 values); they are fixtures, not part of any engine
// contract.
package trigen
