// Package covtri is a compact toolbox for two classic covering / path
// optimization problems over plain integer data.
//
// 🚀 What is covtri?
//
//	A small, deterministic, pure-Go library that brings together:
//		• cover/   — minimum point cover: the fewest points stabbing every segment
//		• tripath/ — minimum triangle path: cheapest top-to-bottom descent + witness path
//		• trigen/  — reproducible random triangle fixtures for tests & benchmarks
//		• segio/   — reader for the count-prefixed two-column segment format
//		• obslog/  — optional observer that narrates engine progress via log/slog
//
// ✨ Why choose covtri?
//
//   - Deterministic – stable sorts and documented tie-breaks; same input, same output
//   - Honest APIs – validation failures are sentinel errors in the signature, never panics
//   - Pure computation – engines are stateless, log-free, and safe to call concurrently
//   - Extensible – attach hooks (OnSegment, OnPoint, OnRow…) for custom narration
//
// Quick ASCII example:
//
//	segments            triangle
//	1───3                  2
//	  2────5              3 4
//	       5─6           6 5 7
//	    4──────7        4 1 8 3
//
//	two points {3, 6} stab every segment; the cheapest descent is 2→3→5→1 = 11.
//
// Engines consume in-memory slices and return immutable result values; file
// parsing, logging, and random generation live in their own packages and are
// never required for correctness.
//
//	go get github.com/katalvlaran/covtri
package covtri
