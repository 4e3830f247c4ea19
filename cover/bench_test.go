package cover_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/covtri/cover"
)

// benchmarkCover runs MinPointCover on n pseudo-random segments.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkCover(b *testing.B, n int) {
	// Deterministic fixture: same n always produces the same segments.
	rng := rand.New(rand.NewSource(42))
	segs := make([]cover.Segment, n)
	for i := range segs {
		start := rng.Int63n(1_000_000)
		segs[i] = cover.Segment{Start: start, End: start + rng.Int63n(1_000)}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := cover.MinPointCover(segs); err != nil {
			b.Fatalf("MinPointCover failed: %v", err)
		}
	}
}

// BenchmarkMinPointCover_Small benchmarks 100 segments.
func BenchmarkMinPointCover_Small(b *testing.B) {
	benchmarkCover(b, 100)
}

// BenchmarkMinPointCover_Medium benchmarks 10_000 segments.
func BenchmarkMinPointCover_Medium(b *testing.B) {
	benchmarkCover(b, 10_000)
}

// BenchmarkMinPointCover_Large benchmarks 100_000 segments.
func BenchmarkMinPointCover_Large(b *testing.B) {
	benchmarkCover(b, 100_000)
}
