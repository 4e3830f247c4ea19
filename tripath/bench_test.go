package tripath_test

import (
	"testing"

	"github.com/katalvlaran/covtri/trigen"
	"github.com/katalvlaran/covtri/tripath"
)

// benchmarkTriPath runs MinPathSum on a deterministic random triangle
// with the given number of rows. It resets the timer after setup and
// fails on unexpected errors.
func benchmarkTriPath(b *testing.B, rows int) {
	tri, err := trigen.Mixed(rows, 42)
	if err != nil {
		b.Fatalf("fixture generation failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = tripath.MinPathSum(tri); err != nil {
			b.Fatalf("MinPathSum failed: %v", err)
		}
	}
}

// BenchmarkMinPathSum_Small benchmarks a 50-row triangle.
func BenchmarkMinPathSum_Small(b *testing.B) {
	benchmarkTriPath(b, 50)
}

// BenchmarkMinPathSum_Medium benchmarks a 500-row triangle.
func BenchmarkMinPathSum_Medium(b *testing.B) {
	benchmarkTriPath(b, 500)
}

// BenchmarkMinPathSum_Large benchmarks a 2000-row triangle.
func BenchmarkMinPathSum_Large(b *testing.B) {
	benchmarkTriPath(b, 2000)
}
