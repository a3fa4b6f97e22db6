package square_test

import (
	"testing"

	"github.com/katalvlaran/magicsquare/square"
)

// benchmarkGenerate runs Generate(n) repeatedly, failing on unexpected
// errors.
func benchmarkGenerate(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := square.Generate(n); err != nil {
			b.Fatalf("Generate(%d) failed: %v", n, err)
		}
	}
}

// BenchmarkGenerate_Order4 benchmarks the minimal doubly-even order.
func BenchmarkGenerate_Order4(b *testing.B) {
	benchmarkGenerate(b, 4)
}

// BenchmarkGenerate_Order64 benchmarks a mid-size 64×64 construction.
func BenchmarkGenerate_Order64(b *testing.B) {
	benchmarkGenerate(b, 64)
}

// BenchmarkGenerate_Order512 benchmarks a large 512×512 construction to
// expose the O(n²) fill cost.
func BenchmarkGenerate_Order512(b *testing.B) {
	benchmarkGenerate(b, 512)
}

// BenchmarkValidate_Order64 benchmarks validation separately from
// generation.
func BenchmarkValidate_Order64(b *testing.B) {
	g, err := square.Generate(64)
	if err != nil {
		b.Fatalf("Generate(64) failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := square.Validate(g); err != nil || !ok {
			b.Fatalf("Validate = (%v, %v); want (true, nil)", ok, err)
		}
	}
}

// BenchmarkWidth benchmarks the capacity recommendation on a large count.
func BenchmarkWidth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := square.Width(1_000_003); err != nil {
			b.Fatalf("Width failed: %v", err)
		}
	}
}
