package diffusion_test

import (
	"testing"

	"github.com/katalvlaran/fokker/diffusion"
)

// BenchmarkNew measures solver construction at the reference resolution:
// grid, differentiation matrices, and the LU factorization.
func BenchmarkNew(b *testing.B) {
	cfg := diffusion.DefaultConfig()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := diffusion.New(cfg); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// benchmarkStep measures the per-step cost at a given resolution, capture
// disarmed, so it isolates the rhs assembly and the factorized solve.
func benchmarkStep(b *testing.B, points int) {
	s, err := diffusion.New(diffusion.Config{Points: points, Dt: 0.01})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Step(); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkStep_Reference benchmarks the published 24-point resolution.
func BenchmarkStep_Reference(b *testing.B) { benchmarkStep(b, 24) }

// BenchmarkStep_Fine benchmarks a 96-point grid.
func BenchmarkStep_Fine(b *testing.B) { benchmarkStep(b, 96) }
