package twogen_test

import (
	"testing"

	"github.com/katalvlaran/clawmath/twogen"
)

func benchmarkSolve(b *testing.B, p twogen.Problem) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := twogen.Solve(p); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_NonDegenerate measures the Cramer path on an offset target.
func BenchmarkSolve_NonDegenerate(b *testing.B) {
	benchmarkSolve(b, twogen.Problem{
		Generators: pair(v(26, 66), v(67, 21)),
		Target:     v(10000000012748, 10000000012176),
		Costs:      clawCosts,
	})
}

// BenchmarkSolve_Degenerate measures the Euclid + interval path.
func BenchmarkSolve_Degenerate(b *testing.B) {
	benchmarkSolve(b, twogen.Problem{
		Generators: pair(v(34, 34), v(55, 55)),
		Target:     v(10000000000000, 10000000000000),
		Costs:      clawCosts,
		Bound:      twogen.Limit(1 << 40),
	})
}
