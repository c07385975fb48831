package simplex_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/optline/linprog/simplex"
)

// randomProblem builds a dense feasible maximize problem with n
// variables and m constraints: coefficients in [-1,1), rhs in [1,2) so
// the all-slack basis is strictly feasible. The seed is fixed for
// reproducible benchmarks.
func randomProblem(n, m int, seed int64) simplex.Problem {
	rng := rand.New(rand.NewSource(seed))

	c := make([]float64, n)
	for j := range c {
		c[j] = rng.Float64()
	}
	a := make([]float64, m*n)
	for i := range a {
		a[i] = 2*rng.Float64() - 1
	}
	b := make([]float64, m)
	for i := range b {
		b[i] = 1 + rng.Float64()
	}

	return simplex.Problem{C: c, A: mat.NewDense(m, n, a), B: b}
}

// benchmarkSolve runs Solve on one fixed random problem of the given
// shape, failing on construction errors.
func benchmarkSolve(b *testing.B, n, m int) {
	p := randomProblem(n, m, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(p, nil); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 10×10 problem.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 10, 10) }

// BenchmarkSolve_Medium benchmarks a 50×50 problem.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 50, 50) }

// BenchmarkSolve_Wide benchmarks 200 variables under 20 constraints.
func BenchmarkSolve_Wide(b *testing.B) { benchmarkSolve(b, 200, 20) }

// BenchmarkSolve_Tall benchmarks 20 variables under 200 constraints.
func BenchmarkSolve_Tall(b *testing.B) { benchmarkSolve(b, 20, 200) }
