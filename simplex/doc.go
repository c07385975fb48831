// Package simplex solves linear programs of the form
//
//	maximize   c·x
//	subject to A·x ≤ b,  x ≥ 0
//
// with the dense tableau (primal) simplex method.
//
// 🚀 What does it do?
//
//	Starting from the all-slack basis, the engine repeatedly picks an
//	entering column (Bland's rule: the lowest index with a negative
//	reduced cost), a leaving row (minimum-ratio test, ties broken by
//	the lowest row index) and pivots, until the tableau is optimal,
//	the objective is unbounded, or the iteration cap is reached.
//
// ✨ Key properties:
//   - Deterministic: Bland's rule plus a fixed tie-break make every
//     solve reproducible bit for bit.
//   - Cycle-free: Bland's rule guarantees termination even on
//     degenerate problems.
//   - Reentrant: the tableau and basis are locals of Solve, so
//     separate problems may be solved concurrently.
//
// ⚙️ Usage:
//
//	import "github.com/optline/linprog/simplex"
//
//	p := simplex.Problem{
//	  C: []float64{3, 4},
//	  A: mat.NewDense(2, 2, []float64{2, 3, -3, 2}),
//	  B: []float64{6, 3},
//	}
//	res, err := simplex.Solve(p, nil) // nil → DefaultOptions()
//
// The engine expects every constraint already in ≤ sense with a
// nonnegative right-hand side; Standardize flips ≥ rows into that
// form. There is no Phase-1 / Big-M fallback: a negative entry in b
// means the all-slack basis is infeasible and results are undefined.
//
// Complexity per pivot: O(m·(n+m)) time on an (m+1)×(n+m+1) tableau.
//
// A minimizing caller negates its objective coefficients before Solve
// and negates Result.Objective after; the model package does exactly
// that.
package simplex
