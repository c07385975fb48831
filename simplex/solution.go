package simplex

import "gonum.org/v1/gonum/mat"

// extractSolution reads the structural-variable values and the
// objective value out of a terminal optimal tableau.
//
// A structural variable v < n takes the rhs of the row it is basic in;
// every non-basic variable sits at its lower bound, 0. Slack variables
// (indices ≥ n) are dropped. The objective is t[0,rhs]: row 0 starts as
// -c with rhs 0, and each subtractive pivot adds the entering
// variable's contribution, so the rhs accumulates +c·x.
func extractSolution(t *mat.Dense, basis []int, n, cols int) (sol []float64, objective float64) {
	sol = make([]float64, n)
	for i, v := range basis {
		if v < n {
			sol[v] = t.At(i+1, cols)
		}
	}

	return sol, t.At(0, cols)
}
