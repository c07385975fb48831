package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/optline/linprog/logger"
)

// Solve runs the primal tableau simplex on p and returns a terminal
// Result. opts==nil means DefaultOptions().
//
// Algorithm outline:
//  1. Build the initial tableau [ -c 0 | 0 ; A I | b ] with the
//     all-slack basis (newTableau).
//  2. Entering column (Bland's rule): the lowest column index whose
//     objective-row entry is < -eps. None ⇒ StatusOptimal.
//  3. Leaving row (minimum-ratio test): among rows with a column
//     entry > eps, the one minimizing rhs/entry; ties go to the
//     lowest row index. None ⇒ StatusUnbounded.
//  4. Pivot: normalize the leaving row, eliminate the entering column
//     everywhere else, record the basis swap. Back to 2.
//
// The loop runs at most opts.MaxIterations pivots; hitting the cap
// yields StatusIterationLimit with the iteration count only (the
// partial tableau is discarded). Bland's lowest-index rule costs more
// pivots than a most-negative rule but provably never cycles, so on a
// correctly stated problem the cap should only trigger when set low
// on purpose.
//
// The tableau and basis are locals of this call: Solve never mutates
// p and is safe to call concurrently on separate problems.
//
// Errors: ErrBadOptions, ErrEmptyProblem, ErrDimensionMismatch. A
// malformed problem is a construction-time failure, never a Status.
func Solve(p Problem, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(p, o); err != nil {
		return Result{}, err
	}

	m, n := p.A.Dims()
	cols := n + m
	t, basis := newTableau(p)
	log := logger.Logger()

	for iter := 0; iter < o.MaxIterations; iter++ {
		entering := enteringColumn(t, cols, o.Epsilon)
		if entering < 0 {
			sol, obj := extractSolution(t, basis, n, cols)
			return Result{
				Status:     StatusOptimal,
				Solution:   sol,
				Objective:  obj,
				Iterations: iter,
			}, nil
		}

		leaving := leavingRow(t, entering, m, cols, o.Epsilon)
		if leaving < 0 {
			return Result{Status: StatusUnbounded, Iterations: iter}, nil
		}

		if o.Verbose {
			log.Debug().
				Int("iteration", iter).
				Int("entering", entering).
				Int("leaving", basis[leaving-1]).
				Float64("objective", t.At(0, cols)).
				Msg("pivot")
		}

		pivot(t, leaving, entering)
		basis[leaving-1] = entering
	}

	return Result{Status: StatusIterationLimit, Iterations: o.MaxIterations}, nil
}

// validate rejects malformed options and problems before any
// allocation. Epsilon may be zero (exact sign tests) but not negative
// or non-finite.
func validate(p Problem, o Options) error {
	if o.MaxIterations < 0 || o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return ErrBadOptions
	}
	if p.A == nil || len(p.C) == 0 {
		return ErrEmptyProblem
	}
	m, n := p.A.Dims()
	if len(p.C) != n || len(p.B) != m {
		return ErrDimensionMismatch
	}

	return nil
}

// enteringColumn scans the objective row left to right and returns the
// first column index with an entry below -eps, or -1 when the tableau
// is optimal. Lowest-index-first is Bland's anti-cycling rule; a
// most-negative scan would converge in fewer pivots but can cycle on
// degenerate problems.
func enteringColumn(t *mat.Dense, cols int, eps float64) int {
	obj := t.RawRowView(0)
	for j := 0; j < cols; j++ {
		if obj[j] < -eps {
			return j
		}
	}

	return -1
}

// leavingRow runs the minimum-ratio test on column j over constraint
// rows 1..m and returns the tableau row index of the leaving variable,
// or -1 when no entry exceeds eps (the problem is unbounded along j).
// A strict < comparison keeps the lowest row index on ties, which
// pins down the pivot sequence for reproducibility.
func leavingRow(t *mat.Dense, j, m, cols int, eps float64) int {
	best := math.Inf(1)
	bestRow := -1
	for i := 1; i <= m; i++ {
		entry := t.At(i, j)
		if entry <= eps {
			continue
		}
		ratio := t.At(i, cols) / entry
		if ratio < best {
			best = ratio
			bestRow = i
		}
	}

	return bestRow
}

// pivot performs the row reduction that brings column j into the basis
// at row r: the pivot row is scaled so t[r,j]==1, then column j is
// eliminated from every other row (objective row included), restoring
// the basic-column invariant that each basic column is a unit vector.
func pivot(t *mat.Dense, r, j int) {
	rows, _ := t.Dims()
	pr := t.RawRowView(r)
	pe := pr[j]
	for k := range pr {
		pr[k] /= pe
	}
	for i := 0; i < rows; i++ {
		if i == r {
			continue
		}
		row := t.RawRowView(i)
		factor := row[j]
		if factor == 0 {
			continue
		}
		for k := range row {
			row[k] -= factor * pr[k]
		}
	}
}
