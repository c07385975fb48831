// Package simplex: problem, option and result types for the solver.
package simplex

import "gonum.org/v1/gonum/mat"

// Defaults applied by DefaultOptions and by Solve when opts is nil.
const (
	// DefaultMaxIterations caps the number of pivots per solve.
	DefaultMaxIterations = 1000

	// DefaultEpsilon is the numerical tolerance for the sign tests in
	// the entering and leaving rules. It guards against floating-point
	// noise; it is not a modeling tolerance.
	DefaultEpsilon = 1e-10
)

// Status is the terminal outcome of a solve.
type Status int

const (
	// StatusOptimal — every reduced cost is nonnegative within epsilon;
	// Result carries the solution and objective value.
	StatusOptimal Status = iota

	// StatusUnbounded — an improving column has no positive entry, so
	// the objective grows without bound along it.
	StatusUnbounded

	// StatusIterationLimit — the pivot cap was reached before
	// termination; the partial tableau is discarded.
	StatusIterationLimit
)

// String reports the wire-level status name used by CLI and API
// wrappers: "optimal", "unbounded" or "iteration_limit".
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusIterationLimit:
		return "iteration_limit"
	default:
		return "unknown"
	}
}

// Problem is the immutable input triple (c, A, b):
//
//	maximize c·x subject to A·x ≤ b, x ≥ 0.
//
// Every row must already be in ≤ sense (see Standardize) and b should
// be nonnegative so that the all-slack basis is feasible. Solve reads
// the problem once to build its tableau and never mutates it.
type Problem struct {
	// C holds the objective coefficients, one per structural variable.
	C []float64

	// A is the m×n constraint matrix.
	A *mat.Dense

	// B holds the m right-hand sides.
	B []float64
}

// Result is the outcome of one Solve call.
//
// Solution and Objective are meaningful only when Status is
// StatusOptimal; Solution is indexed by structural variable position
// and excludes slack variables. Iterations counts completed pivots and
// is reported for every status.
type Result struct {
	Status     Status
	Solution   []float64
	Objective  float64
	Iterations int
}

// Options configures one solve. The zero value is NOT a valid
// configuration; start from DefaultOptions and override fields.
//
//   - MaxIterations — pivot cap; 0 makes Solve return
//     StatusIterationLimit immediately, which is occasionally useful
//     as a dry-run feasibility probe of the inputs.
//   - Epsilon — sign-test tolerance, applied consistently at both the
//     entering and the leaving decision.
//   - Verbose — log every pivot (entering/leaving index, objective)
//     through the shared logger at debug level.
type Options struct {
	MaxIterations int
	Epsilon       float64
	Verbose       bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
	}
}
