// Package simplex: sentinel error set. All user-triggered failures are
// returned as these sentinels (possibly wrapped) and matched with
// errors.Is; the solver never panics on caller input.
package simplex

import "errors"

var (
	// ErrInvalidSense is returned by Standardize when a constraint
	// sense is not one of ≤, ≥ or =.
	ErrInvalidSense = errors.New("simplex: unrecognized constraint sense")

	// ErrDimensionMismatch is returned when the lengths of c and b do
	// not agree with the shape of A, or when a senses slice does not
	// cover every row.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch between c, A and b")

	// ErrEmptyProblem is returned when the problem has no constraint
	// matrix or no objective coefficients.
	ErrEmptyProblem = errors.New("simplex: empty problem")

	// ErrBadOptions is returned for a negative iteration cap or a
	// negative or non-finite epsilon.
	ErrBadOptions = errors.New("simplex: invalid options")
)
