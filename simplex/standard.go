package simplex

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sense is the relation of one constraint row to its right-hand side.
type Sense int

const (
	// SenseLE — row ≤ rhs. The engine's native form.
	SenseLE Sense = iota

	// SenseGE — row ≥ rhs. Standardize negates the row and rhs.
	SenseGE

	// SenseEQ — row = rhs. Passed through unchanged and therefore
	// treated as ≤ by the engine. This matches the classic textbook
	// shortcut and is only exact when the caller also supplies the
	// mirrored ≥ row; callers that do not should expect a relaxed
	// optimum. A Phase-1 / artificial-variable treatment is out of
	// scope for this solver.
	SenseEQ
)

// String returns the operator token for the sense.
func (s Sense) String() string {
	switch s {
	case SenseLE:
		return "<="
	case SenseGE:
		return ">="
	case SenseEQ:
		return "="
	default:
		return "?"
	}
}

// ParseSense maps an operator token ("<=", ">=" or "=") to its Sense.
// Surrounding whitespace is ignored. Anything else returns
// ErrInvalidSense.
func ParseSense(tok string) (Sense, error) {
	switch strings.TrimSpace(tok) {
	case "<=":
		return SenseLE, nil
	case ">=":
		return SenseGE, nil
	case "=":
		return SenseEQ, nil
	default:
		return 0, ErrInvalidSense
	}
}

// Standardize rewrites the constraint system (A, b, senses) into the
// engine's ≤ form and returns fresh copies; the inputs are not
// mutated.
//
//   - ≤ rows are copied unchanged.
//   - ≥ rows have both the coefficient row and the rhs negated.
//   - = rows pass through unchanged (see SenseEQ for the caveat).
//
// Errors: ErrDimensionMismatch when len(b) or len(senses) differs from
// the row count of A; ErrInvalidSense for a sense value outside the
// three recognized ones.
func Standardize(A *mat.Dense, b []float64, senses []Sense) (*mat.Dense, []float64, error) {
	if A == nil {
		return nil, nil, ErrEmptyProblem
	}
	m, n := A.Dims()
	if len(b) != m || len(senses) != m {
		return nil, nil, ErrDimensionMismatch
	}

	out := mat.DenseCopyOf(A)
	rhs := make([]float64, m)
	copy(rhs, b)

	for i, s := range senses {
		switch s {
		case SenseLE, SenseEQ:
			// already in (or treated as) ≤ form
		case SenseGE:
			row := out.RawRowView(i)
			for j := 0; j < n; j++ {
				row[j] = -row[j]
			}
			rhs[i] = -rhs[i]
		default:
			return nil, nil, ErrInvalidSense
		}
	}

	return out, rhs, nil
}
