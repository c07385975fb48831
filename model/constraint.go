package model

import (
	"fmt"

	"github.com/optline/linprog/simplex"
)

// Constraint relates a linear expression to a right-hand side. It
// snapshots the expression at construction time, so the builder may
// keep being mutated afterwards without affecting the constraint.
type Constraint struct {
	expr  *Expression
	sense simplex.Sense
	rhs   float64
}

// LessEq builds the constraint e ≤ rhs.
func (e *Expression) LessEq(rhs float64) Constraint {
	return Constraint{expr: e.Clone(), sense: simplex.SenseLE, rhs: rhs}
}

// GreaterEq builds the constraint e ≥ rhs.
func (e *Expression) GreaterEq(rhs float64) Constraint {
	return Constraint{expr: e.Clone(), sense: simplex.SenseGE, rhs: rhs}
}

// Equal builds the constraint e = rhs. The engine treats equality rows
// as ≤ (simplex.SenseEQ); add the mirrored ≥ row when true equality is
// required.
func (e *Expression) Equal(rhs float64) Constraint {
	return Constraint{expr: e.Clone(), sense: simplex.SenseEQ, rhs: rhs}
}

// Sense returns the constraint's relation.
func (c Constraint) Sense() simplex.Sense { return c.sense }

// RHS returns the constraint's right-hand side.
func (c Constraint) RHS() float64 { return c.rhs }

// String renders the constraint for diagnostics.
func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %g", c.expr, c.sense, c.rhs)
}
