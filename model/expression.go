package model

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// dropTolerance: coefficients whose magnitude falls below this after a
// merge are removed from the term map, so that a+b followed by -b
// leaves no stray near-zero column behind.
const dropTolerance = 1e-10

// Expression is a linear expression: a mapping from variable to
// coefficient plus a constant term. The zero of the algebra is
// NewExpression(); all builder methods mutate the receiver and return
// it for chaining. Use Clone before sharing an expression between two
// constraints if it will keep being mutated.
type Expression struct {
	terms    map[Variable]float64
	constant float64
}

// NewExpression returns the empty expression (no terms, constant 0).
func NewExpression() *Expression {
	return &Expression{terms: make(map[Variable]float64)}
}

// Term returns the single-term expression coef·v.
func Term(v Variable, coef float64) *Expression {
	return NewExpression().AddTerm(v, coef)
}

// AddTerm merges coef·v into the expression. Coefficients that cancel
// to (near) zero drop out of the term map.
func (e *Expression) AddTerm(v Variable, coef float64) *Expression {
	c := e.terms[v] + coef
	if math.Abs(c) < dropTolerance {
		delete(e.terms, v)
	} else {
		e.terms[v] = c
	}

	return e
}

// AddConstant adds c to the constant term.
func (e *Expression) AddConstant(c float64) *Expression {
	e.constant += c

	return e
}

// Scale multiplies every coefficient and the constant by factor.
// Scaling by 0 empties the expression.
func (e *Expression) Scale(factor float64) *Expression {
	for v, c := range e.terms {
		scaled := c * factor
		if math.Abs(scaled) < dropTolerance {
			delete(e.terms, v)
		} else {
			e.terms[v] = scaled
		}
	}
	e.constant *= factor

	return e
}

// Add merges every term and the constant of o into e. o is not
// modified.
func (e *Expression) Add(o *Expression) *Expression {
	for v, c := range o.terms {
		e.AddTerm(v, c)
	}
	e.constant += o.constant

	return e
}

// Sub subtracts every term and the constant of o from e. o is not
// modified.
func (e *Expression) Sub(o *Expression) *Expression {
	for v, c := range o.terms {
		e.AddTerm(v, -c)
	}
	e.constant -= o.constant

	return e
}

// Clone returns an independent copy of the expression.
func (e *Expression) Clone() *Expression {
	out := &Expression{
		terms:    make(map[Variable]float64, len(e.terms)),
		constant: e.constant,
	}
	for v, c := range e.terms {
		out.terms[v] = c
	}

	return out
}

// Coefficient returns the coefficient of v, 0 when absent.
func (e *Expression) Coefficient(v Variable) float64 {
	return e.terms[v]
}

// Constant returns the constant term.
func (e *Expression) Constant() float64 {
	return e.constant
}

// Len returns the number of variables with a nonzero coefficient.
func (e *Expression) Len() int {
	return len(e.terms)
}

// String renders the expression deterministically (terms by variable
// index), e.g. "3*x + -2*y + 5".
func (e *Expression) String() string {
	vars := make([]Variable, 0, len(e.terms))
	for v := range e.terms {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].index < vars[j].index })

	parts := make([]string, 0, len(vars)+1)
	for _, v := range vars {
		parts = append(parts, fmt.Sprintf("%g*%s", e.terms[v], v.name))
	}
	if e.constant != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%g", e.constant))
	}

	return strings.Join(parts, " + ")
}
