package model

// Variable is a named decision variable of one Model, implicitly
// bounded below by 0 with no upper bound.
//
// Variable is a small value type and may be used as a map key; value
// equality means "same variable of the same model" and never builds a
// constraint (constraints come from the LessEq/GreaterEq/Equal
// builders). The index is the variable's column in the lowered
// coefficient arrays.
type Variable struct {
	model *Model
	index int
	name  string
}

// Name returns the variable's name.
func (v Variable) Name() string { return v.name }

// Index returns the variable's stable 0-based column index.
func (v Variable) Index() int { return v.index }

// String returns the variable's name, for diagnostics.
func (v Variable) String() string { return v.name }

// Times starts an expression holding coef·v.
func (v Variable) Times(coef float64) *Expression {
	return Term(v, coef)
}

// Plus starts an expression holding v + o.
func (v Variable) Plus(o Variable) *Expression {
	return Term(v, 1).AddTerm(o, 1)
}

// LessEq builds the constraint v ≤ rhs.
func (v Variable) LessEq(rhs float64) Constraint {
	return Term(v, 1).LessEq(rhs)
}

// GreaterEq builds the constraint v ≥ rhs.
func (v Variable) GreaterEq(rhs float64) Constraint {
	return Term(v, 1).GreaterEq(rhs)
}

// Equal builds the constraint v = rhs (see simplex.SenseEQ for the
// engine's equality limitation).
func (v Variable) Equal(rhs float64) Constraint {
	return Term(v, 1).Equal(rhs)
}
