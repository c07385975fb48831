package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/optline/linprog/simplex"
)

// Direction is the optimization direction of the objective.
type Direction int

const (
	// Maximize the objective (the engine's native direction).
	Maximize Direction = iota

	// Minimize the objective. Lowering negates the coefficient vector
	// and Solve negates the reported objective value back.
	Minimize
)

// String returns "maximize" or "minimize".
func (d Direction) String() string {
	if d == Minimize {
		return "minimize"
	}

	return "maximize"
}

// Model collects variables, constraints and an objective, and lowers
// them to the (c, A, b) triple consumed by the simplex engine. The
// zero-value-ish New model maximizes; a model without an explicit
// objective maximizes the sum of its variables.
//
// A Model is not safe for concurrent mutation; Solve itself only
// reads.
type Model struct {
	name        string
	vars        []Variable
	constraints []Constraint
	objective   *Expression
	direction   Direction
}

// New returns an empty model with the given name.
func New(name string) *Model {
	return &Model{name: name}
}

// Name returns the model's name.
func (m *Model) Name() string { return m.name }

// AddVariable creates and registers a new variable. An empty name is
// auto-filled as "x<index>". The variable's index is its position in
// the lowered column space.
func (m *Model) AddVariable(name string) Variable {
	if name == "" {
		name = fmt.Sprintf("x%d", len(m.vars))
	}
	v := Variable{model: m, index: len(m.vars), name: name}
	m.vars = append(m.vars, v)

	return v
}

// AddVariables creates count variables named prefix1..prefixN.
func (m *Model) AddVariables(count int, prefix string) []Variable {
	vars := make([]Variable, 0, count)
	for i := 0; i < count; i++ {
		vars = append(vars, m.AddVariable(fmt.Sprintf("%s%d", prefix, i+1)))
	}

	return vars
}

// Variables returns the model's variables in declaration order.
func (m *Model) Variables() []Variable {
	out := make([]Variable, len(m.vars))
	copy(out, m.vars)

	return out
}

// AddConstraint appends a constraint to the model.
func (m *Model) AddConstraint(c Constraint) {
	m.constraints = append(m.constraints, c)
}

// NumConstraints returns the number of constraints added so far.
func (m *Model) NumConstraints() int { return len(m.constraints) }

// SetObjective sets the objective expression and direction. The
// expression is snapshotted; later mutation of e does not affect the
// model.
func (m *Model) SetObjective(e *Expression, dir Direction) {
	m.objective = e.Clone()
	m.direction = dir
}

// Direction returns the optimization direction.
func (m *Model) Direction() Direction { return m.direction }

// StandardForm lowers the model to the engine triple (c, A, b) with
// every row in ≤ sense:
//
//   - c[j] is the objective coefficient of the variable with index j,
//     negated when minimizing; with no objective set, c is all ones
//     (maximize the variable sum).
//   - Row i holds constraint i's coefficients; its constant term is
//     folded into the right-hand side (b[i] = rhs − constant).
//   - Mixed senses are normalized by simplex.Standardize: ≥ rows are
//     sign-flipped, = rows pass through.
//
// Errors: ErrNoVariables, ErrNoConstraints, ErrForeignVariable, plus
// anything simplex.Standardize reports.
func (m *Model) StandardForm() (c []float64, A *mat.Dense, b []float64, err error) {
	n := len(m.vars)
	if n == 0 {
		return nil, nil, nil, ErrNoVariables
	}
	rows := len(m.constraints)
	if rows == 0 {
		return nil, nil, nil, ErrNoConstraints
	}

	c = make([]float64, n)
	if m.objective == nil {
		for j := range c {
			c[j] = 1
		}
	} else {
		for v, coef := range m.objective.terms {
			if v.model != m {
				return nil, nil, nil, ErrForeignVariable
			}
			if m.direction == Minimize {
				coef = -coef
			}
			c[v.index] = coef
		}
	}

	raw := mat.NewDense(rows, n, nil)
	rhs := make([]float64, rows)
	senses := make([]simplex.Sense, rows)
	for i, con := range m.constraints {
		for v, coef := range con.expr.terms {
			if v.model != m {
				return nil, nil, nil, ErrForeignVariable
			}
			raw.Set(i, v.index, coef)
		}
		rhs[i] = con.rhs - con.expr.constant
		senses[i] = con.sense
	}

	A, b, err = simplex.Standardize(raw, rhs, senses)
	if err != nil {
		return nil, nil, nil, err
	}

	return c, A, b, nil
}

// Solve lowers the model and runs the simplex engine. opts==nil means
// simplex.DefaultOptions(). On an optimal result the solution carries
// one value per variable, keyed by name, and the objective value in
// the model's own direction (re-negated for Minimize).
func (m *Model) Solve(opts *simplex.Options) (Solution, error) {
	c, A, b, err := m.StandardForm()
	if err != nil {
		return Solution{}, err
	}

	res, err := simplex.Solve(simplex.Problem{C: c, A: A, B: b}, opts)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{Status: res.Status, Iterations: res.Iterations}
	if res.Status == simplex.StatusOptimal {
		sol.Objective = res.Objective
		if m.direction == Minimize {
			sol.Objective = -sol.Objective
		}
		sol.values = make(map[string]float64, len(m.vars))
		for i, v := range m.vars {
			sol.values[v.name] = res.Solution[i]
		}
	}

	return sol, nil
}

// Solution is the model-level view of a solve outcome. Objective and
// the per-variable values are meaningful only when Status is
// simplex.StatusOptimal.
type Solution struct {
	Status     simplex.Status
	Objective  float64
	Iterations int

	values map[string]float64
}

// Value returns the optimal value of v, 0 when v is absent or the
// solve was not optimal.
func (s Solution) Value(v Variable) float64 {
	return s.values[v.Name()]
}

// ValueOf looks a variable value up by name.
func (s Solution) ValueOf(name string) (float64, bool) {
	val, ok := s.values[name]

	return val, ok
}

// Values returns a copy of the name→value map.
func (s Solution) Values() map[string]float64 {
	out := make(map[string]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}

	return out
}
