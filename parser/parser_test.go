package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optline/linprog/model"
	"github.com/optline/linprog/parser"
	"github.com/optline/linprog/simplex"
)

// TestParse_Declarations covers the accepted shapes of the
// declarations block: type suffix, bare list, multi-line.
func TestParse_Declarations(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "typed single line",
			src:  "declarations\n x, y: mpvar\nend-declarations\nx <= 1",
			want: []string{"x", "y"},
		},
		{
			name: "bare list",
			src:  "declarations\n a, b\nend-declarations\na <= 1",
			want: []string{"a", "b"},
		},
		{
			name: "multi line",
			src:  "declarations\n p: mpvar\n q, r: mpvar\nend-declarations\np <= 1",
			want: []string{"p", "q", "r"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := parser.Parse(tc.src)
			require.NoError(t, err)

			vars := m.Variables()
			require.Len(t, vars, len(tc.want))
			for i, name := range tc.want {
				assert.Equal(t, name, vars[i].Name())
				assert.Equal(t, i, vars[i].Index())
			}
		})
	}
}

// TestParse_ExpressionForms exercises every term shape through the
// lowered standard form: coef*name, name*coef, bare name, literals and
// subtraction.
func TestParse_ExpressionForms(t *testing.T) {
	src := `
declarations
    x, y: mpvar
end-declarations

2*x + y <= 4
x*3 - 2*y <= 6
x + 1 <= 5
maximize x + y
`
	m, err := parser.Parse(src)
	require.NoError(t, err)

	_, A, b, err := m.StandardForm()
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 1}, A.RawRowView(0))
	assert.Equal(t, 4.0, b[0])
	assert.Equal(t, []float64{3, -2}, A.RawRowView(1))
	assert.Equal(t, 6.0, b[1])
	// constant folded: x + 1 <= 5 becomes x <= 4
	assert.Equal(t, []float64{1, 0}, A.RawRowView(2))
	assert.Equal(t, 4.0, b[2])
}

// TestParse_ExponentLiterals keeps the sign of an exponent literal
// inside its number instead of splitting the term at it.
func TestParse_ExponentLiterals(t *testing.T) {
	src := `
declarations
    x, y: mpvar
end-declarations

1e-3*x + y <= 2e+1
x - 1e-2 <= 5e-1
maximize x - 1E-1*y
`
	m, err := parser.Parse(src)
	require.NoError(t, err)

	c, A, b, err := m.StandardForm()
	require.NoError(t, err)

	assert.Equal(t, []float64{1, -0.1}, c)
	assert.Equal(t, []float64{1e-3, 1}, A.RawRowView(0))
	assert.Equal(t, 20.0, b[0])
	assert.Equal(t, []float64{1, 0}, A.RawRowView(1))
	assert.InDelta(t, 0.51, b[1], 1e-12, "constant folded: 0.5 - (-0.01)")
}

// TestParse_ObjectiveDirection detects minimize/maximize lines
// case-insensitively; without one, the default objective applies.
func TestParse_ObjectiveDirection(t *testing.T) {
	min, err := parser.Parse("declarations\nx\nend-declarations\nx <= 3\nMINIMIZE 2*x")
	require.NoError(t, err)
	c, _, _, err := min.StandardForm()
	require.NoError(t, err)
	assert.Equal(t, []float64{-2}, c, "minimize negates the lowered objective")

	def, err := parser.Parse("declarations\nx, y\nend-declarations\nx + y <= 3")
	require.NoError(t, err)
	c, _, _, err = def.StandardForm()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, c, "default objective maximizes the sum")
}

// TestParse_ExpressionRHS moves a variable right-hand side to the
// left: "x <= y + 2" stores x - y <= 2... after folding the constant.
func TestParse_ExpressionRHS(t *testing.T) {
	m, err := parser.Parse("declarations\nx, y\nend-declarations\nx <= y + 2\nmaximize x")
	require.NoError(t, err)

	_, A, b, err := m.StandardForm()
	require.NoError(t, err)

	assert.Equal(t, []float64{1, -1}, A.RawRowView(0))
	assert.Equal(t, 2.0, b[0])
}

// TestParse_Errors checks that every failure mode surfaces its
// sentinel through the wrapping.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no declarations", "x <= 1", parser.ErrNoDeclarations},
		{"empty declarations", "declarations\nend-declarations\nx <= 1", parser.ErrNoDeclarations},
		{"duplicate variable", "declarations\nx, x\nend-declarations\nx <= 1", parser.ErrDuplicateVariable},
		{"unknown variable", "declarations\nx\nend-declarations\nx + z <= 1", parser.ErrUnknownVariable},
		{"bad term", "declarations\nx\nend-declarations\nx*y*2 <= 1", parser.ErrBadTerm},
		{"no relation", "declarations\nx\nend-declarations\nx < 1", parser.ErrNoRelation},
		{"bare objective", "declarations\nx\nend-declarations\nx <= 1\nmaximize", parser.ErrBadObjective},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_SolveEndToEnd parses and solves a small model, matching
// the known optimum.
func TestParse_SolveEndToEnd(t *testing.T) {
	src := `
declarations
    x, y: mpvar
end-declarations

2*x + 3*y <= 6
-3*x + 2*y <= 3

maximize 3*x + 4*y
`
	m, err := parser.Parse(src)
	require.NoError(t, err)

	sol, err := m.Solve(nil)
	require.NoError(t, err)

	assert.Equal(t, simplex.StatusOptimal, sol.Status)
	assert.InDelta(t, 9.0, sol.Objective, 1e-9)
	x, _ := sol.ValueOf("x")
	y, _ := sol.ValueOf("y")
	assert.InDelta(t, 3.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

// TestParse_ProductionPlan runs the six-variable blending model end to
// end. The equality row rides along as a ≤ row, so this checks the
// relaxation's optimum and that the reported solution is feasible and
// self-consistent.
func TestParse_ProductionPlan(t *testing.T) {
	src := `
declarations
    x1, x2, x3, x4, x5, y: mpvar
end-declarations

x1 + x2 <= 200
x2 + x4 + x5 <= 250
8.8*x1 + 6.1*x2 + 2*x3 + 4.2*x4 + 5*x5 - 6*y <= 0
8.8*x1 + 6.1*x2 + 2*x3 + 4.2*x4 + 5*x5 - 3*y >= 0
x1 + x2 + x3 + x4 + x5 - y = 0

maximize 5*y - 3.5*x1 - 1.5*x2 - 2.5*x3 - 2*x4 - 3*x5
`
	m, err := parser.Parse(src)
	require.NoError(t, err)

	sol, err := m.Solve(nil)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, sol.Status)

	v := func(name string) float64 {
		val, ok := sol.ValueOf(name)
		require.True(t, ok, "missing value for %s", name)

		return val
	}
	x1, x2, x3 := v("x1"), v("x2"), v("x3")
	x4, x5, yv := v("x4"), v("x5"), v("y")

	assert.InDelta(t, 4950.0, sol.Objective, 1e-6)

	// objective self-consistency
	obj := 5*yv - 3.5*x1 - 1.5*x2 - 2.5*x3 - 2*x4 - 3*x5
	assert.InDelta(t, sol.Objective, obj, 1e-6)

	// feasibility of the reported point
	blend := 8.8*x1 + 6.1*x2 + 2*x3 + 4.2*x4 + 5*x5
	assert.LessOrEqual(t, x1+x2, 200+1e-6)
	assert.LessOrEqual(t, x2+x4+x5, 250+1e-6)
	assert.LessOrEqual(t, blend-6*yv, 1e-6)
	assert.GreaterOrEqual(t, blend-3*yv, -1e-6)
	assert.LessOrEqual(t, x1+x2+x3+x4+x5-yv, 1e-6)
}

// TestParseFile round-trips a model through the filesystem.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.lp")
	src := "declarations\nx\nend-declarations\nx <= 5\nmaximize x\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	m, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Variables(), 1)

	sol, err := m.Solve(nil)
	require.NoError(t, err)
	assert.Equal(t, simplex.StatusOptimal, sol.Status)
	assert.InDelta(t, 5.0, sol.Objective, 1e-9)

	_, err = parser.ParseFile(path + ".missing")
	assert.Error(t, err)
}

// TestParse_ObjectiveKeywordIsWholeWord keeps constraint lines whose
// first token merely contains the keyword out of the objective path.
func TestParse_ObjectiveKeywordIsWholeWord(t *testing.T) {
	m, err := parser.Parse("declarations\nmaximizer\nend-declarations\nmaximizer <= 7\nmaximize maximizer")
	require.NoError(t, err)

	assert.Equal(t, 1, m.NumConstraints())
	assert.Equal(t, model.Maximize, m.Direction())
}
