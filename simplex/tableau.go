package simplex

import "gonum.org/v1/gonum/mat"

// newTableau builds the initial simplex tableau and slack basis for p.
//
// With m constraints and n structural variables the tableau is the
// (m+1)×(n+m+1) matrix
//
//	[ -c  0 | 0 ]
//	[  A  I | b ]
//
// where row 0 carries the negated objective (extended with zeros for
// the m slack columns), rows 1..m carry the constraint rows augmented
// with the identity slack block, and the last column is the rhs.
//
// basis[i] is the variable basic in row i+1; initially the slack
// indices n..n+m-1. Purely constructive: dimensions are validated by
// the caller.
func newTableau(p Problem) (t *mat.Dense, basis []int) {
	m, n := p.A.Dims()
	cols := n + m // variable columns; the rhs lives at index cols

	t = mat.NewDense(m+1, cols+1, nil)
	obj := t.RawRowView(0)
	for j, cj := range p.C {
		obj[j] = -cj
	}
	for i := 0; i < m; i++ {
		row := t.RawRowView(i + 1)
		for j := 0; j < n; j++ {
			row[j] = p.A.At(i, j)
		}
		row[n+i] = 1
		row[cols] = p.B[i]
	}

	basis = make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	return t, basis
}
