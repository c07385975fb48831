// Package linprog solves linear programs with the tableau (primal)
// Simplex method — from raw coefficient arrays to an algebraic model
// builder and a declarative text format.
//
// 🚀 What is linprog?
//
//	A small solver toolkit built around one dense-tableau engine:
//		• simplex/ — standard-form conversion, tableau construction,
//		  Bland's-rule pivoting, termination detection, extraction
//		• model/   — named variables, expression/constraint builders,
//		  lowering to the (c, A, b) engine triple
//		• parser/  — Xpress-flavoured text models → model.Model
//		• logger/  — shared zerolog console logger for solver tracing
//
// ✨ Why choose linprog?
//
//   - Deterministic — Bland's entering rule plus a fixed ratio-test
//     tie-break makes every solve reproducible bit for bit
//   - Explicit outcomes — optimal, unbounded and iteration_limit are
//     statuses, never panics or sentinel errors
//   - Three entry points — coefficient arrays, a builder API, or a
//     text file via cmd/lpsolve
//
// Quick example, maximize 3x+4y with 2x+3y ≤ 6 and -3x+2y ≤ 3:
//
//	m := model.New("example")
//	x, y := m.AddVariable("x"), m.AddVariable("y")
//	m.SetObjective(model.Term(x, 3).AddTerm(y, 4), model.Maximize)
//	m.AddConstraint(model.Term(x, 2).AddTerm(y, 3).LessEq(6))
//	m.AddConstraint(model.Term(x, -3).AddTerm(y, 2).LessEq(3))
//	sol, _ := m.Solve(nil)
//	// sol.Status == optimal, sol.Objective == 9
//
// The engine assumes a feasible all-slack starting basis, which holds
// when every constraint lowers to "expression ≤ nonnegative bound". No
// two-phase start, no integer variables, no sparse storage.
//
//	go get github.com/optline/linprog
package linprog
