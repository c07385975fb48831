// Package model is the algebraic modeling layer on top of the simplex
// engine: named variables, builder-style linear expressions and
// constraints, and the lowering of a finished model to the coefficient
// triple (c, A, b) the engine consumes.
//
// 🚀 How is a model built?
//
//	m := model.New("diet")
//	x := m.AddVariable("x")
//	y := m.AddVariable("y")
//
//	m.SetObjective(model.Term(x, 3).AddTerm(y, 4), model.Maximize)
//	m.AddConstraint(model.Term(x, 2).AddTerm(y, 3).LessEq(6))
//	m.AddConstraint(model.Term(x, -3).AddTerm(y, 2).LessEq(3))
//
//	sol, err := m.Solve(nil)
//
// ✨ Design notes:
//   - Expressions are explicit builders (AddTerm/AddConstant/Scale/
//     Add), not operator overloads: a map from variable to coefficient
//     plus a constant. Merging terms drops coefficients that cancel to
//     (near) zero.
//   - Constraint construction (LessEq/GreaterEq/Equal) is entirely
//     separate from Go value equality on Variable; comparing two
//     Variable values never creates a constraint.
//   - Every variable is implicitly bounded below by 0 with no upper
//     bound; there are no per-variable bound fields because the engine
//     cannot enforce them.
//   - Lowering assigns column j to the variable with index j, folds
//     expression constants into the right-hand side, negates the
//     objective for Minimize, and routes mixed senses through
//     simplex.Standardize. Equality constraints inherit the engine's
//     pass-through limitation (see simplex.SenseEQ).
package model
