// Package parser reads a declarative, Xpress-flavoured description of
// a linear program and builds a model.Model from it.
//
// 📄 Format:
//
//	declarations
//	    x1, x2, y: mpvar
//	end-declarations
//
//	x1 + x2 <= 200
//	8.8*x1 + 6.1*x2 - 6*y <= 0
//	x1 + x2 - y = 0
//
//	maximize 5*y - 3.5*x1 - 1.5*x2
//
// Rules:
//   - The declarations block lists every variable name, comma- or
//     line-separated; an optional ": mpvar" type suffix is ignored.
//   - Every other non-empty line is either the objective (a line
//     starting with the case-insensitive keyword "minimize" or
//     "maximize") or a constraint relating two linear expressions
//     with <=, >= or =.
//   - A term is "coef*name", "name*coef", a bare "name" (coefficient
//     1) or a numeric literal (folded into the constant). Expressions
//     split at top-level + and - signs; the sign of an exponent
//     literal like 1e-3 stays inside its number.
//   - A right-hand side may itself be an expression; it is moved to
//     the left so the stored constraint compares against 0.
//   - With no objective line, the model maximizes the sum of all
//     declared variables.
//
// Parsing is plumbing, not the hard core: a line-oriented tokenizer
// feeding the model builder, which in turn lowers to the simplex
// engine. Errors are package sentinels wrapped with the offending
// line or token via github.com/pkg/errors; match them with errors.Is.
package parser
