// Package parser: sentinel error set, matched with errors.Is. Wrapped
// with positional context (line, token) at the point of failure.
package parser

import "errors"

var (
	// ErrNoDeclarations — the source has no (or an empty)
	// declarations ... end-declarations block.
	ErrNoDeclarations = errors.New("parser: missing declarations block")

	// ErrDuplicateVariable — a name appears twice in the declarations
	// block.
	ErrDuplicateVariable = errors.New("parser: variable declared twice")

	// ErrUnknownVariable — an expression references a name that was
	// never declared.
	ErrUnknownVariable = errors.New("parser: unknown variable")

	// ErrBadTerm — a term is neither coef*name, name*coef, name nor a
	// numeric literal.
	ErrBadTerm = errors.New("parser: malformed term")

	// ErrNoRelation — a constraint line contains no <=, >= or =.
	ErrNoRelation = errors.New("parser: constraint has no relation operator")

	// ErrBadObjective — a minimize/maximize line without an
	// expression.
	ErrBadObjective = errors.New("parser: malformed objective line")
)
