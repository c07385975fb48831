// Package model: sentinel error set, matched with errors.Is.
package model

import "errors"

var (
	// ErrNoVariables is returned when lowering a model that has no
	// variables.
	ErrNoVariables = errors.New("model: model has no variables")

	// ErrNoConstraints is returned when lowering a model with no
	// constraints: the engine needs at least one row to build a
	// tableau, and a constraint-free maximize is unbounded anyway.
	ErrNoConstraints = errors.New("model: model has no constraints")

	// ErrForeignVariable is returned when an expression references a
	// variable created by a different model, whose index has no
	// meaning in this model's column space.
	ErrForeignVariable = errors.New("model: expression references a variable from another model")
)
