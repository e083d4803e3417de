// Package oracle is the boundary between the puzzle encoders and
// external SAT engines. An Oracle receives a fully-built CNF formula
// and reports satisfiability together with a model; it never inspects
// clause semantics.
package oracle

import (
	"context"

	"github.com/pkg/errors"

	"github.com/4N5Hadow/gridsat/cnf"
)

// Status is the verdict of an oracle on a formula.
type Status byte

const (
	// Unsat means the formula has no model.
	Unsat = Status(iota)
	// Sat means the formula has a model.
	Sat
)

func (s Status) String() string {
	switch s {
	case Unsat:
		return "UNSAT"
	case Sat:
		return "SAT"
	default:
		panic("invalid status")
	}
}

// A Result is an oracle verdict. Model is only meaningful when Status
// is Sat; it then holds one truth value per variable, indexed by
// variable minus one.
type Result struct {
	Status Status
	Model  cnf.Assignment
}

// ErrIncomplete is returned when an oracle was stopped before it could
// reach a verdict.
var ErrIncomplete = errors.New("cancelled before a verdict was reached")

// Interface is any type able to decide a CNF formula.
type Interface interface {
	// Solve decides f. The formula is read-only for the oracle.
	Solve(ctx context.Context, f *cnf.Formula) (Result, error)
}

// Default returns the oracle used when the caller expresses no
// preference.
func Default() Interface {
	return Gophersat()
}
