package sokoban

import (
	"context"

	"github.com/pkg/errors"

	"github.com/4N5Hadow/gridsat/cnf"
	"github.com/4N5Hadow/gridsat/oracle"
)

// ErrUnsat is returned when no plan of the given horizon exists. It is
// a legitimate verdict, distinct from both a malformed level and an
// empty plan.
var ErrUnsat = errors.New("no plan within the given horizon")

// ErrInconsistentModel is returned when a reported model violates the
// exactly-one-action-per-step invariant the encoding enforces. It
// indicates a bug, not a property of the instance.
var ErrInconsistentModel = errors.New("model breaks the one-action-per-step invariant")

// Decode maps a satisfying model to an ordered plan. Actions are read
// in time order; directional codes contribute their direction, the
// no-op contributes nothing. The forced stay at step 0 never appears.
func (e *Encoder) Decode(model cnf.Assignment) ([]Move, error) {
	plan := make([]Move, 0, e.horizon)
	for t := 1; t < e.vars.steps; t++ {
		code := 0
		for a := 1; a <= nbActions; a++ {
			if model.Lit(e.vars.varAction(a, t)) {
				if code != 0 {
					return nil, errors.Wrapf(ErrInconsistentModel, "step %d has actions %d and %d", t, code, a)
				}
				code = a
			}
		}
		switch {
		case code == 0:
			return nil, errors.Wrapf(ErrInconsistentModel, "step %d has no action", t)
		case code == actStay:
		case code < actPush:
			plan = append(plan, Move(code-actMove))
		default:
			plan = append(plan, Move(code-actPush))
		}
	}
	return plan, nil
}

// Solve encodes the level over the steps 0..horizon, runs the default
// oracle and decodes the plan. It returns ErrUnsat when the horizon
// admits no solution.
func Solve(level *Level, horizon int) ([]Move, error) {
	return SolveWithContext(context.Background(), oracle.Default(), level, horizon)
}

// SolveWithContext provides the same behavior as Solve with a custom
// oracle, and may return early if the context is cancelled.
func SolveWithContext(ctx context.Context, o oracle.Interface, level *Level, horizon int) ([]Move, error) {
	e, err := NewEncoder(level, horizon)
	if err != nil {
		return nil, err
	}
	res, err := o.Solve(ctx, e.Encode())
	if err != nil {
		return nil, err
	}
	if res.Status != oracle.Sat {
		return nil, ErrUnsat
	}
	return e.Decode(res.Model)
}
