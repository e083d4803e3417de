package oracle

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/4N5Hadow/gridsat/cnf"
)

type gophersatOracle struct{}

// Gophersat returns an oracle backed by the gophersat engine. The
// engine exposes no interrupt hook on its blocking Solve call, so
// cancellation is only honored between submission and search.
func Gophersat() Interface {
	return gophersatOracle{}
}

func (gophersatOracle) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, ErrIncomplete
	}
	pb := solver.ParseSlice(f.Clauses())
	s := solver.New(pb)
	switch s.Solve() {
	case solver.Sat:
		return Result{Status: Sat, Model: s.Model()}, nil
	case solver.Unsat:
		return Result{Status: Unsat}, nil
	}
	return Result{}, ErrIncomplete
}
