package oracle

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/4N5Hadow/gridsat/cnf"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type giniOracle struct{}

// Gini returns an oracle backed by the gini engine. Unlike the
// gophersat backend it runs the search in the background and honors
// context cancellation while the search is in flight.
func Gini() Interface {
	return giniOracle{}
}

func (giniOracle) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	g := gini.NewVc(f.NbVars(), f.NbClauses())
	for _, clause := range f.Clauses() {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	switch waitForVerdict(ctx, g.GoSolve()) {
	case satisfiable:
		model := make(cnf.Assignment, f.NbVars())
		for v := 1; v <= f.NbVars(); v++ {
			model[v-1] = g.Value(z.Dimacs2Lit(v))
		}
		return Result{Status: Sat, Model: model}, nil
	case unsatisfiable:
		return Result{Status: Unsat}, nil
	}
	return Result{}, ErrIncomplete
}

// waitForVerdict polls a background solve until it terminates or the
// context is done, in which case the solve is stopped.
func waitForVerdict(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}
