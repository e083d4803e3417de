package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4N5Hadow/gridsat/cnf"
)

func backends() map[string]Interface {
	return map[string]Interface{
		"gophersat": Gophersat(),
		"gini":      Gini(),
	}
}

func TestSolveSat(t *testing.T) {
	for name, o := range backends() {
		t.Run(name, func(t *testing.T) {
			f := cnf.NewFormula(3)
			f.Add(1, 2, 3)
			f.Add(-1, -2)
			f.Add(-1, -3)
			f.Add(-2, -3)
			f.AddUnit(2)

			res, err := o.Solve(context.Background(), f)
			require.NoError(t, err)
			require.Equal(t, Sat, res.Status)
			require.Len(t, res.Model, 3)
			assert.True(t, res.Model.Satisfies(f.Clauses()))
			assert.True(t, res.Model.Lit(2))
			assert.False(t, res.Model.Lit(1))
			assert.False(t, res.Model.Lit(3))
		})
	}
}

func TestSolveUnsat(t *testing.T) {
	for name, o := range backends() {
		t.Run(name, func(t *testing.T) {
			f := cnf.NewFormula(2)
			f.Add(1, 2)
			f.Add(-1, 2)
			f.Add(1, -2)
			f.Add(-1, -2)

			res, err := o.Solve(context.Background(), f)
			require.NoError(t, err)
			assert.Equal(t, Unsat, res.Status)
			assert.Nil(t, res.Model)
		})
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := cnf.NewFormula(1)
	f.AddUnit(1)
	_, err := Gophersat().Solve(ctx, f)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SAT", Sat.String())
	assert.Equal(t, "UNSAT", Unsat.String())
}
