package cnf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTracksVariables(t *testing.T) {
	f := NewFormula(2)
	f.Add(1, -2)
	assert.Equal(t, 2, f.NbVars())
	f.Add(-5, 3)
	assert.Equal(t, 5, f.NbVars())
	assert.Equal(t, 2, f.NbClauses())
}

func TestAddRejectsZeroLiteral(t *testing.T) {
	f := NewFormula(1)
	assert.Panics(t, func() { f.Add(1, 0) })
}

func TestExactlyOne(t *testing.T) {
	f := NewFormula(3)
	f.ExactlyOne([]int{1, 2, 3})

	expected := [][]int{
		{1, 2, 3},
		{-1, -2},
		{-1, -3},
		{-2, -3},
	}
	assert.Equal(t, expected, f.Clauses())
}

func TestExactlyOneSingleton(t *testing.T) {
	f := NewFormula(1)
	f.ExactlyOne([]int{1})
	assert.Equal(t, [][]int{{1}}, f.Clauses())
}

func TestAssignmentLit(t *testing.T) {
	a := Assignment{true, false}
	assert.True(t, a.Lit(1))
	assert.False(t, a.Lit(-1))
	assert.False(t, a.Lit(2))
	assert.True(t, a.Lit(-2))
	assert.Panics(t, func() { a.Lit(3) })
	assert.Panics(t, func() { a.Lit(0) })
}

func TestSatisfies(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 2}}
	assert.True(t, Assignment{false, true}.Satisfies(clauses))
	assert.True(t, Assignment{true, true}.Satisfies(clauses))
	assert.False(t, Assignment{true, false}.Satisfies(clauses))
	assert.False(t, Assignment{false, false}.Satisfies(clauses))
}

func TestDimacs(t *testing.T) {
	f := NewFormula(3)
	f.Add(1, -3)
	f.Add(-1, 2, 3)
	f.AddUnit(2)

	var buf bytes.Buffer
	require.NoError(t, f.Dimacs(&buf))
	expected := "p cnf 3 3\n1 -3 0\n-1 2 3 0\n2 0\n"
	assert.Equal(t, expected, buf.String())
}
