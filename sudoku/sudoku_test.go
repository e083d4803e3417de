package sudoku

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4N5Hadow/gridsat/cnf"
)

// A valid 4x4 solution, box-groups included.
var solved4 = [][]int{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 1, 4, 3},
	{4, 3, 2, 1},
}

func TestNewRejectsMalformedGrids(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
	}{
		{"empty", [][]int{}},
		{"not a perfect square", [][]int{{0, 0}, {0, 0}}},
		{"ragged rows", [][]int{{0}, {0, 0}, {0}, {0}}},
		{"value out of range", [][]int{
			{5, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		{"negative value", [][]int{
			{-1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.grid)
			require.Error(t, err)
			var ie *InstanceError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestCellValueBijection(t *testing.T) {
	p, err := New(solved4)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for v := 1; v <= 4; v++ {
				id := p.cellValue(r, c, v)
				assert.GreaterOrEqual(t, id, 1)
				assert.LessOrEqual(t, id, 4*4*4)
				assert.False(t, seen[id], "id %d assigned twice", id)
				seen[id] = true
			}
		}
	}
	assert.Len(t, seen, 4*4*4)
}

func TestCellValuePanicsOutOfBounds(t *testing.T) {
	p, err := New(solved4)
	require.NoError(t, err)
	assert.Panics(t, func() { p.cellValue(4, 0, 1) })
	assert.Panics(t, func() { p.cellValue(0, -1, 1) })
	assert.Panics(t, func() { p.cellValue(0, 0, 0) })
	assert.Panics(t, func() { p.cellValue(0, 0, 5) })
}

// Encoding an already-solved grid and assigning every variable
// according to that grid must satisfy every clause.
func TestRoundTrip(t *testing.T) {
	p, err := New(solved4)
	require.NoError(t, err)
	f := p.Encode()

	model := make(cnf.Assignment, f.NbVars())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			model[p.cellValue(r, c, solved4[r][c])-1] = true
		}
	}
	assert.True(t, model.Satisfies(f.Clauses()))
}

func TestSolvePrefilledGridUnchanged(t *testing.T) {
	p, err := New(solved4)
	require.NoError(t, err)
	out, err := p.Solve()
	require.NoError(t, err)
	if diff := cmp.Diff(solved4, out); diff != "" {
		t.Errorf("solved grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveFillsBlanks(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
	p, err := New(grid)
	require.NoError(t, err)
	out, err := p.Solve()
	require.NoError(t, err)
	assert.True(t, Verify(out))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if grid[r][c] != 0 {
				assert.Equal(t, grid[r][c], out[r][c], "given at (%d,%d) was overwritten", r, c)
			}
		}
	}
}

func TestSolve9x9(t *testing.T) {
	grid := [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	p, err := New(grid)
	require.NoError(t, err)
	out, err := p.Solve()
	require.NoError(t, err)
	assert.True(t, Verify(out))
}

func TestContradictoryGivensUnsat(t *testing.T) {
	grid := [][]int{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	p, err := New(grid)
	require.NoError(t, err)
	_, err = p.Solve()
	assert.ErrorIs(t, err, ErrUnsat)
}

func TestVerify(t *testing.T) {
	assert.True(t, Verify(solved4))
	assert.False(t, Verify([][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 1, 2}, // 1 repeated in last column
	}))
	assert.False(t, Verify([][]int{{1}, {1}})) // malformed
	bad := make([][]int, 4)
	for r := range bad {
		bad[r] = append([]int(nil), solved4[r]...)
	}
	bad[0][0] = 0 // incomplete
	assert.False(t, Verify(bad))
}
