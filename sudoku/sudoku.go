/*
Package sudoku encodes static one-hot grid puzzles (sudoku, and by
extension any Latin-square puzzle with box groups) as CNF formulas,
delegates satisfiability to a SAT oracle and decodes the model back
into a filled grid.

One propositional variable is associated with each (row, column, value)
triple, stating that the cell holds that value. The clause families are
the classic ones: exactly one value per cell, each value at least once
per row, column and box, plus unit clamps for the given cells.
*/
package sudoku

import (
	"context"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/4N5Hadow/gridsat/cnf"
	"github.com/4N5Hadow/gridsat/oracle"
)

// ErrUnsat is returned when the puzzle admits no solution. It is a
// legitimate verdict, distinct from a malformed instance.
var ErrUnsat = errors.New("puzzle is unsatisfiable")

// ErrInconsistentModel is returned when a reported model violates the
// one-value-per-cell invariant the encoding enforces. It indicates a
// bug, not a property of the instance.
var ErrInconsistentModel = errors.New("model breaks the one-value-per-cell invariant")

// An InstanceError reports a malformed problem instance.
type InstanceError struct {
	Reason string
}

func (e *InstanceError) Error() string {
	return "invalid puzzle: " + e.Reason
}

// A Puzzle is an immutable n×n grid instance. Cells hold a value in
// [1..n] or 0 for a blank.
type Puzzle struct {
	n    int // side length
	box  int // box side, the square root of n
	grid [][]int
}

// New validates and captures a grid. The side length must be a nonzero
// perfect square so that the box groups are well defined, rows must be
// rectangular and every given must be in [0..n].
func New(grid [][]int) (*Puzzle, error) {
	n := len(grid)
	if n == 0 {
		return nil, &InstanceError{Reason: "empty grid"}
	}
	box := int(math.Sqrt(float64(n)) + 0.5)
	if box*box != n {
		return nil, &InstanceError{Reason: fmt.Sprintf("side %d is not a perfect square", n)}
	}
	p := &Puzzle{n: n, box: box, grid: make([][]int, n)}
	for r, row := range grid {
		if len(row) != n {
			return nil, &InstanceError{Reason: fmt.Sprintf("row %d has %d cells, want %d", r, len(row), n)}
		}
		for c, v := range row {
			if v < 0 || v > n {
				return nil, &InstanceError{Reason: fmt.Sprintf("cell (%d,%d) holds %d, outside [0..%d]", r, c, v, n)}
			}
		}
		p.grid[r] = append([]int(nil), row...)
	}
	return p, nil
}

// Size returns the side length of the puzzle.
func (p *Puzzle) Size() int {
	return p.n
}

// cellValue is the bijection from (row, col, value) triples onto
// [1, n*n*n]. Out-of-range input is a programming error.
func (p *Puzzle) cellValue(row, col, value int) int {
	if row < 0 || row >= p.n || col < 0 || col >= p.n || value < 1 || value > p.n {
		panic(fmt.Sprintf("sudoku: no variable for cell (%d,%d) value %d in a %d-puzzle", row, col, value, p.n))
	}
	return (row*p.n+col)*p.n + value
}

// Encode produces the full clause set for the instance.
func (p *Puzzle) Encode() *cnf.Formula {
	f := cnf.NewFormula(p.n * p.n * p.n)

	// Exactly one value per cell.
	for r := 0; r < p.n; r++ {
		for c := 0; c < p.n; c++ {
			lits := make([]int, p.n)
			for v := 1; v <= p.n; v++ {
				lits[v-1] = p.cellValue(r, c, v)
			}
			f.ExactlyOne(lits)
		}
	}

	// Each value appears in each row.
	for r := 0; r < p.n; r++ {
		for v := 1; v <= p.n; v++ {
			lits := make([]int, p.n)
			for c := 0; c < p.n; c++ {
				lits[c] = p.cellValue(r, c, v)
			}
			f.AtLeastOne(lits)
		}
	}

	// Each value appears in each column.
	for c := 0; c < p.n; c++ {
		for v := 1; v <= p.n; v++ {
			lits := make([]int, p.n)
			for r := 0; r < p.n; r++ {
				lits[r] = p.cellValue(r, c, v)
			}
			f.AtLeastOne(lits)
		}
	}

	// Each value appears in each box.
	for br := 0; br < p.n; br += p.box {
		for bc := 0; bc < p.n; bc += p.box {
			for v := 1; v <= p.n; v++ {
				lits := make([]int, 0, p.n)
				for r := br; r < br+p.box; r++ {
					for c := bc; c < bc+p.box; c++ {
						lits = append(lits, p.cellValue(r, c, v))
					}
				}
				f.AtLeastOne(lits)
			}
		}
	}

	// Clamp the given cells.
	for r := 0; r < p.n; r++ {
		for c := 0; c < p.n; c++ {
			if v := p.grid[r][c]; v != 0 {
				f.AddUnit(p.cellValue(r, c, v))
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"size":    p.n,
		"vars":    f.NbVars(),
		"clauses": f.NbClauses(),
	}).Debug("encoded sudoku instance")
	return f
}

// Decode maps a satisfying model back to a filled grid. The blanks of
// the original grid are replaced by the unique value whose literal is
// true in the model.
func (p *Puzzle) Decode(model cnf.Assignment) ([][]int, error) {
	out := make([][]int, p.n)
	for r := range out {
		out[r] = append([]int(nil), p.grid[r]...)
	}
	for r := 0; r < p.n; r++ {
		for c := 0; c < p.n; c++ {
			found := 0
			for v := 1; v <= p.n; v++ {
				if model.Lit(p.cellValue(r, c, v)) {
					if found != 0 {
						return nil, errors.Wrapf(ErrInconsistentModel, "cell (%d,%d) holds both %d and %d", r, c, found, v)
					}
					found = v
				}
			}
			if found == 0 {
				return nil, errors.Wrapf(ErrInconsistentModel, "cell (%d,%d) holds no value", r, c)
			}
			out[r][c] = found
		}
	}
	return out, nil
}

// Solve encodes the puzzle, runs the default oracle and decodes the
// model. It returns ErrUnsat when no solution exists.
func (p *Puzzle) Solve() ([][]int, error) {
	return p.SolveWithContext(context.Background(), oracle.Default())
}

// SolveWithContext provides the same behavior as Solve with a custom
// oracle, and may return early if the context is cancelled.
func (p *Puzzle) SolveWithContext(ctx context.Context, o oracle.Interface) ([][]int, error) {
	res, err := o.Solve(ctx, p.Encode())
	if err != nil {
		return nil, err
	}
	if res.Status != oracle.Sat {
		return nil, ErrUnsat
	}
	return p.Decode(res.Model)
}
