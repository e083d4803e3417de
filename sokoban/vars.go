package sokoban

import "fmt"

// layout fixes the propositional variable ranges for one instance. The
// four families are laid out back to back, in a fixed order, so that
// their union is a bijection onto [1, total]:
//
//	goals   [1, rows*cols]                      static, time-invariant
//	player  next steps*rows*cols identifiers    one per cell and step
//	actions next 9*steps identifiers            one per code and step
//	boxes   next boxes*steps*rows*cols          one per box, cell, step
//
// steps counts the snapshots 0..horizon, i.e. horizon+1 of them.
type layout struct {
	rows, cols, boxes, steps int

	goalOff, playerOff, actionOff, boxOff, total int
}

func newLayout(rows, cols, boxes, horizon int) layout {
	cells := rows * cols
	l := layout{rows: rows, cols: cols, boxes: boxes, steps: horizon + 1}
	l.goalOff = 0
	l.playerOff = l.goalOff + cells
	l.actionOff = l.playerOff + l.steps*cells
	l.boxOff = l.actionOff + nbActions*l.steps
	l.total = l.boxOff + boxes*l.steps*cells
	l.check()
	return l
}

// check asserts once that the last identifier of each family is the
// immediate predecessor of the next family's first one.
func (l layout) check() {
	last := pos{l.rows - 1, l.cols - 1}
	if l.varGoal(last) != l.playerOff ||
		l.varPlayer(last, l.steps-1) != l.actionOff ||
		l.varAction(actStay, l.steps-1) != l.boxOff ||
		l.varBox(l.boxes-1, last, l.steps-1) != l.total {
		panic("sokoban: variable families are not contiguous and disjoint")
	}
}

func (l layout) mustCell(p pos) {
	if p.r < 0 || p.r >= l.rows || p.c < 0 || p.c >= l.cols {
		panic(fmt.Sprintf("sokoban: cell (%d,%d) outside %dx%d grid", p.r, p.c, l.rows, l.cols))
	}
}

func (l layout) mustStep(t int) {
	if t < 0 || t >= l.steps {
		panic(fmt.Sprintf("sokoban: step %d outside [0,%d]", t, l.steps-1))
	}
}

// varGoal is the variable stating that the cell is a goal.
func (l layout) varGoal(p pos) int {
	l.mustCell(p)
	return l.goalOff + p.r*l.cols + p.c + 1
}

// varPlayer is the variable stating that the player is at p at step t.
func (l layout) varPlayer(p pos, t int) int {
	l.mustCell(p)
	l.mustStep(t)
	return l.playerOff + t*l.rows*l.cols + p.r*l.cols + p.c + 1
}

// varAction is the variable stating that the given action code was
// taken to reach step t.
func (l layout) varAction(code, t int) int {
	if code < 1 || code > nbActions {
		panic(fmt.Sprintf("sokoban: invalid action code %d", code))
	}
	l.mustStep(t)
	return l.actionOff + nbActions*t + code
}

// varBox is the variable stating that box b is at p at step t.
func (l layout) varBox(b int, p pos, t int) int {
	if b < 0 || b >= l.boxes {
		panic(fmt.Sprintf("sokoban: box %d outside [0,%d)", b, l.boxes))
	}
	l.mustCell(p)
	l.mustStep(t)
	return l.boxOff + (t*l.boxes+b)*l.rows*l.cols + p.r*l.cols + p.c + 1
}
