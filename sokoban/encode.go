package sokoban

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/4N5Hadow/gridsat/cnf"
)

// An Encoder compiles one Level and one horizon into a clause set.
// Dimensions, box count and horizon are captured once at construction
// and never recomputed.
type Encoder struct {
	level   *Level
	horizon int
	vars    layout
}

// NewEncoder prepares an encoder for the level explored over the steps
// 0..horizon inclusive. Choosing a horizon large enough for a solution
// to exist is the caller's responsibility; a too-small horizon yields a
// correct UNSAT verdict.
func NewEncoder(level *Level, horizon int) (*Encoder, error) {
	if horizon < 0 {
		return nil, errors.Errorf("negative horizon %d", horizon)
	}
	return &Encoder{
		level:   level,
		horizon: horizon,
		vars:    newLayout(level.rows, level.cols, len(level.boxes), horizon),
	}, nil
}

// Horizon returns the number of steps the encoder explores.
func (e *Encoder) Horizon() int {
	return e.horizon
}

func (e *Encoder) cells() []pos {
	out := make([]pos, 0, e.level.rows*e.level.cols)
	for r := 0; r < e.level.rows; r++ {
		for c := 0; c < e.level.cols; c++ {
			out = append(out, pos{r, c})
		}
	}
	return out
}

// Encode produces the complete clause set for the instance.
func (e *Encoder) Encode() *cnf.Formula {
	f := cnf.NewFormula(e.vars.total)

	e.initialState(f)
	e.wallExclusion(f)
	e.actionChoice(f)
	e.moveTransitions(f)
	e.pushTransitions(f)
	e.stayFrames(f)
	e.nonOverlap(f)
	e.uniquePositions(f)
	e.goalCondition(f)

	logrus.WithFields(logrus.Fields{
		"rows":    e.level.rows,
		"cols":    e.level.cols,
		"boxes":   len(e.level.boxes),
		"horizon": e.horizon,
		"vars":    f.NbVars(),
		"clauses": f.NbClauses(),
	}).Debug("encoded sokoban instance")
	return f
}

// initialState clamps the player and box starts at step 0 and the
// static goal facts. Goal variables are time-invariant: true on goal
// cells, false everywhere else.
func (e *Encoder) initialState(f *cnf.Formula) {
	f.AddUnit(e.vars.varPlayer(e.level.player, 0))
	for b, p := range e.level.boxes {
		f.AddUnit(e.vars.varBox(b, p, 0))
	}
	for _, p := range e.cells() {
		if e.level.isGoal(p) {
			f.AddUnit(e.vars.varGoal(p))
		} else {
			f.AddUnit(-e.vars.varGoal(p))
		}
	}
}

// wallExclusion forbids the player and every box from occupying a wall
// cell at any step.
func (e *Encoder) wallExclusion(f *cnf.Formula) {
	for _, p := range e.cells() {
		if !e.level.isWall(p) {
			continue
		}
		for t := 0; t < e.vars.steps; t++ {
			f.AddUnit(-e.vars.varPlayer(p, t))
			for b := range e.level.boxes {
				f.AddUnit(-e.vars.varBox(b, p, t))
			}
		}
	}
}

// actionChoice enforces exactly one of the nine action codes per step.
// No action precedes the initial snapshot, so step 0 is forced to stay.
func (e *Encoder) actionChoice(f *cnf.Formula) {
	for t := 0; t < e.vars.steps; t++ {
		lits := make([]int, nbActions)
		for code := 1; code <= nbActions; code++ {
			lits[code-1] = e.vars.varAction(code, t)
		}
		f.ExactlyOne(lits)
	}
	f.AddUnit(e.vars.varAction(actStay, 0))
}

// step returns the cell one move away from p in direction d, and
// whether it is on the grid.
func (e *Encoder) step(p pos, d int) (pos, bool) {
	next := pos{p.r + deltas[d].dr, p.c + deltas[d].dc}
	return next, e.level.inBounds(next)
}

// moveTransitions links the player position across t-1 -> t under a
// plain move, forbids moves that would leave the grid, and keeps every
// box in place (frame axiom for moves).
func (e *Encoder) moveTransitions(f *cnf.Formula) {
	for _, p := range e.cells() {
		for d := 0; d < 4; d++ {
			for t := 1; t < e.vars.steps; t++ {
				act := e.vars.varAction(actMove+d, t)
				for b := range e.level.boxes {
					f.Add(-act, -e.vars.varBox(b, p, t-1), e.vars.varBox(b, p, t))
				}
				if next, ok := e.step(p, d); ok {
					f.Add(-act, -e.vars.varPlayer(p, t-1), e.vars.varPlayer(next, t))
				} else {
					// Leaving the grid is a forbidden action, not a no-op.
					f.Add(-act, -e.vars.varPlayer(p, t-1))
				}
			}
		}
	}
}

// pushTransitions encodes the push actions: a push from p in direction
// d requires a box on the cell ahead and room beyond it; the player
// advances onto the box's old cell while the pushed box advances one
// further. Boxes away from the pushed-from cell keep their positions.
func (e *Encoder) pushTransitions(f *cnf.Formula) {
	for _, p := range e.cells() {
		for t := 1; t < e.vars.steps; t++ {
			for d := 0; d < 4; d++ {
				act := e.vars.varAction(actPush+d, t)
				front, frontOK := e.step(p, d)
				if !frontOK {
					f.Add(-act, -e.vars.varPlayer(p, t-1))
					continue
				}
				dest, destOK := e.step(front, d)
				if !destOK {
					f.Add(-act, -e.vars.varPlayer(p, t-1))
					continue
				}
				someBox := cnf.Clause{-act, -e.vars.varPlayer(p, t-1)}
				for b := range e.level.boxes {
					someBox = append(someBox, e.vars.varBox(b, front, t-1))
					f.Add(-act, -e.vars.varPlayer(p, t-1), -e.vars.varBox(b, front, t-1), e.vars.varPlayer(front, t))
					f.Add(-act, -e.vars.varPlayer(p, t-1), -e.vars.varBox(b, front, t-1), e.vars.varBox(b, dest, t))
					// Frame for box b at any cell other than the
					// pushed-from cell. Under the per-step uniqueness
					// of box positions this never conflicts with the
					// advancement clause above: the two guard
					// literals cannot both be false.
					for _, q := range e.cells() {
						if q != front {
							f.Add(-act, -e.vars.varPlayer(p, t-1), -e.vars.varBox(b, q, t-1), e.vars.varBox(b, q, t))
						}
					}
				}
				f.Add(someBox...)
			}
		}
	}
}

// stayFrames keeps the player and every box in place across a no-op.
func (e *Encoder) stayFrames(f *cnf.Formula) {
	for t := 1; t < e.vars.steps; t++ {
		act := e.vars.varAction(actStay, t)
		for _, p := range e.cells() {
			for b := range e.level.boxes {
				f.Add(-act, -e.vars.varBox(b, p, t-1), e.vars.varBox(b, p, t))
			}
			f.Add(-act, -e.vars.varPlayer(p, t-1), e.vars.varPlayer(p, t))
		}
	}
}

// nonOverlap forbids the player from sharing a cell with a box and two
// distinct boxes from sharing a cell, at every step.
func (e *Encoder) nonOverlap(f *cnf.Formula) {
	for _, p := range e.cells() {
		for t := 0; t < e.vars.steps; t++ {
			for b := range e.level.boxes {
				f.Add(-e.vars.varPlayer(p, t), -e.vars.varBox(b, p, t))
				for b2 := b + 1; b2 < len(e.level.boxes); b2++ {
					f.Add(-e.vars.varBox(b, p, t), -e.vars.varBox(b2, p, t))
				}
			}
		}
	}
}

// uniquePositions states that at every step the player occupies
// exactly one cell, and so does each box.
func (e *Encoder) uniquePositions(f *cnf.Formula) {
	cells := e.cells()
	for t := 0; t < e.vars.steps; t++ {
		lits := make([]int, len(cells))
		for i, p := range cells {
			lits[i] = e.vars.varPlayer(p, t)
		}
		f.ExactlyOne(lits)
		for b := range e.level.boxes {
			blits := make([]int, len(cells))
			for i, p := range cells {
				blits[i] = e.vars.varBox(b, p, t)
			}
			f.ExactlyOne(blits)
		}
	}
}

// goalCondition requires every box's final position to be a goal cell.
// It does not require every goal to be covered.
func (e *Encoder) goalCondition(f *cnf.Formula) {
	for _, p := range e.cells() {
		for b := range e.level.boxes {
			f.Add(-e.vars.varBox(b, p, e.vars.steps-1), e.vars.varGoal(p))
		}
	}
}
