package sokoban

import (
	"fmt"

	"github.com/pkg/errors"
)

// Grid markers understood by ParseLevel.
const (
	markerPlayer       = 'P'
	markerBox          = 'B'
	markerGoal         = 'G'
	markerWall         = '#'
	markerEmpty        = '.'
	markerBoxOnGoal    = '*'
	markerPlayerOnGoal = '+'
)

// An InstanceError reports a malformed level.
type InstanceError struct {
	Reason string
}

func (e *InstanceError) Error() string {
	return "invalid level: " + e.Reason
}

type pos struct {
	r, c int
}

// A Level is an immutable problem instance: grid dimensions, wall and
// goal cells, the player start and the box starts.
type Level struct {
	rows, cols int
	wall       []bool // row-major
	goal       []bool // row-major
	player     pos
	boxes      []pos
}

// ParseLevel builds a Level from one string per grid row. Every row
// must have the same length, exactly one player and at least one box
// must be present, and only the documented markers are accepted.
func ParseLevel(lines []string) (*Level, error) {
	if len(lines) == 0 {
		return nil, &InstanceError{Reason: "empty grid"}
	}
	l := &Level{
		rows: len(lines),
		cols: len(lines[0]),
		wall: make([]bool, len(lines)*len(lines[0])),
		goal: make([]bool, len(lines)*len(lines[0])),
	}
	if l.cols == 0 {
		return nil, &InstanceError{Reason: "empty grid row"}
	}
	player := false
	for r, line := range lines {
		if len(line) != l.cols {
			return nil, &InstanceError{Reason: fmt.Sprintf("row %d has %d cells, want %d", r, len(line), l.cols)}
		}
		for c, marker := range line {
			switch marker {
			case markerEmpty:
			case markerWall:
				l.wall[r*l.cols+c] = true
			case markerGoal:
				l.goal[r*l.cols+c] = true
			case markerPlayer:
				if player {
					return nil, &InstanceError{Reason: fmt.Sprintf("second player at (%d,%d)", r, c)}
				}
				player = true
				l.player = pos{r, c}
			case markerPlayerOnGoal:
				if player {
					return nil, &InstanceError{Reason: fmt.Sprintf("second player at (%d,%d)", r, c)}
				}
				player = true
				l.player = pos{r, c}
				l.goal[r*l.cols+c] = true
			case markerBox:
				l.boxes = append(l.boxes, pos{r, c})
			case markerBoxOnGoal:
				l.boxes = append(l.boxes, pos{r, c})
				l.goal[r*l.cols+c] = true
			default:
				return nil, &InstanceError{Reason: fmt.Sprintf("unknown marker %q at (%d,%d)", marker, r, c)}
			}
		}
	}
	if !player {
		return nil, &InstanceError{Reason: "no player start"}
	}
	if len(l.boxes) == 0 {
		return nil, &InstanceError{Reason: "no box"}
	}
	return l, nil
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int { return l.rows }

// Cols returns the number of grid columns.
func (l *Level) Cols() int { return l.cols }

// Boxes returns the number of boxes.
func (l *Level) Boxes() int { return len(l.boxes) }

func (l *Level) inBounds(p pos) bool {
	return p.r >= 0 && p.r < l.rows && p.c >= 0 && p.c < l.cols
}

func (l *Level) isWall(p pos) bool {
	return l.wall[p.r*l.cols+p.c]
}

func (l *Level) isGoal(p pos) bool {
	return l.goal[p.r*l.cols+p.c]
}

// Apply replays a plan against the real game rules, independently of
// any encoding: each move must stay on the grid and off walls, a move
// into a box is a push and needs a free on-grid destination for the
// box, and after the last move every box must rest on a goal. It
// returns nil when the plan is a valid solution.
func (l *Level) Apply(plan []Move) error {
	player := l.player
	boxes := append([]pos(nil), l.boxes...)
	boxAt := func(p pos) int {
		for i, b := range boxes {
			if b == p {
				return i
			}
		}
		return -1
	}

	for i, m := range plan {
		d := deltas[m]
		next := pos{player.r + d.dr, player.c + d.dc}
		if !l.inBounds(next) || l.isWall(next) {
			return errors.Errorf("step %d: move %s leaves the grid or hits a wall", i+1, m)
		}
		if b := boxAt(next); b >= 0 {
			dest := pos{next.r + d.dr, next.c + d.dc}
			if !l.inBounds(dest) || l.isWall(dest) || boxAt(dest) >= 0 {
				return errors.Errorf("step %d: push %s has no room for the box", i+1, m)
			}
			boxes[b] = dest
		}
		player = next
	}
	for i, b := range boxes {
		if !l.isGoal(b) {
			return errors.Errorf("box %d ends at (%d,%d), not a goal", i, b.r, b.c)
		}
	}
	return nil
}
