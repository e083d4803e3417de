package sokoban

// A Move is one of the four directions the player can take.
type Move int

const (
	Up = Move(iota)
	Right
	Down
	Left
)

// deltas follows the Up, Right, Down, Left order of the Move constants.
var deltas = [4]struct{ dr, dc int }{
	{-1, 0},
	{0, 1},
	{1, 0},
	{0, -1},
}

func (m Move) String() string {
	switch m {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		panic("invalid move")
	}
}

// Action codes per step. Codes 1..4 move the player in the Up, Right,
// Down, Left directions, 5..8 push a box in the same direction order,
// and 9 is the no-op.
const (
	actMove = 1
	actPush = 5
	actStay = 9

	nbActions = 9
)
