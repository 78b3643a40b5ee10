package game

// Direction is a unit step on the grid, expressed in cells.
type Direction struct {
	Dx, Dy int
}

var (
	Up    = Direction{Dx: 0, Dy: -1}
	Down  = Direction{Dx: 0, Dy: 1}
	Left  = Direction{Dx: -1, Dy: 0}
	Right = Direction{Dx: 1, Dy: 0}
)

var Directions = []Direction{Up, Down, Left, Right}

// IsValid reports whether d is one of the four axis-aligned unit steps.
func (d Direction) IsValid() bool {
	return (d.Dx == 0) != (d.Dy == 0) && abs(d.Dx)+abs(d.Dy) == 1
}

// IsReverseOf reports whether d points straight back along other.
func (d Direction) IsReverseOf(other Direction) bool {
	return d.Dx+other.Dx == 0 && d.Dy+other.Dy == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Position is the top-left pixel of a cell.
type Position struct {
	X, Y int
}

// Color is an ANSI 256 code or a #rrggbb hex string, the same notation lipgloss accepts.
type Color string

// PlayerID indexes the two snakes of a round.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

func (p PlayerID) IsValid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Other returns the opponent of p.
func (p PlayerID) Other() PlayerID {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func containsPosition(positions []Position, p Position) bool {
	for _, candidate := range positions {
		if candidate == p {
			return true
		}
	}
	return false
}
