package game

import (
	"errors"
	"fmt"
)

var ErrInvalidGrid = errors.New("invalid grid")

// Grid is the board geometry in pixels. It carries no state.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidGrid, cellSize)
	}
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidGrid, width, height)
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d is not a multiple of cell size %d", ErrInvalidGrid, width, height, cellSize)
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}, nil
}

func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellAt returns the position of the cell at column col and row row.
func (g Grid) CellAt(col, row int) Position {
	return Position{X: col * g.CellSize, Y: row * g.CellSize}
}

// Snap rounds a pixel coordinate down onto the cell that holds it.
func (g Grid) Snap(x, y int) Position {
	return Position{X: x - x%g.CellSize, Y: y - y%g.CellSize}
}

// Step moves p one cell in direction d. The result may be off the board.
func (g Grid) Step(p Position, d Direction) Position {
	return Position{X: p.X + d.Dx*g.CellSize, Y: p.Y + d.Dy*g.CellSize}
}

// SpawnPoint is where player id starts a round: a quarter of the way in from
// its side of the board, vertically centred.
func (g Grid) SpawnPoint(id PlayerID) Position {
	if id == PlayerTwo {
		return g.Snap(3*g.Width/4, g.Height/2)
	}
	return g.Snap(g.Width/4, g.Height/2)
}
