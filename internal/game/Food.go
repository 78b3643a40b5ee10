package game

import "math/rand"

type Food struct {
	Position Position
	Color    Color
}

// SpawnFood places food on a uniformly random cell. With avoid set, cells in
// occupied are excluded; if every cell is occupied the pick falls back to the
// whole board.
func SpawnFood(grid Grid, rng *rand.Rand, color Color, occupied []Position, avoid bool) Food {
	if avoid {
		free := freeCells(grid, occupied)
		if len(free) > 0 {
			return Food{Position: free[rng.Intn(len(free))], Color: color}
		}
	}

	return Food{
		Position: grid.CellAt(rng.Intn(grid.Cols()), rng.Intn(grid.Rows())),
		Color:    color,
	}
}

func freeCells(grid Grid, occupied []Position) []Position {
	taken := make(map[Position]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	free := make([]Position, 0, grid.Cols()*grid.Rows())
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell := grid.CellAt(col, row)
			if _, ok := taken[cell]; !ok {
				free = append(free, cell)
			}
		}
	}
	return free
}

func (f Food) Draw(surface Surface, cellSize int) {
	half := cellSize / 2
	surface.FillCircle(f.Position.X+half, f.Position.Y+half, half, f.Color)
}
