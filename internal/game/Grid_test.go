package game

import (
	"errors"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, cellSize int
		wantErr                 bool
	}{
		{"classic", 700, 700, 25, false},
		{"rectangular", 800, 400, 20, false},
		{"width not multiple", 710, 700, 25, true},
		{"height not multiple", 700, 710, 25, true},
		{"zero cell", 700, 700, 0, true},
		{"negative width", -25, 700, 25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.width, tt.height, tt.cellSize)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGrid) {
					t.Fatalf("expected ErrInvalidGrid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGridGeometry(t *testing.T) {
	grid := testGrid(t)

	if grid.Cols() != 28 || grid.Rows() != 28 {
		t.Fatalf("expected 28x28 cells, got %dx%d", grid.Cols(), grid.Rows())
	}
	if got := grid.CellAt(3, 4); got != (Position{X: 75, Y: 100}) {
		t.Fatalf("unexpected cell position %v", got)
	}
	if got := grid.Snap(110, 149); got != (Position{X: 100, Y: 125}) {
		t.Fatalf("unexpected snapped position %v", got)
	}
	if got := grid.Step(Position{X: 675, Y: 0}, Right); grid.Contains(got) {
		t.Fatalf("step past the right edge should leave the board, got %v", got)
	}
}

func TestGridSpawnPoints(t *testing.T) {
	grid := testGrid(t)

	if got := grid.SpawnPoint(PlayerOne); got != (Position{X: 175, Y: 350}) {
		t.Fatalf("unexpected player one spawn %v", got)
	}
	if got := grid.SpawnPoint(PlayerTwo); got != (Position{X: 525, Y: 350}) {
		t.Fatalf("unexpected player two spawn %v", got)
	}

	odd, err := NewGrid(110, 50, 10)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	for _, id := range []PlayerID{PlayerOne, PlayerTwo} {
		p := odd.SpawnPoint(id)
		if p.X%10 != 0 || p.Y%10 != 0 || !odd.Contains(p) {
			t.Fatalf("spawn %v is not a board cell", p)
		}
	}
}
