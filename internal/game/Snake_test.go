package game

import "testing"

const testCell = 25

func testGrid(t *testing.T) Grid {
	t.Helper()
	grid, err := NewGrid(700, 700, testCell)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return grid
}

func TestSnakeMoveOneCell(t *testing.T) {
	snake := NewSnake(PlayerOne, "p1", "46", Position{X: 100, Y: 100}, testCell)
	snake.SetDirection(Right)

	snake.Move()

	if snake.Len() != 1 {
		t.Fatalf("expected length 1, got %d", snake.Len())
	}
	if got := snake.Head(); got != (Position{X: 125, Y: 100}) {
		t.Fatalf("expected head at (125,100), got %v", got)
	}
}

func TestSnakeMoveEachDirection(t *testing.T) {
	start := Position{X: 100, Y: 100}
	tests := []struct {
		dir  Direction
		want Position
	}{
		{Up, Position{X: 100, Y: 75}},
		{Down, Position{X: 100, Y: 125}},
		{Left, Position{X: 75, Y: 100}},
		{Right, Position{X: 125, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			snake := NewSnake(PlayerOne, "p1", "46", start, testCell)
			snake.SetDirection(tt.dir)
			snake.Move()
			if got := snake.Head(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSnakeGrowIsDeferredToNextMove(t *testing.T) {
	snake := NewSnake(PlayerOne, "p1", "46", Position{X: 100, Y: 100}, testCell)
	snake.SetDirection(Right)

	snake.Grow()
	if snake.Len() != 1 {
		t.Fatalf("grow must not change length immediately, got %d", snake.Len())
	}
	if !snake.Growing() {
		t.Fatal("expected growing flag to be set")
	}

	snake.Move()
	if snake.Len() != 2 {
		t.Fatalf("expected length 2 after move, got %d", snake.Len())
	}
	if snake.Growing() {
		t.Fatal("expected growing flag to be cleared by the move")
	}
	want := []Position{{X: 125, Y: 100}, {X: 100, Y: 100}}
	for i, p := range want {
		if snake.Body[i] != p {
			t.Fatalf("segment %d: expected %v, got %v", i, p, snake.Body[i])
		}
	}

	snake.Move()
	if snake.Len() != 2 {
		t.Fatalf("expected length to stay 2, got %d", snake.Len())
	}
}

func TestSnakeCheckCollision(t *testing.T) {
	grid := testGrid(t)
	far := &Snake{Body: []Position{{X: 0, Y: 0}}}

	tests := []struct {
		name  string
		body  []Position
		other *Snake
		want  bool
	}{
		{"free cell", []Position{{X: 100, Y: 100}}, far, false},
		{"right wall", []Position{{X: 700, Y: 100}}, far, true},
		{"left wall", []Position{{X: -25, Y: 100}}, far, true},
		{"top wall", []Position{{X: 100, Y: -25}}, far, true},
		{"bottom wall", []Position{{X: 100, Y: 700}}, far, true},
		{"last cell is on the board", []Position{{X: 675, Y: 675}}, far, false},
		{"self", []Position{{X: 100, Y: 100}, {X: 100, Y: 125}, {X: 100, Y: 100}}, far, true},
		{"other body", []Position{{X: 100, Y: 100}}, &Snake{Body: []Position{{X: 50, Y: 50}, {X: 100, Y: 100}}}, true},
		{"other head", []Position{{X: 100, Y: 100}}, &Snake{Body: []Position{{X: 100, Y: 100}}}, true},
		{"no other", []Position{{X: 100, Y: 100}}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := &Snake{Body: tt.body, cellSize: testCell}
			if got := snake.CheckCollision(grid, tt.other); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSnakeCheckCollisionIsPure(t *testing.T) {
	grid := testGrid(t)
	snake := &Snake{Body: []Position{{X: 100, Y: 100}, {X: 100, Y: 125}, {X: 100, Y: 100}}, growing: true}
	other := &Snake{Body: []Position{{X: 300, Y: 300}}}

	first := snake.CheckCollision(grid, other)
	second := snake.CheckCollision(grid, other)

	if first != second {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
	if len(snake.Body) != 3 || len(other.Body) != 1 || !snake.growing {
		t.Fatal("collision check mutated a snake")
	}
}

func TestSnakeCanTurn(t *testing.T) {
	snake := NewSnake(PlayerOne, "p1", "46", Position{X: 100, Y: 100}, testCell)

	if snake.CanTurn(Down) {
		t.Fatal("reversal from up to down must be rejected")
	}
	if !snake.CanTurn(Left) || !snake.CanTurn(Right) || !snake.CanTurn(Up) {
		t.Fatal("expected perpendicular and straight turns to be allowed")
	}
	if snake.CanTurn(Direction{Dx: 1, Dy: 1}) {
		t.Fatal("diagonal direction must be rejected")
	}

	// Turned left but not yet moved: down is still a reversal of the last move.
	snake.SetDirection(Left)
	if snake.CanTurn(Down) {
		t.Fatal("turn back into the neck must be rejected before the next move")
	}

	snake.Move()
	if !snake.CanTurn(Down) {
		t.Fatal("down is legal once the snake has moved left")
	}
}

type recordingSurface struct {
	cleared int
	rects   []Position
	circles []Position
	texts   []string
	present int
	calls   []string
	err     error
}

func (s *recordingSurface) Clear(Color) {
	s.cleared++
	s.calls = append(s.calls, "clear")
}

func (s *recordingSurface) FillRect(x, y, w, h int, c Color) {
	s.rects = append(s.rects, Position{X: x, Y: y})
	s.calls = append(s.calls, "rect:"+string(c))
}

func (s *recordingSurface) FillCircle(cx, cy, r int, c Color) {
	s.circles = append(s.circles, Position{X: cx, Y: cy})
	s.calls = append(s.calls, "circle")
}

func (s *recordingSurface) Text(message string) {
	s.texts = append(s.texts, message)
	s.calls = append(s.calls, "text")
}

func (s *recordingSurface) Present() error {
	s.present++
	s.calls = append(s.calls, "present")
	return s.err
}

func TestSnakeDrawOneRectPerSegment(t *testing.T) {
	snake := &Snake{Body: []Position{{X: 0, Y: 0}, {X: 25, Y: 0}, {X: 50, Y: 0}}, cellSize: testCell}
	surface := &recordingSurface{}

	snake.Draw(surface)

	if len(surface.rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(surface.rects))
	}
	for i, p := range snake.Body {
		if surface.rects[i] != p {
			t.Fatalf("rect %d: expected %v, got %v", i, p, surface.rects[i])
		}
	}
}
