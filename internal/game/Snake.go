package game

// Snake is one player's body on the board. Body[0] is the head.
type Snake struct {
	ID        PlayerID
	Name      string
	Color     Color
	Body      []Position
	Direction Direction

	// heading is the direction of the last completed move; the neck lies opposite it.
	heading  Direction
	growing  bool
	cellSize int
}

func NewSnake(id PlayerID, name string, color Color, spawn Position, cellSize int) *Snake {
	return &Snake{
		ID:        id,
		Name:      name,
		Color:     color,
		Body:      []Position{spawn},
		Direction: Up,
		heading:   Up,
		cellSize:  cellSize,
	}
}

func (s *Snake) Head() Position {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move steps the head one cell forward. The tail follows unless a Grow is pending,
// in which case the body keeps its tail and the pending growth is consumed.
func (s *Snake) Move() {
	head := s.Body[0]
	newHead := Position{
		X: head.X + s.Direction.Dx*s.cellSize,
		Y: head.Y + s.Direction.Dy*s.cellSize,
	}

	s.Body = append([]Position{newHead}, s.Body...)
	if s.growing {
		s.growing = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
	s.heading = s.Direction
}

// Grow marks the snake to lengthen by one on its next Move.
func (s *Snake) Grow() {
	s.growing = true
}

func (s *Snake) Growing() bool {
	return s.growing
}

// SetDirection sets the facing direction unconditionally. Callers apply the
// no-reverse rule through CanTurn first.
func (s *Snake) SetDirection(d Direction) {
	s.Direction = d
}

// CanTurn reports whether d is a legal turn: it must not reverse the current
// direction, nor the direction of the last move.
func (s *Snake) CanTurn(d Direction) bool {
	if !d.IsValid() {
		return false
	}
	return !d.IsReverseOf(s.Direction) && !d.IsReverseOf(s.heading)
}

// CheckCollision reports whether the head is off the board, on the snake's own
// body, or anywhere on other (its head included). It does not mutate anything.
func (s *Snake) CheckCollision(grid Grid, other *Snake) bool {
	head := s.Head()
	if !grid.Contains(head) {
		return true
	}
	if containsPosition(s.Body[1:], head) {
		return true
	}
	if other != nil && containsPosition(other.Body, head) {
		return true
	}
	return false
}

func (s *Snake) Draw(surface Surface) {
	for _, segment := range s.Body {
		surface.FillRect(segment.X, segment.Y, s.cellSize, s.cellSize, s.Color)
	}
}
