package ui

import (
	"errors"
	"strings"

	"github.com/Mshel/snakeduel/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// Each board cell is drawn two columns wide so squares look square in a terminal.
const cellColumns = 2

const (
	segmentGlyph = "██"
	foodGlyph    = "◖◗"
	emptyGlyph   = "  "
)

var ErrSurfaceNotReady = errors.New("terminal surface not initialised")

type surfaceCell struct {
	glyph  string
	color  game.Color
	filled bool
}

// TerminalSurface is a game.Surface that rasterises the board onto a grid of
// terminal cells. Present turns the current cells into a string frame.
type TerminalSurface struct {
	grid       game.Grid
	cells      [][]surfaceCell
	background game.Color
	message    string
	frame      string
	styles     map[game.Color]lipgloss.Style
}

func NewTerminalSurface(grid game.Grid) (*TerminalSurface, error) {
	if grid.CellSize <= 0 || grid.Cols() == 0 || grid.Rows() == 0 {
		return nil, game.ErrInvalidGrid
	}

	cells := make([][]surfaceCell, grid.Rows())
	for row := range cells {
		cells[row] = make([]surfaceCell, grid.Cols())
	}
	return &TerminalSurface{
		grid:   grid,
		cells:  cells,
		styles: make(map[game.Color]lipgloss.Style),
	}, nil
}

func (s *TerminalSurface) Clear(c game.Color) {
	if c != s.background {
		s.styles = make(map[game.Color]lipgloss.Style)
	}
	s.background = c
	s.message = ""
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col] = surfaceCell{}
		}
	}
}

// FillRect fills every cell the pixel rectangle touches. Parts off the board are dropped.
func (s *TerminalSurface) FillRect(x, y, w, h int, c game.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	size := s.grid.CellSize
	firstCol, lastCol := floorDiv(x, size), floorDiv(x+w-1, size)
	firstRow, lastRow := floorDiv(y, size), floorDiv(y+h-1, size)

	for row := max(firstRow, 0); row <= min(lastRow, s.grid.Rows()-1); row++ {
		for col := max(firstCol, 0); col <= min(lastCol, s.grid.Cols()-1); col++ {
			s.cells[row][col] = surfaceCell{glyph: segmentGlyph, color: c, filled: true}
		}
	}
}

// FillCircle marks every cell whose centre lies inside the circle.
func (s *TerminalSurface) FillCircle(cx, cy, r int, c game.Color) {
	if r < 0 {
		return
	}
	size := s.grid.CellSize
	for row := max(floorDiv(cy-r, size), 0); row <= min(floorDiv(cy+r, size), s.grid.Rows()-1); row++ {
		for col := max(floorDiv(cx-r, size), 0); col <= min(floorDiv(cx+r, size), s.grid.Cols()-1); col++ {
			dx := col*size + size/2 - cx
			dy := row*size + size/2 - cy
			if dx*dx+dy*dy <= r*r {
				s.cells[row][col] = surfaceCell{glyph: foodGlyph, color: c, filled: true}
			}
		}
	}
}

func (s *TerminalSurface) Text(message string) {
	s.message = message
}

func (s *TerminalSurface) Present() error {
	if s.cells == nil {
		return ErrSurfaceNotReady
	}

	width, height := s.Size()
	if s.message != "" {
		s.frame = renderBanner(s.message, width, height, s.background)
		return nil
	}

	var sb strings.Builder
	empty := s.style(s.background).Render(emptyGlyph)
	for row := range s.cells {
		for _, cell := range s.cells[row] {
			if !cell.filled {
				sb.WriteString(empty)
				continue
			}
			sb.WriteString(s.style(cell.color).Render(cell.glyph))
		}
		if row < len(s.cells)-1 {
			sb.WriteString("\n")
		}
	}
	s.frame = sb.String()
	return nil
}

// Frame is the output of the last Present.
func (s *TerminalSurface) Frame() string {
	return s.frame
}

// Size is the frame size in terminal columns and rows.
func (s *TerminalSurface) Size() (int, int) {
	return s.grid.Cols() * cellColumns, s.grid.Rows()
}

func (s *TerminalSurface) style(c game.Color) lipgloss.Style {
	if style, ok := s.styles[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(c))).
		Background(lipgloss.Color(string(s.background)))
	s.styles[c] = style
	return style
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
