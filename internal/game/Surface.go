package game

// Surface is the drawing target a Round renders onto once per tick.
// Coordinates are in board pixels; implementations scale as they see fit.
type Surface interface {
	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
	FillCircle(cx, cy, r int, c Color)
	// Text shows a centred message in place of the board.
	Text(message string)
	// Present flushes the frame. An error here means the surface is gone.
	Present() error
}
