package core

// Surface is the draw sink the simulation core renders into. Coordinates are
// integer cell positions; implementations clip out-of-bounds draws silently.
// The core never inspects a surface's state, it only pushes primitives.
type Surface interface {
	// SetPoint colors a single cell.
	SetPoint(x, y int, c Color)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius int, c Color)

	// DrawLine draws a line between two points.
	DrawLine(x0, y0, x1, y1 int, c Color)

	// FillRect fills the rectangle with top-left corner (x, y).
	FillRect(x, y, w, h int, c Color)

	// Blit copies another screen's cells onto this surface with its
	// top-left corner at (x, y). Space cells are treated as transparent.
	Blit(src *Screen, x, y int)
}
