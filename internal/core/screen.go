package core

import "strings"

// Cell is a single screen cell: a rune plus its palette color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer that games render into.
// Coordinates are (x, y) with origin at top-left.
type Screen struct {
	W, H  int
	cells []Cell
}

// NewScreen creates a screen buffer of the given size, filled with spaces.
func NewScreen(w, h int) *Screen {
	s := &Screen{W: w, H: h, cells: make([]Cell, w*h)}
	s.Clear()
	return s
}

// Clear resets every cell to a default-colored space.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', Color: ColorDefault}
	}
}

// Set writes a rune with the default color. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell writes a rune with a color. Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return
	}
	s.cells[y*s.W+x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at (x, y), or a default space when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y*s.W+x]
}

// DrawText writes a string starting at (x, y) with the given color.
// Text past the right edge is clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		s.SetCell(x+i, y, r, c)
	}
}

// Resize reallocates the buffer for a new terminal size.
// Contents are cleared.
func (s *Screen) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.W, s.H = w, h
	s.cells = make([]Cell, w*h)
	s.Clear()
}

// String returns the buffer as plain text, one line per row, colors
// dropped. Used for screenshots and tests.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.W + 1) * s.H)
	for i, r := range s.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r)
	}
	return sb.String()
}

// Rows returns the buffer as strings, one per row, colors dropped.
// Used by tests and plain-text rendering.
func (s *Screen) Rows() []string {
	rows := make([]string, s.H)
	buf := make([]rune, s.W)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			buf[x] = s.cells[y*s.W+x].Rune
		}
		rows[y] = string(buf)
	}
	return rows
}
