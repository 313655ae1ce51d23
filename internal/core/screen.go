package core

import (
	"strings"
)

// Surface is the character grid entities draw onto.
// Writes are not visible until Commit publishes them as one frame.
type Surface interface {
	// SetCell writes a single cell. Out-of-bounds writes are ignored.
	SetCell(x, y int, r rune, c Color)

	// Commit publishes everything written since the previous commit.
	Commit()
}

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a double-buffered 2D character buffer.
// Games draw into the pending buffer through SetCell; Commit copies it to the
// committed buffer, which is what the platform renders. A half-drawn frame is
// therefore never shown.
type Screen struct {
	width     int
	height    int
	pending   [][]Cell
	committed [][]Cell
	commits   int
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.pending = allocate(width, height)
	s.committed = allocate(width, height)
	return s
}

// allocate creates blank cell storage.
func allocate(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = blankCell
		}
	}
	return cells
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the pending buffer with spaces.
func (s *Screen) Clear() {
	for y := range s.pending {
		for x := range s.pending[y] {
			s.pending[y][x] = blankCell
		}
	}
}

// SetCell places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.pending[y][x] = Cell{Rune: r, Color: c}
}

// Set places a rune with the default color at the given position.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// Get returns the pending rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	return s.pending[y][x].Rune
}

// Committed returns the committed cell at the given position.
func (s *Screen) Committed(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.committed[y][x]
}

// Commit publishes the pending buffer.
func (s *Screen) Commit() {
	for y := range s.pending {
		copy(s.committed[y], s.pending[y])
	}
	s.commits++
}

// Commits returns how many frames have been committed.
func (s *Screen) Commits() int {
	return s.commits
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// String converts the committed buffer to a plain string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.committed[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the committed row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.committed[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}
