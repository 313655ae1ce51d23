// Package core provides fundamental types and utilities for the rockfall game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a cell address on the character grid.
// X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the componentwise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the componentwise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Equal reports whether both coordinates match exactly.
func (p Position) Equal(o Position) bool {
	return p == o
}

// Boundary is the rectangular play area in grid coordinates.
type Boundary struct {
	Top, Bottom int
	Left, Right int
}

// NewBoundary creates the play area for a surface of the given size.
// Bottom and Right are the row and column counts, so the last row and
// column of the surface are Bottom-1 and Right-1.
func NewBoundary(width, height int) Boundary {
	return Boundary{Top: 0, Bottom: height, Left: 0, Right: width}
}

// Width returns Right - Left.
func (b Boundary) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Boundary) Height() int {
	return b.Bottom - b.Top
}

// Contains reports whether p lies inside the boundary.
// All four edges are inclusive, so a point at X == Right or Y == Bottom is
// still inside even though spawn placement never reaches it.
func (b Boundary) Contains(p Position) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
