package rockfall

import (
	"errors"

	"github.com/vovakirdan/tui-rockfall/internal/core"
)

// ErrEmptyShape is returned when a shape has no rows or an empty row.
var ErrEmptyShape = errors.New("rockfall: shape must have at least one row and one column")

// Shape is the fixed multi-row body of a sprite.
// Its footprint is len(first row) wide and len(rows) high.
type Shape [][]rune

// NewShape builds a shape from text rows.
func NewShape(rows ...string) (Shape, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyShape
	}
	s := make(Shape, len(rows))
	for i, row := range rows {
		if row == "" {
			return nil, ErrEmptyShape
		}
		s[i] = []rune(row)
	}
	return s, nil
}

// MustShape is like NewShape but panics on an empty shape.
func MustShape(rows ...string) Shape {
	s, err := NewShape(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the length of the first row.
func (s Shape) Width() int {
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Sprite is anything that can be drawn onto and erased from a surface.
// Rendering and collision code works only through this interface.
type Sprite interface {
	Draw(dst core.Surface)
	Clear(dst core.Surface)
	Position() core.Position
	Width() int
	Height() int
}

// Body is a fixed-shape sprite anchored at its top-left corner.
type Body struct {
	shape Shape
	pos   core.Position
	color core.Color
}

// NewBody creates a body with the given shape at pos.
func NewBody(shape Shape, pos core.Position, color core.Color) Body {
	return Body{shape: shape, pos: pos, color: color}
}

// Draw writes every cell of the shape, row by row.
func (b *Body) Draw(dst core.Surface) {
	for row, cells := range b.shape {
		for col, r := range cells {
			dst.SetCell(b.pos.X+col, b.pos.Y+row, r, b.color)
		}
	}
}

// Clear blanks the footprint in the same order Draw visits it.
func (b *Body) Clear(dst core.Surface) {
	for row, cells := range b.shape {
		for col := range cells {
			dst.SetCell(b.pos.X+col, b.pos.Y+row, ' ', core.ColorDefault)
		}
	}
}

// Position returns the top-left corner.
func (b *Body) Position() core.Position {
	return b.pos
}

// Width returns the footprint width.
func (b *Body) Width() int {
	return b.shape.Width()
}

// Height returns the footprint height.
func (b *Body) Height() int {
	return b.shape.Height()
}

// Player is the entity steered by the keyboard.
type Player struct {
	Body
}

// NewPlayer creates a player at pos.
func NewPlayer(shape Shape, pos core.Position) *Player {
	return &Player{Body: NewBody(shape, pos, PlayerColor)}
}

// MoveLeft shifts the player left. There is no clamping to the play area.
func (p *Player) MoveLeft(amount int) {
	p.pos.X -= amount
}

// MoveRight shifts the player right. There is no clamping to the play area.
func (p *Player) MoveRight(amount int) {
	p.pos.X += amount
}

// Obstacle is a falling rock owned by an ObstacleManager.
type Obstacle struct {
	Body
}

// NewObstacle creates an obstacle at pos.
func NewObstacle(shape Shape, pos core.Position) *Obstacle {
	return &Obstacle{Body: NewBody(shape, pos, ObstacleColor)}
}

// Descend moves the obstacle down by amount rows. Bounds are the manager's job.
func (o *Obstacle) Descend(amount int) {
	o.pos.Y += amount
}

var (
	_ Sprite = (*Player)(nil)
	_ Sprite = (*Obstacle)(nil)
)
