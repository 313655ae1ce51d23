package rockfall

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-rockfall/internal/core"
)

// ErrIndexOutOfRange is returned by Remove for an index past the end.
var ErrIndexOutOfRange = errors.New("rockfall: obstacle index out of range")

// ObstacleManager owns the falling obstacles: it moves them, spawns new ones
// and discards those that leave the boundary. It is the only writer of the
// obstacle collection.
type ObstacleManager struct {
	obstacles []*Obstacle
	boundary  core.Boundary
	rng       *rand.Rand
	shape     Shape
	step      int
}

// NewObstacleManager creates a manager for the given play area.
// Spawn columns are drawn from a source seeded with seed.
func NewObstacleManager(seed int64, boundary core.Boundary, shape Shape, step int) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]*Obstacle, 0, 64),
		boundary:  boundary,
		shape:     shape,
		step:      step,
	}
	om.Reset(seed)
	return om
}

// Reset discards all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	for i := range om.obstacles {
		om.obstacles[i] = nil
	}
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Tick erases all obstacles, moves the ones still inside the boundary down,
// drops the rest, spawns one new obstacle on the top row and draws everything.
func (om *ObstacleManager) Tick(dst core.Surface) {
	for _, o := range om.obstacles {
		o.Clear(dst)
	}

	// Removal compacts in place, so the index only advances past survivors.
	for i := 0; i < len(om.obstacles); {
		o := om.obstacles[i]
		if om.boundary.Contains(o.Position()) {
			o.Descend(om.step)
			i++
			continue
		}
		_ = om.Remove(i) // i is in range here
	}

	om.spawn()

	for _, o := range om.obstacles {
		o.Draw(dst)
	}
}

// spawn appends a new obstacle on the top row at a random column in [0, width).
func (om *ObstacleManager) spawn() {
	x := 0
	if w := om.boundary.Width(); w > 0 {
		x = om.rng.Intn(w)
	}
	om.obstacles = append(om.obstacles, NewObstacle(om.shape, core.Pos(x, om.boundary.Top)))
}

// Remove deletes the obstacle at index, shifting later obstacles down by one.
func (om *ObstacleManager) Remove(index int) error {
	if index < 0 || index >= len(om.obstacles) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(om.obstacles))
	}
	copy(om.obstacles[index:], om.obstacles[index+1:])
	last := len(om.obstacles) - 1
	om.obstacles[last] = nil
	om.obstacles = om.obstacles[:last]
	return nil
}

// List returns the live obstacles in insertion order.
// The slice is a copy but the obstacles are shared, so positions read through
// it are always current. Indices are invalidated by the next Tick.
func (om *ObstacleManager) List() []*Obstacle {
	out := make([]*Obstacle, len(om.obstacles))
	copy(out, om.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

// Boundary returns the play area the manager enforces.
func (om *ObstacleManager) Boundary() core.Boundary {
	return om.boundary
}

// Collides reports whether any obstacle occupies a cell of target's footprint.
// Every obstacle and every footprint cell is checked.
func Collides(target Sprite, obstacles []*Obstacle) bool {
	hit := false
	origin := target.Position()
	for _, o := range obstacles {
		for k := 0; k < target.Height(); k++ {
			for j := 0; j < target.Width(); j++ {
				if o.Position().Equal(origin.Add(core.Pos(j, k))) {
					hit = true
				}
			}
		}
	}
	return hit
}
