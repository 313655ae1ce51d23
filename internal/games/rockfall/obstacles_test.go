package rockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rockfall/internal/core"
)

func newTestManager(seed int64, w, h int) (*ObstacleManager, *core.Screen) {
	screen := core.NewScreen(w, h)
	om := NewObstacleManager(seed, core.NewBoundary(w, h), MustShape("O"), 1)
	return om, screen
}

func TestTickOnEmptyManagerSpawnsOne(t *testing.T) {
	const width = 30
	for seed := int64(1); seed <= 50; seed++ {
		om, screen := newTestManager(seed, width, 10)
		om.Tick(screen)

		rocks := om.List()
		require.Len(t, rocks, 1)
		pos := rocks[0].Position()
		assert.Equal(t, om.Boundary().Top, pos.Y)
		assert.GreaterOrEqual(t, pos.X, 0)
		assert.Less(t, pos.X, width)
		assert.Equal(t, 'O', screen.Get(pos.X, pos.Y), "new obstacle is drawn")
	}
}

func TestTickDescendsAndRedraws(t *testing.T) {
	om, screen := newTestManager(7, 20, 10)
	om.Tick(screen)
	first := om.List()[0]
	before := first.Position()

	om.Tick(screen)

	assert.Equal(t, before.Add(core.Pos(0, 1)), first.Position())
	assert.Equal(t, 2, om.Len())
	assert.Equal(t, 'O', screen.Get(first.Position().X, first.Position().Y))

	// The old cell is blank unless the new spawn landed on it
	spawn := om.List()[1].Position()
	if spawn != before {
		assert.Equal(t, ' ', screen.Get(before.X, before.Y))
	}
}

func TestTickIsDeterministicForSeed(t *testing.T) {
	run := func() []core.Position {
		om, screen := newTestManager(99, 40, 30)
		for i := 0; i < 20; i++ {
			om.Tick(screen)
		}
		var out []core.Position
		for _, o := range om.List() {
			out = append(out, o.Position())
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestRemovePreservesOrder(t *testing.T) {
	om, screen := newTestManager(3, 20, 10)
	om.Tick(screen)
	om.Tick(screen)
	om.Tick(screen)

	rocks := om.List()
	require.Len(t, rocks, 3)
	o0, o1, o2 := rocks[0], rocks[1], rocks[2]

	require.NoError(t, om.Remove(1))

	assert.Equal(t, []*Obstacle{o0, o2}, om.List())
	assert.NotContains(t, om.List(), o1)
}

func TestRemoveOutOfRange(t *testing.T) {
	om, screen := newTestManager(3, 20, 10)
	om.Tick(screen)

	assert.ErrorIs(t, om.Remove(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, om.Remove(-1), ErrIndexOutOfRange)
	assert.Equal(t, 1, om.Len(), "failed removal leaves collection intact")

	require.NoError(t, om.Remove(0))
	assert.ErrorIs(t, om.Remove(0), ErrIndexOutOfRange)
}

func TestObstacleBelowBoundaryIsRemoved(t *testing.T) {
	om, screen := newTestManager(11, 20, 10)
	om.Tick(screen)
	rock := om.List()[0]

	// Handles are views: mutation is seen by the manager's next tick
	rock.Descend(om.Boundary().Bottom + 1 - rock.Position().Y)
	require.Greater(t, rock.Position().Y, om.Boundary().Bottom)

	om.Tick(screen)

	assert.NotContains(t, om.List(), rock)
	assert.Equal(t, 1, om.Len())
}

func TestObstacleOnBottomEdgeStillFalls(t *testing.T) {
	om, screen := newTestManager(11, 20, 10)
	om.Tick(screen)
	rock := om.List()[0]
	rock.Descend(om.Boundary().Bottom - rock.Position().Y)

	om.Tick(screen)
	assert.Contains(t, om.List(), rock, "bottom edge is inclusive")
	assert.Equal(t, om.Boundary().Bottom+1, rock.Position().Y)

	om.Tick(screen)
	assert.NotContains(t, om.List(), rock)
}

func TestAdjacentRemovalsAreNotSkipped(t *testing.T) {
	om, screen := newTestManager(5, 20, 10)
	for i := 0; i < 4; i++ {
		om.Tick(screen)
	}
	rocks := om.List()
	require.Len(t, rocks, 4)

	// Push the first two out; the survivors must each fall exactly once
	rocks[0].Descend(100)
	rocks[1].Descend(100)
	y2, y3 := rocks[2].Position().Y, rocks[3].Position().Y

	om.Tick(screen)

	live := om.List()
	require.Len(t, live, 3)
	assert.Equal(t, rocks[2], live[0])
	assert.Equal(t, rocks[3], live[1])
	assert.Equal(t, y2+1, rocks[2].Position().Y)
	assert.Equal(t, y3+1, rocks[3].Position().Y)
}

func TestObstaclesEventuallyLeave(t *testing.T) {
	const height = 6
	om, screen := newTestManager(21, 15, height)

	// Each obstacle lives for height+2 ticks, so the count levels off
	for i := 0; i < 50; i++ {
		om.Tick(screen)
		for _, o := range om.List() {
			assert.LessOrEqual(t, o.Position().Y, height+1)
		}
	}
	assert.Equal(t, height+2, om.Len())
}

func TestListIsACopy(t *testing.T) {
	om, screen := newTestManager(1, 10, 10)
	om.Tick(screen)

	list := om.List()
	list[0] = nil
	assert.NotNil(t, om.List()[0])
}

func TestManagerReset(t *testing.T) {
	om, screen := newTestManager(1, 10, 10)
	om.Tick(screen)
	om.Tick(screen)

	om.Reset(1)
	assert.Zero(t, om.Len())
}

func TestCollides(t *testing.T) {
	player := NewPlayer(MustShape("*"), core.Pos(5, 5))

	tests := []struct {
		name     string
		rocks    []core.Position
		expected bool
	}{
		{"no obstacles", nil, false},
		{"same cell", []core.Position{core.Pos(5, 5)}, true},
		{"one below", []core.Position{core.Pos(5, 6)}, false},
		{"one right", []core.Position{core.Pos(6, 5)}, false},
		{"hit after misses", []core.Position{core.Pos(0, 0), core.Pos(9, 9), core.Pos(5, 5)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rocks []*Obstacle
			for _, p := range tc.rocks {
				rocks = append(rocks, NewObstacle(MustShape("O"), p))
			}
			assert.Equal(t, tc.expected, Collides(player, rocks))
		})
	}
}

func TestCollidesWholeFootprint(t *testing.T) {
	player := NewPlayer(MustShape("/\\", "||"), core.Pos(10, 10))

	for _, p := range []core.Position{core.Pos(10, 10), core.Pos(11, 10), core.Pos(10, 11), core.Pos(11, 11)} {
		assert.True(t, Collides(player, []*Obstacle{NewObstacle(MustShape("O"), p)}), "rock at %v", p)
	}
	for _, p := range []core.Position{core.Pos(12, 10), core.Pos(10, 12), core.Pos(9, 10)} {
		assert.False(t, Collides(player, []*Obstacle{NewObstacle(MustShape("O"), p)}), "rock at %v", p)
	}
}
