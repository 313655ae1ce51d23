package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.a.String())
	}
}

func TestInputQueueEmptyPoll(t *testing.T) {
	q := NewInputQueue(4)
	assert.Equal(t, ActionNone, q.Poll())
	assert.Equal(t, 0, q.Len())
}

func TestInputQueueFIFO(t *testing.T) {
	q := NewInputQueue(4)
	require.True(t, q.Push(ActionLeft))
	require.True(t, q.Push(ActionRight))
	require.True(t, q.Push(ActionQuit))

	assert.Equal(t, ActionLeft, q.Poll())
	assert.Equal(t, ActionRight, q.Poll())
	assert.Equal(t, ActionQuit, q.Poll())
	assert.Equal(t, ActionNone, q.Poll())
}

func TestInputQueueDropsWhenFull(t *testing.T) {
	q := NewInputQueue(2)
	assert.True(t, q.Push(ActionLeft))
	assert.True(t, q.Push(ActionLeft))
	assert.False(t, q.Push(ActionRight), "full queue must drop")
	assert.Equal(t, 2, q.Len())

	// Wrap around after draining one slot
	assert.Equal(t, ActionLeft, q.Poll())
	assert.True(t, q.Push(ActionRight))
	assert.Equal(t, ActionLeft, q.Poll())
	assert.Equal(t, ActionRight, q.Poll())
}

func TestInputQueueIgnoresNone(t *testing.T) {
	q := NewInputQueue(2)
	assert.False(t, q.Push(ActionNone))
	assert.Equal(t, 0, q.Len())
}

func TestInputQueueReset(t *testing.T) {
	q := NewInputQueue(0)
	q.Push(ActionLeft)
	q.Push(ActionRight)
	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, ActionNone, q.Poll())
}
