package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, h, a
	ActionRight        // Right arrow, l, d
	ActionQuit         // q, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource yields at most one action per poll.
// Poll must never block: an empty source returns ActionNone immediately.
type InputSource interface {
	Poll() Action
}

// DefaultInputCapacity is the number of pending key presses an InputQueue keeps.
const DefaultInputCapacity = 16

// InputQueue is a bounded FIFO of decoded key presses.
// Platforms push actions as keys arrive and the frame loop polls one per frame.
type InputQueue struct {
	buf  []Action
	head int
	size int
}

// NewInputQueue creates a queue holding up to capacity pending actions.
func NewInputQueue(capacity int) *InputQueue {
	if capacity < 1 {
		capacity = DefaultInputCapacity
	}
	return &InputQueue{buf: make([]Action, capacity)}
}

// Push appends an action. ActionNone is ignored, and the action is dropped
// when the queue is full.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone || q.size == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = a
	q.size++
	return true
}

// Poll removes and returns the oldest pending action, or ActionNone.
func (q *InputQueue) Poll() Action {
	if q.size == 0 {
		return ActionNone
	}
	a := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return a
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return q.size
}

// Reset drops all pending actions.
func (q *InputQueue) Reset() {
	q.head = 0
	q.size = 0
}

var _ InputSource = (*InputQueue)(nil)
