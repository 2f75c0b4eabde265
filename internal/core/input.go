package core

import "strings"

// Direction is a single directional input flag.
type Direction uint8

const (
	Forward  Direction = 1 << iota // W, Up arrow - toward the goal line (-Z)
	Backward                       // S, Down arrow - away from the goal line (+Z)
	Left                           // A, Left arrow - (-X)
	Right                          // D, Right arrow - (+X)
)

// AllDirections lists every direction in display order.
var AllDirections = []Direction{Forward, Backward, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// InputState is the set of directional flags held during one frame.
// It is a value: the input collaborator builds a fresh one per frame and
// the simulation only reads it.
type InputState struct {
	held Direction
}

// NewInputState creates an input state with the given directions held.
func NewInputState(dirs ...Direction) InputState {
	var s InputState
	for _, d := range dirs {
		s.held |= d
	}
	return s
}

// With returns a copy of the state with d also held.
func (s InputState) With(d Direction) InputState {
	s.held |= d
	return s
}

// Held returns true if d is held in this frame.
func (s InputState) Held(d Direction) bool {
	return s.held&d != 0
}

// Empty returns true if no direction is held.
func (s InputState) Empty() bool {
	return s.held == 0
}

// String lists the held directions, e.g. "forward+left".
func (s InputState) String() string {
	if s.Empty() {
		return "none"
	}
	parts := make([]string, 0, len(AllDirections))
	for _, d := range AllDirections {
		if s.Held(d) {
			parts = append(parts, d.String())
		}
	}
	return strings.Join(parts, "+")
}
