package core

import "testing"

func TestInputStateHeld(t *testing.T) {
	s := NewInputState(Forward, Left)

	if !s.Held(Forward) || !s.Held(Left) {
		t.Error("Forward and Left should be held")
	}
	if s.Held(Backward) || s.Held(Right) {
		t.Error("Backward and Right should not be held")
	}
	if s.Empty() {
		t.Error("state with held keys should not be empty")
	}
}

func TestInputStateWithIsCopy(t *testing.T) {
	base := NewInputState(Forward)
	more := base.With(Backward)

	if base.Held(Backward) {
		t.Error("With() must not mutate the receiver")
	}
	if !more.Held(Forward) || !more.Held(Backward) {
		t.Error("With() should keep existing flags and add the new one")
	}
}

func TestInputStateString(t *testing.T) {
	tests := []struct {
		name     string
		s        InputState
		expected string
	}{
		{"empty", NewInputState(), "none"},
		{"single", NewInputState(Right), "right"},
		{"display order", NewInputState(Right, Forward), "forward+right"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.String(); got != tc.expected {
				t.Errorf("String() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
