package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridiron/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	Left       key.Binding
	Right      key.Binding
	Play       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Play, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right},
		{k.Play, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "upfield"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "downfield"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Play: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "call play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new match"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key message to a movement direction.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, k.Forward):
		return core.Forward, true
	case key.Matches(msg, k.Backward):
		return core.Backward, true
	case key.Matches(msg, k.Left):
		return core.Left, true
	case key.Matches(msg, k.Right):
		return core.Right, true
	}
	return 0, false
}

// PlayIndex returns the zero-based playbook index for a play key.
func (k KeyMap) PlayIndex(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, k.Play) {
		return 0, false
	}
	s := msg.String()
	return int(s[0] - '1'), true
}

// HeldKeys turns key presses into held directions.
//
// Terminals deliver presses and auto-repeat but no releases, so a
// direction counts as held until window has passed since its last press.
// Pressing a direction releases its opposite: a terminal only repeats the
// most recent key, so both can never be held at once.
type HeldKeys struct {
	window time.Duration
	last   map[core.Direction]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[core.Direction]time.Time, len(core.AllDirections)),
	}
}

// Press records a press of d at t.
func (h *HeldKeys) Press(d core.Direction, t time.Time) {
	delete(h.last, opposite(d))
	h.last[d] = t
}

// State returns the directions held at t.
func (h *HeldKeys) State(t time.Time) core.InputState {
	var in core.InputState
	for _, d := range core.AllDirections {
		pressed, ok := h.last[d]
		if !ok {
			continue
		}
		if t.Sub(pressed) < h.window {
			in = in.With(d)
		} else {
			delete(h.last, d)
		}
	}
	return in
}

// Reset releases every direction.
func (h *HeldKeys) Reset() {
	clear(h.last)
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.Forward:
		return core.Backward
	case core.Backward:
		return core.Forward
	case core.Left:
		return core.Right
	case core.Right:
		return core.Left
	}
	return 0
}
