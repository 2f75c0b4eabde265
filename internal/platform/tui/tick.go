// Package tui runs a match in the terminal with Bubble Tea.
// It handles the frame and clock loops, key input, and drawing the field.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg triggers one simulation frame.
// Gen ties the message to the match that scheduled it; messages from an
// earlier match are dropped, which also ends their tick chain.
type FrameMsg struct {
	Gen  uint64
	Time time.Time
}

// ClockMsg triggers one clock tick.
type ClockMsg struct {
	Gen  uint64
	Time time.Time
}

// frameCmd schedules the next frame at the given rate.
func frameCmd(gen uint64, frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

// clockCmd schedules the next clock tick.
func clockCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg{Gen: gen, Time: t}
	})
}
