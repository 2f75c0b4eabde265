package football

import "fmt"

// ClockState is the observable state of the match clock.
type ClockState struct {
	Remaining int  // Seconds left, in [0, duration]
	Expired   bool // Set once Remaining reaches 0, never cleared
}

// Clock counts match time down one second per tick.
type Clock struct {
	duration int
	state    ClockState
}

// NewClock creates a clock with the given duration in seconds.
// A non-positive duration yields a clock that is already expired.
func NewClock(duration int) *Clock {
	if duration < 0 {
		duration = 0
	}
	return &Clock{
		duration: duration,
		state: ClockState{
			Remaining: duration,
			Expired:   duration == 0,
		},
	}
}

// Tick advances the clock by one interval.
// Returns true only on the tick that expires the clock.
func (c *Clock) Tick() bool {
	if c.state.Expired {
		return false
	}
	c.state.Remaining = max(c.state.Remaining-1, 0)
	if c.state.Remaining == 0 {
		c.state.Expired = true
		return true
	}
	return false
}

// Remaining returns the seconds left.
func (c *Clock) Remaining() int {
	return c.state.Remaining
}

// Expired returns true once the clock has run out.
func (c *Clock) Expired() bool {
	return c.state.Expired
}

// Duration returns the initial duration in seconds.
func (c *Clock) Duration() int {
	return c.duration
}

// State returns a copy of the clock state.
func (c *Clock) State() ClockState {
	return c.state
}

// FormatClock renders seconds as M:SS with zero-padded seconds.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
