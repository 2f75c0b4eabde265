package football

// Snapshot is a point-in-time copy of a match for rendering and logging.
// It shares no memory with the match.
type Snapshot struct {
	MatchState
	Frame     uint64 // Frames simulated so far
	LastEvent Event  // Most recent scoring event, EventNone before the first
	ClockText string // Remaining time as M:SS
}

// Snapshot returns the current match state as a Snapshot.
func (m *Match) Snapshot() Snapshot {
	state := m.State()
	return Snapshot{
		MatchState: state,
		Frame:      m.frame,
		LastEvent:  m.lastEvent,
		ClockText:  FormatClock(state.Clock.Remaining),
	}
}
