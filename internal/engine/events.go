package engine

import (
	"sync"

	"github.com/vovakirdan/gridiron/internal/football"
	"github.com/vovakirdan/gridiron/internal/playbook"
)

// MatchID identifies one engine-driven match.
type MatchID string

// EndReason describes why a runner returned.
type EndReason int

const (
	EndCompleted EndReason = iota // Clock expired
	EndStopped                    // Stop was called
	EndCanceled                   // Context canceled
)

func (r EndReason) String() string {
	switch r {
	case EndCompleted:
		return "completed"
	case EndStopped:
		return "stopped"
	case EndCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result is the outcome of a run.
type Result struct {
	MatchID MatchID
	Reason  EndReason
	Score   football.Score
	Frames  uint64
	Play    playbook.ID
}

// Event is published by a runner while the match is in progress.
type Event interface {
	engineEvent()
}

// ScoreEvent is published for every touchdown and tackle.
type ScoreEvent struct {
	MatchID MatchID
	Event   football.Event
	Score   football.Score
	Frame   uint64
}

func (ScoreEvent) engineEvent() {}

// ClockEvent is published once per clock tick.
type ClockEvent struct {
	MatchID   MatchID
	Remaining int
}

func (ClockEvent) engineEvent() {}

// PlaySelectedEvent is published when a play selection is accepted.
type PlaySelectedEvent struct {
	MatchID MatchID
	Play    playbook.ID
}

func (PlaySelectedEvent) engineEvent() {}

// MatchEndedEvent is the last event a runner publishes.
type MatchEndedEvent struct {
	Result Result
}

func (MatchEndedEvent) engineEvent() {}

// EventSink receives runner events. Send must not block.
type EventSink interface {
	Send(evt Event)
}

type discardSink struct{}

func (discardSink) Send(Event) {}

// ChannelSink is an EventSink backed by a buffered channel.
// When the buffer is full the oldest event is dropped.
type ChannelSink struct {
	mu     sync.Mutex
	events chan Event
}

// NewChannelSink creates a sink holding up to size events.
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 64
	}
	return &ChannelSink{events: make(chan Event, size)}
}

// Send queues evt, evicting the oldest queued event if necessary.
func (s *ChannelSink) Send(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case s.events <- evt:
		return
	default:
	}

	select {
	case <-s.events:
	default:
	}
	select {
	case s.events <- evt:
	default:
	}
}

// Events returns the channel to receive from.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}
