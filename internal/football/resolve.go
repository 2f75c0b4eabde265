package football

import "github.com/vovakirdan/gridiron/internal/core"

// Event is the outcome of resolving one frame.
type Event int

const (
	EventNone Event = iota
	EventTouchdown
	EventTackle
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventTouchdown:
		return "touchdown"
	case EventTackle:
		return "tackle"
	default:
		return "unknown"
	}
}

// Score is the match score. Home is the runner's side.
type Score struct {
	Home int
	Away int
}

// Resolution is the result of Resolver.Resolve.
type Resolution struct {
	Event    Event
	Score    Score
	Runner   core.Vec3
	Defender core.Vec3
}

// Resolver detects touchdowns and tackles.
type Resolver struct {
	GoalLineZ       float64
	TackleRadius    float64
	TouchdownPoints int
	TacklePoints    int
	RunnerStart     core.Vec3
	DefenderStart   core.Vec3
}

// Resolve checks the touchdown first and the tackle only if no touchdown
// fired, so a frame that satisfies both always credits the runner.
// Either event resets both actors to their start positions.
func (r Resolver) Resolve(runner, defender core.Vec3, score Score) Resolution {
	if runner.Z < r.GoalLineZ {
		score.Home += r.TouchdownPoints
		return Resolution{
			Event:    EventTouchdown,
			Score:    score,
			Runner:   r.RunnerStart,
			Defender: r.DefenderStart,
		}
	}

	if runner.DistanceTo(defender) < r.TackleRadius {
		score.Away += r.TacklePoints
		return Resolution{
			Event:    EventTackle,
			Score:    score,
			Runner:   r.RunnerStart,
			Defender: r.DefenderStart,
		}
	}

	return Resolution{
		Event:    EventNone,
		Score:    score,
		Runner:   runner,
		Defender: defender,
	}
}
