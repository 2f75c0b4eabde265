package football

import (
	"errors"

	"github.com/vovakirdan/gridiron/internal/core"
	"github.com/vovakirdan/gridiron/internal/playbook"
)

// ErrGameOver is returned when a finished match is asked to change.
var ErrGameOver = errors.New("football: game over")

// ActorID is the stable identity of an actor on the field.
type ActorID string

const (
	RunnerID   ActorID = "runner"
	DefenderID ActorID = "defender"
)

// Actor is a body on the field.
type Actor struct {
	ID       ActorID
	Position core.Vec3
}

// MatchState is everything a renderer needs to draw the match.
type MatchState struct {
	Runner       Actor
	Defender     Actor
	Score        Score
	Clock        ClockState
	SelectedPlay playbook.ID // Empty until a play is picked; not read by the simulation
	GameOver     bool
}

// FrameResult is returned by Match.Frame.
type FrameResult struct {
	Event    Event
	Snapshot Snapshot
}

// Match owns the actors, score and clock of one match.
// It is not safe for concurrent use; callers serialize Frame, TickClock
// and SelectPlay on one goroutine.
type Match struct {
	settings Settings
	motion   Motion
	pursuit  Pursuit
	resolver Resolver
	clock    *Clock

	runner       Actor
	defender     Actor
	score        Score
	selectedPlay playbook.ID
	gameOver     bool

	frame     uint64
	lastEvent Event
}

// NewMatch creates a match with both actors at their start positions.
func NewMatch(s Settings) *Match {
	m := &Match{
		settings: s,
		motion:   Motion{Speed: s.RunnerSpeed},
		pursuit:  Pursuit{StepSize: s.PursuitStep},
		resolver: Resolver{
			GoalLineZ:       s.GoalLineZ,
			TackleRadius:    s.TackleRadius,
			TouchdownPoints: s.TouchdownPoints,
			TacklePoints:    s.TacklePoints,
			RunnerStart:     s.RunnerStart,
			DefenderStart:   s.DefenderStart,
		},
		clock:    NewClock(s.ClockDuration),
		runner:   Actor{ID: RunnerID, Position: s.RunnerStart},
		defender: Actor{ID: DefenderID, Position: s.DefenderStart},
	}
	m.gameOver = m.clock.Expired()
	return m
}

// Frame advances the simulation by one rendered frame of dt seconds.
// Order: runner motion, defender pursuit, then touchdown/tackle resolution
// against the updated positions. A finished match is frozen.
func (m *Match) Frame(in core.InputState, dt float64) FrameResult {
	if m.gameOver {
		return FrameResult{Event: EventNone, Snapshot: m.Snapshot()}
	}

	m.runner.Position = m.runner.Position.Add(m.motion.Step(in, dt))
	m.defender.Position = m.pursuit.Step(m.defender.Position, m.runner.Position)

	res := m.resolver.Resolve(m.runner.Position, m.defender.Position, m.score)
	m.score = res.Score
	m.runner.Position = res.Runner
	m.defender.Position = res.Defender

	m.frame++
	if res.Event != EventNone {
		m.lastEvent = res.Event
	}

	return FrameResult{Event: res.Event, Snapshot: m.Snapshot()}
}

// TickClock advances the match clock by one interval.
// Returns true on the tick that ends the match.
func (m *Match) TickClock() bool {
	expired := m.clock.Tick()
	if m.clock.Expired() {
		m.gameOver = true
	}
	return expired
}

// SelectPlay records the chosen play. The simulation never reads it.
func (m *Match) SelectPlay(id playbook.ID) error {
	if m.gameOver {
		return ErrGameOver
	}
	if _, err := playbook.Lookup(id); err != nil {
		return err
	}
	m.selectedPlay = id
	return nil
}

// GameOver returns true once the clock has expired.
func (m *Match) GameOver() bool {
	return m.gameOver
}

// Settings returns the constants this match was created with.
func (m *Match) Settings() Settings {
	return m.settings
}

// State returns a copy of the match state.
func (m *Match) State() MatchState {
	return MatchState{
		Runner:       m.runner,
		Defender:     m.defender,
		Score:        m.score,
		Clock:        m.clock.State(),
		SelectedPlay: m.selectedPlay,
		GameOver:     m.gameOver,
	}
}
