// Package football implements the match simulation: a runner steered by
// directional input, a defender that pursues it, touchdown and tackle
// resolution, and the match clock.
//
// The package has no dependency on the terminal platform. Callers drive it
// through two independent triggers: Match.Frame once per rendered frame and
// Match.TickClock once per clock interval.
package football

import (
	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/core"
)

// Default match settings
const (
	DefaultRunnerSpeed     = 10.0  // Units per second
	DefaultPursuitStep     = 0.05  // Units per frame
	DefaultGoalLineZ       = -45.0 // Touchdown when runner z is below this
	DefaultTackleRadius    = 1.5   // Tackle when closer than this
	DefaultTouchdownPoints = 7
	DefaultTacklePoints    = 7
	DefaultClockDuration   = 300 // Seconds
)

// Canonical start positions both actors return to after a scoring event.
var (
	DefaultRunnerStart   = core.V3(0, 0.5, 0)
	DefaultDefenderStart = core.V3(0, 0.5, -20)
)

// Settings holds the fixed constants of one match.
type Settings struct {
	RunnerSpeed     float64
	PursuitStep     float64
	GoalLineZ       float64
	TackleRadius    float64
	TouchdownPoints int
	TacklePoints    int
	RunnerStart     core.Vec3
	DefenderStart   core.Vec3
	ClockDuration   int
}

// DefaultSettings returns the standard match constants.
func DefaultSettings() Settings {
	return Settings{
		RunnerSpeed:     DefaultRunnerSpeed,
		PursuitStep:     DefaultPursuitStep,
		GoalLineZ:       DefaultGoalLineZ,
		TackleRadius:    DefaultTackleRadius,
		TouchdownPoints: DefaultTouchdownPoints,
		TacklePoints:    DefaultTacklePoints,
		RunnerStart:     DefaultRunnerStart,
		DefenderStart:   DefaultDefenderStart,
		ClockDuration:   DefaultClockDuration,
	}
}

// SettingsFromConfig maps a loaded configuration onto match settings.
func SettingsFromConfig(cfg config.FootballConfig) Settings {
	return Settings{
		RunnerSpeed:     cfg.Physics.RunnerSpeed,
		PursuitStep:     cfg.Physics.PursuitStep,
		GoalLineZ:       cfg.Field.GoalLineZ,
		TackleRadius:    cfg.Field.TackleRadius,
		TouchdownPoints: cfg.Scoring.TouchdownPoints,
		TacklePoints:    cfg.Scoring.TacklePoints,
		RunnerStart:     cfg.Field.RunnerStart.Vec(),
		DefenderStart:   cfg.Field.DefenderStart.Vec(),
		ClockDuration:   cfg.Clock.DurationSecs,
	}
}
