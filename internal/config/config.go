// Package config provides YAML-based configuration loading for the match
// simulation and the terminal platform.
package config

import "github.com/vovakirdan/gridiron/internal/core"

// FootballConfig contains all tunables of a match.
type FootballConfig struct {
	Physics FootballPhysics `yaml:"physics"`
	Field   FootballField   `yaml:"field"`
	Scoring FootballScoring `yaml:"scoring"`
	Clock   FootballClock   `yaml:"clock"`
	Input   FootballInput   `yaml:"input"`
}

// FootballPhysics defines actor speeds.
type FootballPhysics struct {
	RunnerSpeed float64 `yaml:"runner_speed"` // Units per second, scaled by frame delta
	PursuitStep float64 `yaml:"pursuit_step"` // Units per frame, not time-scaled
}

// FootballField defines field geometry and start positions.
type FootballField struct {
	Width         float64 `yaml:"width"`          // Extent along X, centered on 0
	Length        float64 `yaml:"length"`         // Extent along Z, centered on 0
	GoalLineZ     float64 `yaml:"goal_line_z"`    // Runner z below this scores a touchdown
	TackleRadius  float64 `yaml:"tackle_radius"`  // Runner/defender distance below this is a tackle
	RunnerStart   Point   `yaml:"runner_start"`   // Canonical runner position
	DefenderStart Point   `yaml:"defender_start"` // Canonical defender position
}

// FootballScoring defines points per scoring event.
type FootballScoring struct {
	TouchdownPoints int `yaml:"touchdown_points"`
	TacklePoints    int `yaml:"tackle_points"`
}

// FootballClock defines the match clock.
type FootballClock struct {
	DurationSecs   int `yaml:"duration_secs"`
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// FootballInput defines how terminal key presses become held directions.
// Terminals report presses and auto-repeat but never releases, so a key is
// considered held for HoldMs after its last press.
type FootballInput struct {
	HoldMs int `yaml:"hold_ms"`
}

// Point is an x, y, z triple written as a YAML sequence.
type Point [3]float64

// Vec converts the point to a core vector.
func (p Point) Vec() core.Vec3 {
	return core.V3(p[0], p[1], p[2])
}
