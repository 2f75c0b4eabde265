package config

import (
	_ "embed"
)

//go:embed defaults/football.yaml
var defaultFootballYAML []byte

// DefaultFootballConfig returns the built-in match configuration.
func DefaultFootballConfig() FootballConfig {
	return FootballConfig{
		Physics: FootballPhysics{
			RunnerSpeed: 10,
			PursuitStep: 0.05,
		},
		Field: FootballField{
			Width:         50,
			Length:        100,
			GoalLineZ:     -45,
			TackleRadius:  1.5,
			RunnerStart:   Point{0, 0.5, 0},
			DefenderStart: Point{0, 0.5, -20},
		},
		Scoring: FootballScoring{
			TouchdownPoints: 7,
			TacklePoints:    7,
		},
		Clock: FootballClock{
			DurationSecs:   300,
			TickIntervalMs: 1000,
		},
		Input: FootballInput{
			HoldMs: 250,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFootballYAML
}
