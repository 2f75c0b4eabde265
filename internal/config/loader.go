package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match validation failures with errors.Is(err, ErrInvalid).
func (e ValidationError) Unwrap() error {
	return ErrInvalid
}

// LoadFootball loads the match configuration.
// Search order: customPath -> ~/.gridiron/configs/football.yaml -> ./configs/football.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadFootball(customPath string) (FootballConfig, error) {
	cfg := DefaultFootballConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("football.yaml"); userCfgPath != "" {
		if parsed, ok := tryLoad(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryLoad(filepath.Join("configs", "football.yaml")); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	embedded := DefaultFootballConfig()
	if err := yaml.Unmarshal(defaultFootballYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultFootballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (FootballConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FootballConfig{}, false
	}
	cfg := DefaultFootballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FootballConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return FootballConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridiron", "configs", filename)
}

// Validate checks that every tunable is usable by the simulation.
func (c FootballConfig) Validate() error {
	switch {
	case c.Physics.RunnerSpeed <= 0:
		return ValidationError{Field: "physics.runner_speed", Message: "must be positive"}
	case c.Physics.PursuitStep <= 0:
		return ValidationError{Field: "physics.pursuit_step", Message: "must be positive"}
	case c.Field.Width <= 0 || c.Field.Length <= 0:
		return ValidationError{Field: "field", Message: "width and length must be positive"}
	case c.Field.TackleRadius <= 0:
		return ValidationError{Field: "field.tackle_radius", Message: "must be positive"}
	case c.Scoring.TouchdownPoints <= 0 || c.Scoring.TacklePoints <= 0:
		return ValidationError{Field: "scoring", Message: "points must be positive"}
	case c.Clock.DurationSecs <= 0:
		return ValidationError{Field: "clock.duration_secs", Message: "must be positive"}
	case c.Clock.TickIntervalMs <= 0:
		return ValidationError{Field: "clock.tick_interval_ms", Message: "must be positive"}
	case c.Input.HoldMs < 0:
		return ValidationError{Field: "input.hold_ms", Message: "must not be negative"}
	}
	return nil
}

// ClockInterval returns the clock tick interval as a duration.
func (c FootballConfig) ClockInterval() time.Duration {
	return time.Duration(c.Clock.TickIntervalMs) * time.Millisecond
}

// HoldWindow returns how long a pressed key counts as held.
func (c FootballConfig) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}
