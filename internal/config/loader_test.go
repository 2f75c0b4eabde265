package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	var fromYAML FootballConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultFootballConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", fromYAML, DefaultFootballConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultFootballConfig()

	if cfg.Physics.RunnerSpeed != 10 {
		t.Errorf("RunnerSpeed = %f, expected 10", cfg.Physics.RunnerSpeed)
	}
	if cfg.Physics.PursuitStep != 0.05 {
		t.Errorf("PursuitStep = %f, expected 0.05", cfg.Physics.PursuitStep)
	}
	if cfg.Field.GoalLineZ != -45 || cfg.Field.TackleRadius != 1.5 {
		t.Errorf("unexpected field geometry: %+v", cfg.Field)
	}
	if cfg.Field.RunnerStart != (Point{0, 0.5, 0}) || cfg.Field.DefenderStart != (Point{0, 0.5, -20}) {
		t.Errorf("unexpected start positions: %v %v", cfg.Field.RunnerStart, cfg.Field.DefenderStart)
	}
	if cfg.Clock.DurationSecs != 300 || cfg.ClockInterval() != time.Second {
		t.Errorf("unexpected clock: %+v", cfg.Clock)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFootballCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "football.yaml")
	content := []byte("clock:\n  duration_secs: 60\nphysics:\n  runner_speed: 12\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadFootball(path)
	if err != nil {
		t.Fatalf("LoadFootball() failed: %v", err)
	}

	if cfg.Clock.DurationSecs != 60 {
		t.Errorf("DurationSecs = %d, expected 60", cfg.Clock.DurationSecs)
	}
	if cfg.Physics.RunnerSpeed != 12 {
		t.Errorf("RunnerSpeed = %f, expected 12", cfg.Physics.RunnerSpeed)
	}
	// Unset fields keep defaults
	if cfg.Physics.PursuitStep != 0.05 {
		t.Errorf("PursuitStep = %f, expected default 0.05", cfg.Physics.PursuitStep)
	}
	if cfg.Field.DefenderStart != (Point{0, 0.5, -20}) {
		t.Errorf("DefenderStart = %v, expected default", cfg.Field.DefenderStart)
	}
}

func TestLoadFootballMissingFile(t *testing.T) {
	_, err := LoadFootball(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadFootball() should fail for a missing custom path")
	}
}

func TestLoadFootballInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero speed", "physics:\n  runner_speed: 0\n"},
		{"negative duration", "clock:\n  duration_secs: -5\n"},
		{"zero radius", "field:\n  tackle_radius: 0\n"},
		{"negative hold", "input:\n  hold_ms: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "football.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			_, err := LoadFootball(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("LoadFootball() error = %v, expected ErrInvalid", err)
			}
			var verr ValidationError
			if !errors.As(err, &verr) || verr.Field == "" {
				t.Errorf("error should carry the offending field, got %v", err)
			}
		})
	}
}

func TestLoadFootballMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "football.yaml")
	if err := os.WriteFile(path, []byte("physics: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadFootball(path); err == nil {
		t.Error("LoadFootball() should fail on malformed YAML")
	}
}

func TestPointVec(t *testing.T) {
	v := Point{1, 0.5, -20}.Vec()
	if v.X != 1 || v.Y != 0.5 || v.Z != -20 {
		t.Errorf("Vec() = %+v", v)
	}
}
