package football

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridiron/internal/core"
)

func TestPursuitStepTowardRunner(t *testing.T) {
	p := Pursuit{StepSize: DefaultPursuitStep}

	got := p.Step(DefaultDefenderStart, DefaultRunnerStart)
	expected := core.V3(0, 0.5, -19.95)

	if got.DistanceTo(expected) > eps {
		t.Errorf("Step() = %+v, expected %+v", got, expected)
	}
}

func TestPursuitStepMagnitude(t *testing.T) {
	p := Pursuit{StepSize: DefaultPursuitStep}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		defender := core.V3(rng.Float64()*50-25, 0.5, rng.Float64()*100-50)
		runner := core.V3(rng.Float64()*50-25, 0.5, rng.Float64()*100-50)
		if defender == runner {
			continue
		}

		moved := p.Step(defender, runner).DistanceTo(defender)
		if math.Abs(moved-DefaultPursuitStep) > eps {
			t.Fatalf("step %d: moved %f, expected %f", i, moved, DefaultPursuitStep)
		}
	}
}

func TestPursuitSamePosition(t *testing.T) {
	p := Pursuit{StepSize: DefaultPursuitStep}
	pos := core.V3(3, 0.5, -7)

	got := p.Step(pos, pos)
	if got != pos {
		t.Errorf("Step() with identical positions = %+v, expected no movement", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Error("Step() must not produce NaN")
	}
}

func TestPursuitIsPerFrame(t *testing.T) {
	p := Pursuit{StepSize: DefaultPursuitStep}
	defender := DefaultDefenderStart

	for i := 0; i < 20; i++ {
		defender = p.Step(defender, DefaultRunnerStart)
	}

	// 20 frames close exactly 1 unit regardless of how long the frames took.
	if math.Abs(defender.Z-(-19)) > 1e-6 {
		t.Errorf("after 20 frames defender z = %f, expected -19", defender.Z)
	}
}
