package football

import (
	"math"
	"testing"

	"github.com/vovakirdan/gridiron/internal/core"
)

const eps = 1e-9

func TestMotionStep(t *testing.T) {
	m := Motion{Speed: DefaultRunnerSpeed}

	tests := []struct {
		name     string
		in       core.InputState
		dt       float64
		expected core.Vec3
	}{
		{"idle", core.NewInputState(), 0.1, core.Vec3{}},
		{"forward", core.NewInputState(core.Forward), 0.1, core.V3(0, 0, -1)},
		{"backward", core.NewInputState(core.Backward), 0.1, core.V3(0, 0, 1)},
		{"left", core.NewInputState(core.Left), 0.5, core.V3(-5, 0, 0)},
		{"right", core.NewInputState(core.Right), 0.5, core.V3(5, 0, 0)},
		{"forward+backward cancel", core.NewInputState(core.Forward, core.Backward), 0.1, core.Vec3{}},
		{"left+right cancel", core.NewInputState(core.Left, core.Right), 0.1, core.Vec3{}},
		{"all four cancel", core.NewInputState(core.Forward, core.Backward, core.Left, core.Right), 0.1, core.Vec3{}},
		{"zero dt", core.NewInputState(core.Forward), 0, core.Vec3{}},
		{"negative dt", core.NewInputState(core.Forward), -0.2, core.Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Step(tc.in, tc.dt)
			if got.DistanceTo(tc.expected) > eps {
				t.Errorf("Step() = %+v, expected %+v", got, tc.expected)
			}
			if got.Y != 0 {
				t.Errorf("Step() must not move along Y, got %f", got.Y)
			}
		})
	}
}

func TestMotionOpposingFlagsNetZero(t *testing.T) {
	m := Motion{Speed: DefaultRunnerSpeed}
	got := m.Step(core.NewInputState(core.Forward, core.Backward), 0.1)

	if got.Z != 0 {
		t.Errorf("net z-displacement = %f, expected exactly 0", got.Z)
	}
}

func TestMotionDiagonalIsNotNormalized(t *testing.T) {
	m := Motion{Speed: DefaultRunnerSpeed}
	dt := 0.1

	axial := m.Step(core.NewInputState(core.Forward), dt).Len()
	diagonal := m.Step(core.NewInputState(core.Forward, core.Right), dt).Len()

	if math.Abs(diagonal-axial*math.Sqrt2) > eps {
		t.Errorf("diagonal length = %f, expected %f (axial * sqrt2)", diagonal, axial*math.Sqrt2)
	}
}

func TestMotionScalesWithTime(t *testing.T) {
	m := Motion{Speed: DefaultRunnerSpeed}
	in := core.NewInputState(core.Left)

	oneFrame := m.Step(in, 1.0/30)
	twoFrames := m.Step(in, 1.0/60).Add(m.Step(in, 1.0/60))

	if oneFrame.DistanceTo(twoFrames) > eps {
		t.Errorf("displacement should depend on elapsed time only: %+v vs %+v", oneFrame, twoFrames)
	}
}
