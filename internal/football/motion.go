package football

import "github.com/vovakirdan/gridiron/internal/core"

// Motion turns held directions into a runner displacement.
type Motion struct {
	Speed float64 // Units per second
}

// Step returns the displacement for one frame lasting dt seconds.
//
// Each held flag contributes Speed*dt on its own axis, so opposing flags
// cancel and diagonal movement is faster than axial movement.
func (m Motion) Step(in core.InputState, dt float64) core.Vec3 {
	if dt <= 0 {
		return core.Vec3{}
	}
	d := m.Speed * dt

	var v core.Vec3
	if in.Held(core.Forward) {
		v.Z -= d
	}
	if in.Held(core.Backward) {
		v.Z += d
	}
	if in.Held(core.Left) {
		v.X -= d
	}
	if in.Held(core.Right) {
		v.X += d
	}
	return v
}
