package football

import "github.com/vovakirdan/gridiron/internal/core"

// Pursuit steers the defender straight at the runner.
type Pursuit struct {
	StepSize float64 // Units per frame
}

// Step returns the defender position after one frame.
// The step is fixed per frame and does not scale with frame time.
// When both actors share a position there is no direction to follow and
// the defender stays put.
func (p Pursuit) Step(defender, runner core.Vec3) core.Vec3 {
	dir, ok := runner.Sub(defender).Normalize()
	if !ok {
		return defender
	}
	return defender.Add(dir.Scale(p.StepSize))
}
