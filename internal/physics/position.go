// Package physics provides the kinematic value types for the lander
// simulation: position, velocity, acceleration, and attitude angle.
// All types have value semantics; per-tick updates use the constant
// acceleration equations of motion.
package physics

import "math"

// PositionTolerance is the distance below which two positions compare equal.
const PositionTolerance = 0.001

// Position is a location in world space. Units are world units (meters in
// the mission's coordinate box); y grows upward.
type Position struct {
	X, Y float64
}

// NewPosition creates a position at (x, y).
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add advances the position over a time step under constant acceleration:
//
//	s = s0 + v*t + 0.5*a*t^2
func (p *Position) Add(a Acceleration, v Velocity, t float64) {
	p.X += v.DX*t + 0.5*a.DDX*t*t
	p.Y += v.DY*t + 0.5*a.DDY*t*t
}

// Equals reports whether two positions coincide within PositionTolerance.
func (p Position) Equals(other Position) bool {
	return math.Abs(p.X-other.X) < PositionTolerance &&
		math.Abs(p.Y-other.Y) < PositionTolerance
}
