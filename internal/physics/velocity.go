package physics

import "math"

// Velocity is the rate of change of a Position, in world units per second.
type Velocity struct {
	DX, DY float64
}

// NewVelocity creates a velocity with the given components.
func NewVelocity(dx, dy float64) Velocity {
	return Velocity{DX: dx, DY: dy}
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// Add applies a constant acceleration over a time step:
//
//	v = v0 + a*t
func (v *Velocity) Add(a Acceleration, t float64) {
	v.DX += a.DDX * t
	v.DY += a.DDY * t
}

// SetFromAngle sets the velocity from a direction and magnitude. A zero
// angle points along +y ("up"), so dx = m*sin(θ) and dy = m*cos(θ).
func (v *Velocity) SetFromAngle(angle Angle, magnitude float64) {
	v.DX = magnitude * math.Sin(angle.Radians())
	v.DY = magnitude * math.Cos(angle.Radians())
}

// WithinAxisSpeed reports whether both velocity components are at most max
// in magnitude. The boundary is inclusive: a component exactly at max still
// passes.
func (v Velocity) WithinAxisSpeed(max float64) bool {
	return math.Abs(v.DX) <= max && math.Abs(v.DY) <= max
}
