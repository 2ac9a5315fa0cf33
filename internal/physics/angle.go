package physics

import "math"

// Angle is the lander attitude in radians. Zero points up; positive values
// tilt counter-clockwise. The stored value is unconstrained and may grow
// past ±2π as rotation accumulates, so upright checks must go through
// Deviation rather than comparing the raw value.
type Angle struct {
	radians float64
}

// NewAngle creates an angle from radians.
func NewAngle(radians float64) Angle {
	return Angle{radians: radians}
}

// NewAngleDegrees creates an angle from degrees.
func NewAngleDegrees(degrees float64) Angle {
	return Angle{radians: degrees * math.Pi / 180.0}
}

// Radians returns the raw, unnormalized angle in radians.
func (a Angle) Radians() float64 {
	return a.radians
}

// Degrees returns the raw angle in degrees.
func (a Angle) Degrees() float64 {
	return a.radians * 180.0 / math.Pi
}

// SetRadians replaces the angle.
func (a *Angle) SetRadians(radians float64) {
	a.radians = radians
}

// SetDegrees replaces the angle from a value in degrees.
func (a *Angle) SetDegrees(degrees float64) {
	a.radians = degrees * math.Pi / 180.0
}

// Direction helpers.
func (a *Angle) SetUp()    { a.radians = 0.0 }
func (a *Angle) SetDown()  { a.radians = math.Pi }
func (a *Angle) SetLeft()  { a.radians = math.Pi + math.Pi/2 }
func (a *Angle) SetRight() { a.radians = math.Pi / 2 }

// Reverse flips the direction by adding π.
func (a *Angle) Reverse() {
	a.radians += math.Pi
}

// Add increments the angle by delta radians. No wraparound is applied.
func (a *Angle) Add(delta float64) {
	a.radians += delta
}

// Normalized returns the angle folded into [0, 2π).
func (a Angle) Normalized() float64 {
	r := math.Mod(a.radians, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// Deviation returns the absolute angular distance from upright, in
// [0, π]. A lander that has completed several full rotations and come back
// to vertical deviates by zero.
func (a Angle) Deviation() float64 {
	n := a.Normalized()
	return math.Min(n, 2*math.Pi-n)
}
