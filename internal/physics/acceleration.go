package physics

import "math"

// Acceleration is an instantaneous force-derived rate of change of
// Velocity. It is recomputed fresh every tick from gravity and thrust and
// never persisted across frames.
type Acceleration struct {
	DDX, DDY float64
}

// NewAcceleration creates an acceleration with the given components.
func NewAcceleration(ddx, ddy float64) Acceleration {
	return Acceleration{DDX: ddx, DDY: ddy}
}

// SetFromAngle sets the acceleration from a direction and magnitude, with
// zero angle pointing along +y.
func (a *Acceleration) SetFromAngle(angle Angle, magnitude float64) {
	a.DDX = magnitude * math.Sin(angle.Radians())
	a.DDY = magnitude * math.Cos(angle.Radians())
}

// Add accumulates another acceleration into this one.
func (a *Acceleration) Add(other Acceleration) {
	a.DDX += other.DDX
	a.DDY += other.DDY
}
