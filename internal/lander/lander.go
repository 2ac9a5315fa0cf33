package lander

import (
	"math"
	"math/rand"

	"github.com/lunarcade/lunarcade/internal/config"
	"github.com/lunarcade/lunarcade/internal/core"
	"github.com/lunarcade/lunarcade/internal/physics"
)

// Status is the flight state of the lander. It leaves StatusFlying exactly
// once per attempt, and only the touchdown evaluator may move it.
type Status int

const (
	StatusFlying  Status = iota // Attempt in progress
	StatusLanded                // Terminal: safe landing
	StatusCrashed               // Terminal: crash
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusFlying:
		return "flying"
	case StatusLanded:
		return "landed"
	case StatusCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Lander holds the craft state: position, velocity, attitude, fuel, and
// flight status. One Lander lives for a whole session; Reset re-randomizes
// it for each attempt.
type Lander struct {
	pos    physics.Position
	vel    physics.Velocity
	angle  physics.Angle
	status Status
	fuel   float64

	physicsCfg config.PhysicsConfig
	fuelCfg    config.FuelConfig
	body       config.LanderBody
}

// New creates a lander with the given tuning. It starts crashed; call
// Reset to begin an attempt.
func New(cfg config.LanderConfig) *Lander {
	return &Lander{
		status:     StatusCrashed,
		physicsCfg: cfg.Physics,
		fuelCfg:    cfg.Fuel,
		body:       cfg.Lander,
	}
}

// Reset re-randomizes the lander for a new attempt: a start near the
// top-right of the world with vertical jitter, a leftward drift, a full
// fuel load, and upright attitude.
func (l *Lander) Reset(bounds core.Bounds, fuelLoad float64, rng *rand.Rand) {
	l.angle.SetUp()

	l.pos.X = bounds.W - 1.0
	l.pos.Y = bounds.H*0.75 + float64(rng.Intn(20)-10)

	l.vel.DX = -4.0 - float64(rng.Intn(7)) // -4 to -10
	l.vel.DY = -2.0 + float64(rng.Intn(5)) // -2 to +2

	l.status = StatusFlying
	l.fuel = fuelLoad
}

// Status queries.
func (l *Lander) IsFlying() bool  { return l.status == StatusFlying }
func (l *Lander) IsLanded() bool  { return l.status == StatusLanded }
func (l *Lander) IsCrashed() bool { return l.status == StatusCrashed }

// Status returns the current flight status.
func (l *Lander) Status() Status { return l.status }

// Position returns the current world position.
func (l *Lander) Position() physics.Position { return l.pos }

// Velocity returns the current velocity.
func (l *Lander) Velocity() physics.Velocity { return l.vel }

// Attitude returns the current attitude angle.
func (l *Lander) Attitude() physics.Angle { return l.angle }

// Speed returns the velocity magnitude.
func (l *Lander) Speed() float64 { return l.vel.Speed() }

// Fuel returns the remaining fuel in kg.
func (l *Lander) Fuel() float64 { return l.fuel }

// FuelPercent returns remaining fuel as a percentage of capacity.
func (l *Lander) FuelPercent() float64 {
	if l.fuelCfg.Capacity <= 0 {
		return 0.0
	}
	return core.ClampF(l.fuel/l.fuelCfg.Capacity*100.0, 0.0, 100.0)
}

// OutOfFuel reports whether the tanks are dry.
func (l *Lander) OutOfFuel() bool { return l.fuel <= 0.0 }

// TotalMass returns dry mass plus remaining fuel, in kg.
func (l *Lander) TotalMass() float64 { return l.fuelCfg.DryMass + l.fuel }

// Width returns the craft footprint in world units.
func (l *Lander) Width() float64 { return l.body.Width }

// Input converts this tick's thruster snapshot into an acceleration and
// applies its side effects: attitude rotation and fuel burn. Gravity is
// always present; thrust only while flying with fuel in the tanks. The
// time step scales both the rotation and the burn.
func (l *Lander) Input(thrust Thrust, gravity, dt float64) physics.Acceleration {
	accel := physics.NewAcceleration(0.0, gravity)

	if l.status != StatusFlying || l.fuel <= 0.0 {
		return accel
	}

	if thrust.MainEngine {
		a := thrust.MainAcceleration(l.physicsCfg.MainThrust, l.TotalMass())
		accel.DDX -= math.Sin(l.angle.Radians()) * a
		accel.DDY += math.Cos(l.angle.Radians()) * a
		l.consumeFuel(l.fuelCfg.MainRate * dt)
	}

	if thrust.Rotating() {
		l.angle.Add(thrust.Rotation(l.physicsCfg.RotationRate) * dt)
		if thrust.Clockwise {
			l.consumeFuel(l.fuelCfg.AttitudeRate * dt)
		}
		if thrust.CounterClockwise {
			l.consumeFuel(l.fuelCfg.AttitudeRate * dt)
		}
	}

	return accel
}

// Coast advances position and velocity over a time step under the given
// constant acceleration.
func (l *Lander) Coast(accel physics.Acceleration, t float64) {
	l.pos.Add(accel, l.vel, t)
	l.vel.Add(accel, t)
}

// IsSafeLanding reports whether touching down right now would be survivable:
// both velocity components within the safe envelope and the craft near
// upright. The attitude check goes through the normalized angle so a craft
// that has rolled through full rotations is still judged fairly.
func (l *Lander) IsSafeLanding() bool {
	slowEnough := l.vel.WithinAxisSpeed(l.body.SafeAxisSpeed)
	upright := l.angle.Deviation() < l.body.SafeTilt
	return slowEnough && upright
}

// Land concludes the attempt as a safe landing: the craft settles exactly
// upright.
func (l *Lander) Land() {
	l.angle.SetUp()
	l.status = StatusLanded
}

// Crash concludes the attempt as a crash: the craft ends up inverted.
func (l *Lander) Crash() {
	l.angle.SetDown()
	l.status = StatusCrashed
}

// consumeFuel burns the given amount, clamped at an empty tank.
func (l *Lander) consumeFuel(amount float64) {
	l.fuel = math.Max(0.0, l.fuel-amount)
}
