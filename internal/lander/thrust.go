// Package lander implements the spacecraft: the thrust mapping from
// per-frame control input and the flight state machine with its fuel and
// landing-safety model.
package lander

import (
	"github.com/lunarcade/lunarcade/internal/core"
)

// Thrust is a snapshot of which thrusters fire this tick. It is a pure
// function of the frame's input and is rebuilt every tick, never persisted.
//
// Rotation convention: angle zero is up and positive tilts
// counter-clockwise, so the left arrow drives the counter-clockwise
// thruster (+) and the right arrow the clockwise one (-).
type Thrust struct {
	MainEngine       bool
	Clockwise        bool
	CounterClockwise bool
}

// ThrustFromInput builds the thruster snapshot for this tick.
func ThrustFromInput(in core.InputFrame) Thrust {
	return Thrust{
		MainEngine:       in.Has(core.ActionMainEngine),
		Clockwise:        in.Has(core.ActionRotateCW),
		CounterClockwise: in.Has(core.ActionRotateCCW),
	}
}

// Any reports whether any thruster fires.
func (t Thrust) Any() bool {
	return t.MainEngine || t.Clockwise || t.CounterClockwise
}

// Rotating reports whether either attitude thruster fires.
func (t Thrust) Rotating() bool {
	return t.Clockwise || t.CounterClockwise
}

// Rotation returns the signed rotation rate in rad/s for the given
// attitude authority. Both thrusters active cancel to zero.
func (t Thrust) Rotation(rate float64) float64 {
	var r float64
	if t.CounterClockwise {
		r += rate
	}
	if t.Clockwise {
		r -= rate
	}
	return r
}

// MainAcceleration returns the main engine acceleration in m/s^2 for the
// given thrust force and current total mass, or zero when the engine is
// off.
func (t Thrust) MainAcceleration(force, totalMass float64) float64 {
	if !t.MainEngine || totalMass <= 0 {
		return 0.0
	}
	return force / totalMass
}
