package mission

import (
	"math"

	"github.com/lunarcade/lunarcade/internal/core"
)

// evaluateTouchdown compares the lander altitude against the surface under
// it and concludes the attempt on contact. This is the single place that
// moves the lander out of flight: a safe approach on the pad lands,
// anything else crashes. Returns nil while the craft is still airborne.
func (g *Game) evaluateTouchdown() *core.TouchdownEvent {
	if !g.craft.IsFlying() {
		return nil
	}

	pos := g.craft.Position()
	groundHeight := g.surface.ElevationAt(pos)
	if pos.Y > groundHeight {
		return nil
	}

	g.attempts++

	vel := g.craft.Velocity()
	ev := &core.TouchdownEvent{
		Attempt:    g.attempts,
		OnPlatform: g.surface.OnPlatform(pos, g.craft.Width()),
		Speed:      vel.Speed(),
		SpeedX:     vel.DX,
		SpeedY:     vel.DY,
		TiltDeg:    g.craft.Attitude().Deviation() * 180.0 / math.Pi,
		Fuel:       g.craft.Fuel(),
		Duration:   g.missionTime,
	}

	if g.craft.IsSafeLanding() && ev.OnPlatform {
		g.craft.Land()
		g.successes++
		ev.Landed = true
		g.score += g.attemptScore(ev)
	} else {
		g.craft.Crash()
	}

	return ev
}

// attemptScore values a safe landing: a flat base, a bonus for fuel left
// in the tanks, and a bonus for touching down well under the speed limit.
func (g *Game) attemptScore(ev *core.TouchdownEvent) int {
	score := landingScore
	score += int(ev.Fuel * fuelBonusPerKG)

	limit := g.mission.Lander.SafeAxisSpeed
	if limit > 0 && ev.Speed < limit {
		score += int((limit - ev.Speed) / limit * softnessBonusMax)
	}
	return score
}
