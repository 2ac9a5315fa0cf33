package mission

import "github.com/lunarcade/lunarcade/internal/lander"

// Snapshot captures the complete mission state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Attempts    int
	Successes   int
	Score       int
	Status      lander.Status
	X           float64
	Y           float64
	DX          float64
	DY          float64
	AngleRad    float64
	Fuel        float64
	MissionTime float64
	PadCenterX  float64
	PadWidth    float64
	PadHeight   float64
}

// Snapshot returns the current mission snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	pos := g.craft.Position()
	vel := g.craft.Velocity()
	padPos, padWidth := g.surface.Platform()

	return Snapshot{
		Tick:        g.tick,
		Attempts:    g.attempts,
		Successes:   g.successes,
		Score:       g.score,
		Status:      g.craft.Status(),
		X:           pos.X,
		Y:           pos.Y,
		DX:          vel.DX,
		DY:          vel.DY,
		AngleRad:    g.craft.Attitude().Radians(),
		Fuel:        g.craft.Fuel(),
		MissionTime: g.missionTime,
		PadCenterX:  padPos.X,
		PadWidth:    padWidth,
		PadHeight:   g.surface.PlatformHeight(),
	}
}
