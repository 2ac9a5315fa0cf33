// Package terrain builds and queries the lunar surface: a 1-D heightfield
// with a flat landing pad carved into it.
package terrain

import (
	"github.com/lunarcade/lunarcade/internal/config"
	"github.com/lunarcade/lunarcade/internal/core"
	"github.com/lunarcade/lunarcade/internal/physics"
)

// Terrain owns an ordered sequence of elevation samples spanning the world
// width, plus the landing pad flattened into it. Queries are read-only;
// Generate discards and rebuilds the whole surface.
type Terrain struct {
	samples []float64
	bounds  core.Bounds

	padCenterX float64
	padWidth   float64
	padHeight  float64

	cfg    config.TerrainConfig
	padCfg config.PlatformConfig
}

// New creates an empty terrain with the given tuning. Queries against it
// return defined defaults until Generate is called.
func New(cfg config.LanderConfig) *Terrain {
	return &Terrain{
		cfg:    cfg.Terrain,
		padCfg: cfg.Platform,
	}
}

// Bounds returns the world box the surface spans.
func (t *Terrain) Bounds() core.Bounds { return t.bounds }

// SampleCount returns the number of elevation samples.
func (t *Terrain) SampleCount() int { return len(t.samples) }

// Samples returns a copy of the elevation sequence for rendering.
func (t *Terrain) Samples() []float64 {
	out := make([]float64, len(t.samples))
	copy(out, t.samples)
	return out
}

// Platform returns the pad center position and width in world units.
func (t *Terrain) Platform() (physics.Position, float64) {
	return physics.NewPosition(t.padCenterX, t.padHeight), t.padWidth
}

// PlatformHeight returns the pad elevation.
func (t *Terrain) PlatformHeight() float64 { return t.padHeight }

// ElevationAt returns the surface height under the given position. The
// horizontal coordinate maps linearly onto the sample sequence; an
// out-of-range coordinate clamps to the nearest edge sample. An
// ungenerated terrain reports zero elevation.
func (t *Terrain) ElevationAt(pos physics.Position) float64 {
	if len(t.samples) == 0 || t.bounds.W <= 0 {
		return 0.0
	}
	idx := int(pos.X / t.bounds.W * float64(len(t.samples)))
	idx = core.Clamp(idx, 0, len(t.samples)-1)
	return t.samples[idx]
}

// OnPlatform reports whether a craft of the given width centered at pos
// sits entirely on the landing pad.
func (t *Terrain) OnPlatform(pos physics.Position, width float64) bool {
	left := pos.X - width/2.0
	right := pos.X + width/2.0
	padLeft := t.padCenterX - t.padWidth/2.0
	padRight := t.padCenterX + t.padWidth/2.0
	return left >= padLeft && right <= padRight
}

// minElevation returns the configured elevation floor.
func (t *Terrain) minElevation() float64 {
	return t.cfg.MinHeight
}

// maxElevation returns the configured elevation ceiling for the current
// bounds.
func (t *Terrain) maxElevation() float64 {
	return t.bounds.H * t.cfg.MaxFraction
}
