package terrain

import (
	"math"
	"math/rand"

	"github.com/lunarcade/lunarcade/internal/core"
)

// Generate discards the current surface and builds a new one: a base
// elevation with sine octaves and noise on top, a handful of dramatic
// peaks and valleys, and a flat landing pad of the given width. A
// non-positive padWidth picks one at random within the configured range.
func (t *Terrain) Generate(bounds core.Bounds, padWidth float64, rng *rand.Rand) {
	t.bounds = bounds

	n := int(bounds.W * t.cfg.Resolution)
	if n < 2 {
		n = 2
	}
	t.samples = make([]float64, n)

	t.rollHills(rng)
	t.clampAll()
	t.carveFeatures(rng)
	t.placePlatform(padWidth, rng)
	if t.cfg.Smoothing {
		t.smooth()
	}
}

// rollHills lays down the base elevation with the configured sine octaves
// (large features first, each with a random phase) plus bounded per-sample
// noise.
func (t *Terrain) rollHills(rng *rand.Rand) {
	n := len(t.samples)
	base := t.bounds.H * t.cfg.BaseFraction

	phases := make([]float64, len(t.cfg.Octaves))
	for i := range phases {
		phases[i] = rng.Float64() * 2 * math.Pi
	}

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n) // 0..1 across the world
		elev := base
		for k, oct := range t.cfg.Octaves {
			elev += oct.Amplitude * math.Sin(2*math.Pi*oct.Frequency*x+phases[k])
		}
		elev += (rng.Float64()*2 - 1) * t.cfg.NoiseAmplitude * t.cfg.Roughness
		t.samples[i] = elev
	}
}

// clampAll forces every sample into the configured elevation bounds.
func (t *Terrain) clampAll() {
	lo, hi := t.minElevation(), t.maxElevation()
	for i := range t.samples {
		t.samples[i] = core.ClampF(t.samples[i], lo, hi)
	}
}

// carveFeatures injects a few dramatic peaks or valleys: each blends the
// affected samples toward an extreme with linear distance falloff.
func (t *Terrain) carveFeatures(rng *rand.Rand) {
	n := len(t.samples)
	count := t.cfg.FeaturesMin
	if spread := t.cfg.FeaturesMax - t.cfg.FeaturesMin; spread > 0 {
		count += rng.Intn(spread + 1)
	}

	lo, hi := t.minElevation(), t.maxElevation()

	for f := 0; f < count; f++ {
		center := rng.Intn(n)
		halfWidth := n/40 + rng.Intn(n/15+1)
		if halfWidth < 2 {
			halfWidth = 2
		}

		target := lo // valley
		if rng.Intn(2) == 1 {
			target = hi // peak
		}
		strength := 0.6 + rng.Float64()*0.4

		for i := center - halfWidth; i <= center+halfWidth; i++ {
			if i < 0 || i >= n {
				continue
			}
			falloff := 1.0 - float64(core.Abs(i-center))/float64(halfWidth)
			t.samples[i] += (target - t.samples[i]) * falloff * strength
			t.samples[i] = core.ClampF(t.samples[i], lo, hi)
		}
	}
}

// placePlatform picks a pad site, preferring a stretch of moderate
// elevation and defaulting to the world midpoint, then flattens the span
// under it to exactly the pad height.
func (t *Terrain) placePlatform(padWidth float64, rng *rand.Rand) {
	n := len(t.samples)

	if padWidth <= 0 {
		spread := t.padCfg.MaxWidth - t.padCfg.MinWidth
		padWidth = t.padCfg.MinWidth + rng.Float64()*spread
	}
	t.padWidth = padWidth

	t.padCenterX = t.scanForSite(padWidth, rng)

	// Pad height: elevation at the chosen center averaged with its
	// immediate neighbors.
	centerIdx := t.indexOf(t.padCenterX)
	sum, cnt := 0.0, 0
	for i := centerIdx - 1; i <= centerIdx+1; i++ {
		if i >= 0 && i < n {
			sum += t.samples[i]
			cnt++
		}
	}
	t.padHeight = sum / float64(cnt)

	// Flatten the span under the pad. The span is resolved through the
	// same coordinate mapping queries use, so every probe across the pad
	// reports exactly the pad height.
	startIdx := t.indexOf(t.padCenterX - padWidth/2.0)
	endIdx := t.indexOf(t.padCenterX + padWidth/2.0)
	for i := startIdx; i <= endIdx; i++ {
		t.samples[i] = t.padHeight
	}
}

// scanForSite looks for a pad center whose surroundings sit at moderate
// elevation: not up a peak, not down a crater. Candidates are collected
// across the allowed span and one is chosen at random; with no candidate
// the pad goes at the world midpoint.
func (t *Terrain) scanForSite(padWidth float64, rng *rand.Rand) float64 {
	lo, hi := t.minElevation(), t.maxElevation()
	modLo := lo + 0.15*(hi-lo)
	modHi := lo + 0.60*(hi-lo)

	margin := t.padCfg.EdgeMargin + padWidth/2.0
	n := len(t.samples)

	var candidates []float64
	step := padWidth / 2.0
	for x := margin; x <= t.bounds.W-margin; x += step {
		idx := t.indexOf(x)
		if idx < 0 || idx >= n {
			continue
		}
		e := t.samples[idx]
		if e >= modLo && e <= modHi {
			candidates = append(candidates, x)
		}
	}

	if len(candidates) == 0 {
		return t.bounds.W / 2.0
	}
	return candidates[rng.Intn(len(candidates))]
}

// smooth applies a 3-sample moving average across the surface, skipping
// the pad span so it stays exactly flat.
func (t *Terrain) smooth() {
	n := len(t.samples)
	if n < 3 {
		return
	}

	padStart := t.indexOf(t.padCenterX - t.padWidth/2.0)
	padEnd := t.indexOf(t.padCenterX + t.padWidth/2.0)

	smoothed := make([]float64, n)
	copy(smoothed, t.samples)

	for i := 1; i < n-1; i++ {
		if i >= padStart && i <= padEnd {
			continue
		}
		smoothed[i] = (t.samples[i-1] + t.samples[i] + t.samples[i+1]) / 3.0
	}

	t.samples = smoothed
}

// indexOf maps a world x coordinate to a sample index, clamped in range.
func (t *Terrain) indexOf(x float64) int {
	if len(t.samples) == 0 || t.bounds.W <= 0 {
		return 0
	}
	idx := int(x / t.bounds.W * float64(len(t.samples)))
	return core.Clamp(idx, 0, len(t.samples)-1)
}
