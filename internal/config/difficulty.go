package config

import "math"

// DifficultyManager calculates dynamic mission parameters based on how the
// session is going: as the pilot racks up successful landings the pad
// narrows and the fuel load shrinks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on the
// session's attempt and success counts.
func (d *DifficultyManager) Level(attempts, successes int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "successes":
		progress = float64(successes) / maxAt
	case "attempts":
		progress = float64(attempts) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// PlatformWidth returns the pad width for the next attempt. The pad never
// shrinks below 1.5 lander widths so a perfect approach stays landable.
func (d *DifficultyManager) PlatformWidth(baseWidth, landerWidth float64, attempts, successes int) float64 {
	level := d.Level(attempts, successes)
	width := baseWidth - level*d.cfg.Scaling.PlatformReduction
	floor := landerWidth * 1.5
	if width < floor {
		width = floor
	}
	return width
}

// FuelLoad returns the launch fuel for the next attempt.
func (d *DifficultyManager) FuelLoad(baseFuel float64, attempts, successes int) float64 {
	level := d.Level(attempts, successes)
	fuel := baseFuel - level*d.cfg.Scaling.FuelReduction
	if fuel < baseFuel*0.25 {
		fuel = baseFuel * 0.25
	}
	return fuel
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
