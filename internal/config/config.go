// Package config provides YAML-based game configuration loading and
// difficulty management for the lunarcade platform.
package config

// LanderConfig contains all configuration for the lunar lander mission.
type LanderConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Fuel       FuelConfig       `yaml:"fuel"`
	Lander     LanderBody       `yaml:"lander"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Platform   PlatformConfig   `yaml:"platform"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation coordinate box. Physics runs in this
// fixed world regardless of terminal size; the renderer projects it.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines force and rotation parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // m/s^2, negative = downward
	MainThrust   float64 `yaml:"main_thrust"`   // Newtons
	RotationRate float64 `yaml:"rotation_rate"` // rad/s of attitude thrusters
}

// FuelConfig defines the fuel and mass model.
type FuelConfig struct {
	Capacity     float64 `yaml:"capacity"`      // kg of fuel at launch
	DryMass      float64 `yaml:"dry_mass"`      // kg without fuel
	MainRate     float64 `yaml:"main_rate"`     // kg/s while the main engine burns
	AttitudeRate float64 `yaml:"attitude_rate"` // kg/s while attitude thrusters fire
}

// LanderBody defines the craft footprint and landing safety envelope.
type LanderBody struct {
	Width         float64 `yaml:"width"`           // world units across the legs
	SafeAxisSpeed float64 `yaml:"safe_axis_speed"` // max |dx| and |dy| at touchdown
	SafeTilt      float64 `yaml:"safe_tilt"`       // max radians off upright
}

// TerrainOctave is one sine component of the heightfield. Octaves are
// listed largest feature first; amplitude is in world units and frequency
// in full waves across the world width.
type TerrainOctave struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// TerrainConfig defines heightfield generation parameters.
type TerrainConfig struct {
	Resolution     float64         `yaml:"resolution"`      // samples per world unit
	BaseFraction   float64         `yaml:"base_fraction"`   // base elevation as fraction of world height
	MinHeight      float64         `yaml:"min_height"`      // elevation floor, world units
	MaxFraction    float64         `yaml:"max_fraction"`    // elevation ceiling as fraction of world height
	Roughness      float64         `yaml:"roughness"`       // scales per-sample noise
	NoiseAmplitude float64         `yaml:"noise_amplitude"` // world units of random jitter per sample
	Octaves        []TerrainOctave `yaml:"octaves"`
	FeaturesMin    int             `yaml:"features_min"` // dramatic peaks/valleys, lower bound
	FeaturesMax    int             `yaml:"features_max"` // dramatic peaks/valleys, upper bound
	Smoothing      bool            `yaml:"smoothing"`    // 3-sample moving average, platform excluded
}

// PlatformConfig defines the landing pad carved into the terrain.
type PlatformConfig struct {
	MinWidth   float64 `yaml:"min_width"`   // world units
	MaxWidth   float64 `yaml:"max_width"`   // world units
	EdgeMargin float64 `yaml:"edge_margin"` // keep the pad this far from world edges
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "successes", "attempts", or "none"
	MaxAt int    `yaml:"max_at"` // count at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PlatformReduction float64 `yaml:"platform_reduction"` // pad width shaved off at max difficulty
	FuelReduction     float64 `yaml:"fuel_reduction"`     // launch fuel shaved off at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
