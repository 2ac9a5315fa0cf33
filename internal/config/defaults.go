package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default mission configuration. Physics
// constants model the Apollo descent stage: 45 kN of thrust against a
// 10,183 kg dry mass carrying 5,000 kg of fuel under lunar gravity.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      -1.625,
			MainThrust:   45000.0,
			RotationRate: 6.0,
		},
		Fuel: FuelConfig{
			Capacity:     5000.0,
			DryMass:      10183.0,
			MainRate:     10.0,
			AttitudeRate: 1.0,
		},
		Lander: LanderBody{
			Width:         20.0,
			SafeAxisSpeed: 2.0,
			SafeTilt:      0.2,
		},
		Terrain: TerrainConfig{
			Resolution:     1.0,
			BaseFraction:   0.15,
			MinHeight:      5.0,
			MaxFraction:    0.35,
			Roughness:      0.6,
			NoiseAmplitude: 12.0,
			Octaves: []TerrainOctave{
				{Amplitude: 45.0, Frequency: 1.5},
				{Amplitude: 22.0, Frequency: 3.7},
				{Amplitude: 9.0, Frequency: 9.1},
			},
			FeaturesMin: 2,
			FeaturesMax: 4,
			Smoothing:   true,
		},
		Platform: PlatformConfig{
			MinWidth:   50.0,
			MaxWidth:   100.0,
			EdgeMargin: 50.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "successes",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				PlatformReduction: 30.0,
				FuelReduction:     1500.0,
			},
		},
	}
}
