package config

import (
	_ "embed"
)

//go:embed defaults/fountain.yaml
var defaultFountainYAML []byte

//go:embed defaults/fireworks.yaml
var defaultFireworksYAML []byte

//go:embed defaults/smoke.yaml
var defaultSmokeYAML []byte

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

// DefaultFountainConfig returns the default fountain scene configuration.
func DefaultFountainConfig() FountainConfig {
	return FountainConfig{
		Emitter: EmitterConfig{
			Rate:      RateConfig{Kind: "constant", Delay: 0.03},
			Speed:     RangeConfig{Min: 14, Max: 22},
			Direction: DirectionConfig{Kind: "spread", Angle: -90, Spread: 20},
			Lifetime:  RangeConfig{Min: 0.8, Max: 1.6},
			Colors:    []string{"cyan", "bright-blue", "white"},
			Size:      0,
		},
		Gravity:   18,
		MoveSpeed: 24,
		Intensity: IntensityConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Ramp:         RampConfig{Type: "none"},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultFireworksConfig returns the default fireworks scene configuration.
func DefaultFireworksConfig() FireworksConfig {
	return FireworksConfig{
		Shell: EmitterConfig{
			Rate:      RateConfig{Kind: "burst", Count: 80},
			Speed:     RangeConfig{Min: 4, Max: 16},
			Direction: DirectionConfig{Kind: "any"},
			Lifetime:  RangeConfig{Min: 0.6, Max: 1.4},
			Colors:    []string{"red", "yellow", "bright-magenta", "bright-cyan", "bright-green"},
			Size:      0,
		},
		Gravity:    10,
		Drag:       0.8,
		ShellDelay: RangeConfig{Min: 0.3, Max: 1.1},
		Shells:     24,
		Intensity: IntensityConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Ramp:         RampConfig{Type: "time", MaxAt: 20},
			Scaling:      ScalingConfig{RateMultiplier: 1.5},
		},
	}
}

// DefaultSmokeConfig returns the default smoke scene configuration.
func DefaultSmokeConfig() SmokeConfig {
	return SmokeConfig{
		Emitter: EmitterConfig{
			Rate:      RateConfig{Kind: "range", Min: 0.04, Max: 0.12},
			Speed:     RangeConfig{Min: 2, Max: 5},
			Direction: DirectionConfig{Kind: "spread", Angle: -90, Spread: 35},
			Lifetime:  RangeConfig{Min: 1.5, Max: 3.0},
			Colors:    []string{"gray", "white", "bright-white"},
			Size:      1,
		},
		Updraft:    3,
		Drag:       0.6,
		Turbulence: TurbulenceConfig{Chance: 0.2, Magnitude: 30},
		MoveSpeed:  18,
	}
}

// DefaultOrbitConfig returns the default orbit scene configuration.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Emitter: EmitterConfig{
			Rate:      RateConfig{Kind: "range-lifetime", Min: 0.02, Max: 0.05, Lifetime: 12},
			Speed:     RangeConfig{Min: 10, Max: 14},
			Direction: DirectionConfig{Kind: "any"},
			Lifetime:  RangeConfig{Min: 4, Max: 8},
			Colors:    []string{"bright-yellow", "orange", "bright-red"},
			Size:      0,
		},
		Attract:     40,
		Falloff:     0,
		SpawnRadius: 16,
		MoveSpeed:   20,
	}
}
