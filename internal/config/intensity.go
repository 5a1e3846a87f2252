package config

import "math"

// IntensityConfig defines how a scene's intensity ramps over time.
type IntensityConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = calm, 1.0 = wild
	Ramp         RampConfig    `yaml:"ramp"`
	Scaling      ScalingConfig `yaml:"scaling"`
}

// RampConfig defines how intensity increases as the scene runs.
type RampConfig struct {
	Type  string  `yaml:"type"`   // "time" or "none"
	MaxAt float64 `yaml:"max_at"` // Seconds at which max intensity is reached
}

// ScalingConfig defines the magnitude of intensity changes.
type ScalingConfig struct {
	RateMultiplier  float64 `yaml:"rate_multiplier"`  // Emission rate gain at max intensity
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Particle speed gain at max intensity
}

// IntensityPreset represents a named intensity level.
type IntensityPreset string

const (
	IntensityCalm   IntensityPreset = "calm"
	IntensityNormal IntensityPreset = "normal"
	IntensityWild   IntensityPreset = "wild"
	IntensityFixed  IntensityPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for an intensity preset.
func InitialLevelForPreset(preset IntensityPreset) float64 {
	switch preset {
	case IntensityCalm:
		return 0.0
	case IntensityNormal:
		return 0.3
	case IntensityWild:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables the time ramp.
func IsFixedPreset(preset IntensityPreset) bool {
	return preset == IntensityFixed
}

// ApplyPreset modifies an intensity config based on a named preset.
func ApplyPreset(cfg *IntensityConfig, preset IntensityPreset) {
	if preset == IntensityFixed {
		cfg.Enabled = false
	} else {
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}

// IntensityManager calculates dynamic scene parameters from elapsed time.
type IntensityManager struct {
	cfg          IntensityConfig
	initialLevel float64
}

// NewIntensityManager creates a new intensity manager.
func NewIntensityManager(cfg IntensityConfig) *IntensityManager {
	return &IntensityManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// IsEnabled returns whether the intensity ramp is active.
func (m *IntensityManager) IsEnabled() bool {
	return m.cfg.Enabled && m.cfg.Ramp.Type != "none"
}

// Level returns the current intensity level (0.0 to 1.0) for the elapsed
// scene time in seconds.
func (m *IntensityManager) Level(elapsed float64) float64 {
	if !m.cfg.Enabled || m.cfg.Ramp.Type != "time" {
		return m.initialLevel
	}

	maxAt := m.cfg.Ramp.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(elapsed/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return m.initialLevel + progress*(1.0-m.initialLevel)
}

// RateScale returns the emission rate multiplier for the elapsed time. A
// scene divides its base inter-emission delay by this.
func (m *IntensityManager) RateScale(elapsed float64) float64 {
	return 1.0 + m.Level(elapsed)*m.cfg.Scaling.RateMultiplier
}

// SpeedScale returns the particle speed multiplier for the elapsed time.
func (m *IntensityManager) SpeedScale(elapsed float64) float64 {
	return 1.0 + m.Level(elapsed)*m.cfg.Scaling.SpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
