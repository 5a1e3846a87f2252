// Package config provides YAML-based scene configuration loading and
// intensity presets for the sparks playground.
package config

// EmitterConfig describes one emitter preset: the rate, speed, direction,
// lifetime and color policies plus the visual particle size.
type EmitterConfig struct {
	Rate      RateConfig      `yaml:"rate"`
	Speed     RangeConfig     `yaml:"speed"`
	Direction DirectionConfig `yaml:"direction"`
	Lifetime  RangeConfig     `yaml:"lifetime"`
	Colors    []string        `yaml:"colors"`
	Size      int             `yaml:"size"`
}

// RateConfig selects and parameterizes an emission rate policy.
type RateConfig struct {
	Kind     string  `yaml:"kind"`     // "burst", "constant", "range" or "range-lifetime"
	Count    int     `yaml:"count"`    // burst: particles fired at once
	Delay    float64 `yaml:"delay"`    // constant: seconds between particles
	Min      float64 `yaml:"min"`      // range kinds: delay lower bound
	Max      float64 `yaml:"max"`      // range kinds: delay upper bound
	Lifetime float64 `yaml:"lifetime"` // range-lifetime: seconds until the rate completes
}

// RangeConfig is a [min, max] interval. Min == Max selects a constant policy.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DirectionConfig selects and parameterizes a direction policy. Angles are
// degrees, 0 pointing right and 90 pointing down (screen coordinates).
type DirectionConfig struct {
	Kind   string  `yaml:"kind"`   // "any", "constant" or "spread"
	X      float64 `yaml:"x"`      // constant: direction vector
	Y      float64 `yaml:"y"`      //
	Angle  float64 `yaml:"angle"`  // spread: base angle in degrees
	Spread float64 `yaml:"spread"` // spread: half-angle in degrees
}

// FountainConfig contains all configuration for the fountain scene.
type FountainConfig struct {
	Emitter   EmitterConfig   `yaml:"emitter"`
	Gravity   float64         `yaml:"gravity"`    // Downward acceleration, cells/s^2
	MoveSpeed float64         `yaml:"move_speed"` // Emitter travel speed, cells/s
	Intensity IntensityConfig `yaml:"intensity"`
}

// FireworksConfig contains all configuration for the fireworks scene.
type FireworksConfig struct {
	Shell      EmitterConfig   `yaml:"shell"`       // Preset for each exploding shell
	Gravity    float64         `yaml:"gravity"`     // Downward acceleration, cells/s^2
	Drag       float64         `yaml:"drag"`        // Velocity decay coefficient
	ShellDelay RangeConfig     `yaml:"shell_delay"` // Seconds between scheduled shells
	Shells     int             `yaml:"shells"`      // Shells in one show
	Intensity  IntensityConfig `yaml:"intensity"`
}

// SmokeConfig contains all configuration for the smoke scene.
type SmokeConfig struct {
	Emitter    EmitterConfig    `yaml:"emitter"`
	Updraft    float64          `yaml:"updraft"` // Upward acceleration, cells/s^2
	Drag       float64          `yaml:"drag"`    // Velocity decay coefficient
	Turbulence TurbulenceConfig `yaml:"turbulence"`
	MoveSpeed  float64          `yaml:"move_speed"` // Source travel speed, cells/s
}

// TurbulenceConfig parameterizes random kicks applied to smoke particles.
type TurbulenceConfig struct {
	Chance    float64 `yaml:"chance"`    // Per-query kick probability in [0, 1]
	Magnitude float64 `yaml:"magnitude"` // Kick acceleration, cells/s^2
}

// OrbitConfig contains all configuration for the orbit scene.
type OrbitConfig struct {
	Emitter     EmitterConfig `yaml:"emitter"`
	Attract     float64       `yaml:"attract"`      // Pull toward the well, cells/s^2
	Falloff     float64       `yaml:"falloff"`      // Falloff radius in cells, 0 = none
	SpawnRadius float64       `yaml:"spawn_radius"` // Particles spawn on this ring
	MoveSpeed   float64       `yaml:"move_speed"`   // Well travel speed, cells/s
}
