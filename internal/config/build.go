package config

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/gmath"
	"github.com/ilyakh/tui-sparks/internal/particle"
)

// Build converts an emitter preset into particle emitter params. The preset
// comes from user-editable YAML, so every problem is reported as an error
// rather than a panic. Position and fields are the scene's business and are
// left zero; callers fill them in before constructing the emitter.
func Build(cfg EmitterConfig, rng *rand.Rand) (particle.Params, error) {
	var params particle.Params

	rate, err := buildRate(cfg.Rate, rng)
	if err != nil {
		return params, err
	}

	speed, err := buildSpeed(cfg.Speed, rng)
	if err != nil {
		return params, err
	}

	dir, err := buildDirection(cfg.Direction, rng)
	if err != nil {
		return params, err
	}

	lifetime, err := buildLifetime(cfg.Lifetime, rng)
	if err != nil {
		return params, err
	}

	color, err := buildColor(cfg.Colors, rng)
	if err != nil {
		return params, err
	}

	if cfg.Size < 0 {
		return params, fmt.Errorf("config: size %d must be >= 0", cfg.Size)
	}

	params.Rate = rate
	params.Speed = speed
	params.Dir = dir
	params.Lifetime = lifetime
	params.Color = color
	params.Size = cfg.Size
	return params, nil
}

func buildRate(cfg RateConfig, rng *rand.Rand) (particle.Rate, error) {
	switch cfg.Kind {
	case "burst":
		if cfg.Count <= 0 {
			return nil, fmt.Errorf("config: burst rate needs count > 0, got %d", cfg.Count)
		}
		return particle.NewBurst(cfg.Count), nil
	case "constant":
		if cfg.Delay <= 0 {
			return nil, fmt.Errorf("config: constant rate needs delay > 0, got %g", cfg.Delay)
		}
		return particle.NewDelayConstant(cfg.Delay), nil
	case "range":
		if err := checkDelayRange(cfg.Min, cfg.Max); err != nil {
			return nil, err
		}
		return particle.NewDelayRange(rng, cfg.Min, cfg.Max), nil
	case "range-lifetime":
		if err := checkDelayRange(cfg.Min, cfg.Max); err != nil {
			return nil, err
		}
		if cfg.Lifetime <= 0 {
			return nil, fmt.Errorf("config: range-lifetime rate needs lifetime > 0, got %g", cfg.Lifetime)
		}
		return particle.NewDelayRangeLifetime(rng, cfg.Min, cfg.Max, cfg.Lifetime), nil
	default:
		return nil, fmt.Errorf("config: unknown rate kind %q (want burst, constant, range or range-lifetime)", cfg.Kind)
	}
}

func checkDelayRange(min, max float64) error {
	if min <= 0 || max < min {
		return fmt.Errorf("config: delay range [%g, %g] must be positive and ordered", min, max)
	}
	return nil
}

func buildSpeed(cfg RangeConfig, rng *rand.Rand) (particle.Speed, error) {
	if cfg.Min < 0 || cfg.Max < cfg.Min {
		return nil, fmt.Errorf("config: speed range [%g, %g] must be non-negative and ordered", cfg.Min, cfg.Max)
	}
	if cfg.Min == cfg.Max {
		return particle.SpeedConstant{V: cfg.Min}, nil
	}
	return particle.NewSpeedRange(rng, cfg.Min, cfg.Max), nil
}

func buildDirection(cfg DirectionConfig, rng *rand.Rand) (particle.Direction, error) {
	switch cfg.Kind {
	case "any":
		return particle.NewDirectionAny(rng), nil
	case "constant":
		if cfg.X == 0 && cfg.Y == 0 {
			return nil, fmt.Errorf("config: constant direction needs a non-zero vector")
		}
		return particle.NewDirectionConstant(gmath.Vec2{X: cfg.X, Y: cfg.Y}), nil
	case "spread":
		if cfg.Spread < 0 {
			return nil, fmt.Errorf("config: direction spread %g must be >= 0 degrees", cfg.Spread)
		}
		return particle.NewDirectionSpread(rng, degToRad(cfg.Angle), degToRad(cfg.Spread)), nil
	default:
		return nil, fmt.Errorf("config: unknown direction kind %q (want any, constant or spread)", cfg.Kind)
	}
}

func buildLifetime(cfg RangeConfig, rng *rand.Rand) (particle.Lifetime, error) {
	if cfg.Min <= 0 || cfg.Max < cfg.Min {
		return nil, fmt.Errorf("config: lifetime range [%g, %g] must be positive and ordered", cfg.Min, cfg.Max)
	}
	if cfg.Min == cfg.Max {
		return particle.LifetimeConstant{Seconds: cfg.Min}, nil
	}
	return particle.NewLifetimeRange(rng, cfg.Min, cfg.Max), nil
}

func buildColor(names []string, rng *rand.Rand) (particle.ColorPolicy, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("config: colors list is empty (known colors: %s)", strings.Join(core.ColorNames(), ", "))
	}
	colors := make([]core.Color, 0, len(names))
	for _, name := range names {
		c, err := core.ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 1 {
		return particle.ColorConstant{C: colors[0]}, nil
	}
	return particle.NewColorChoice(rng, colors...)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
