package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFountain loads fountain scene configuration.
// Search order: customPath -> ~/.sparks/configs/fountain.yaml -> ./configs/fountain.yaml -> embedded default
func LoadFountain(customPath string) (FountainConfig, error) {
	var cfg FountainConfig
	if err := load("fountain.yaml", customPath, defaultFountainYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFireworks loads fireworks scene configuration.
// Search order: customPath -> ~/.sparks/configs/fireworks.yaml -> ./configs/fireworks.yaml -> embedded default
func LoadFireworks(customPath string) (FireworksConfig, error) {
	var cfg FireworksConfig
	if err := load("fireworks.yaml", customPath, defaultFireworksYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSmoke loads smoke scene configuration.
// Search order: customPath -> ~/.sparks/configs/smoke.yaml -> ./configs/smoke.yaml -> embedded default
func LoadSmoke(customPath string) (SmokeConfig, error) {
	var cfg SmokeConfig
	if err := load("smoke.yaml", customPath, defaultSmokeYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrbit loads orbit scene configuration.
// Search order: customPath -> ~/.sparks/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default
func LoadOrbit(customPath string) (OrbitConfig, error) {
	var cfg OrbitConfig
	if err := load("orbit.yaml", customPath, defaultOrbitYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves one scene config through the standard search order.
// A custom path is authoritative: read or parse failures there are returned
// to the caller instead of silently falling through to defaults.
func load(filename, customPath string, embedded []byte, out interface{}) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded default for %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sparks", "configs", filename)
}
