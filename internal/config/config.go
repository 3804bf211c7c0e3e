package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures planning and output defaults for the beatcut CLI.
type Config struct {
	Version int          `yaml:"version"`
	Plan    PlanConfig   `yaml:"plan"`
	Snap    SnapConfig   `yaml:"snap"`
	Output  OutputConfig `yaml:"output"`
}

// PlanConfig holds default planning parameters.
type PlanConfig struct {
	Style  string `yaml:"style"`
	Images int    `yaml:"images"` // 0 means the count must come from the command line
}

// SnapConfig holds beat-snapping defaults.
type SnapConfig struct {
	ToleranceSec float64 `yaml:"tolerance_s"`
}

// OutputConfig controls how commands render their results.
type OutputConfig struct {
	NoProgress bool `yaml:"no_progress"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Plan: PlanConfig{
			Style: "medium",
		},
		Snap: SnapConfig{
			ToleranceSec: 0.1,
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures nested fields fall back to sensible defaults when the
// YAML omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Plan.Style == "" {
		c.Plan.Style = defaults.Plan.Style
	}
	if c.Snap.ToleranceSec == 0 {
		c.Snap.ToleranceSec = defaults.Snap.ToleranceSec
	}
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}
