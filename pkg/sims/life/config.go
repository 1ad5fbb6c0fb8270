package life

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds engine parameters.
type Config struct {
	// Resolution is the tessellation the game starts at.
	Resolution int `yaml:"resolution"`
	// MinResolution and MaxResolution bound resolution changes. They are
	// clamped to what the grid index supports.
	MinResolution int `yaml:"min_resolution"`
	MaxResolution int `yaml:"max_resolution"`

	// Probability is the per-cell occupancy chance used when reseeding.
	Probability float64 `yaml:"probability"`
	// Seed drives reseeding; zero picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// Workers is the number of goroutines a tick is split across; zero or
	// less uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Rule is the rule table in B/S notation.
	Rule string `yaml:"rule"`

	// Terrain enables richness-dependent rules seeded from noise.
	Terrain      bool    `yaml:"terrain"`
	TerrainScale float64 `yaml:"terrain_scale"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Resolution:    2,
		MinResolution: 0,
		MaxResolution: 5,
		Probability:   0.5,
		Rule:          DefaultRules().String(),
		TerrainScale:  1.5,
	}
}

// Rules parses the configured rule string.
func (c Config) Rules() (RuleTable, error) {
	return ParseRule(c.Rule)
}

// Validate reports inconsistent values.
func (c Config) Validate() error {
	if c.MinResolution > c.MaxResolution {
		return fmt.Errorf("min_resolution %d above max_resolution %d", c.MinResolution, c.MaxResolution)
	}
	if c.Resolution < c.MinResolution || c.Resolution > c.MaxResolution {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrResolutionRange, c.Resolution, c.MinResolution, c.MaxResolution)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("probability %v not in [0, 1]", c.Probability)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge overrides fields of c with the recognized keys of cfg. Values that
// fail to parse are ignored.
func (c Config) Merge(cfg map[string]string) Config {
	if v, ok := cfg["resolution"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Resolution = parsed
		}
	}
	if v, ok := cfg["min_resolution"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MinResolution = parsed
		}
	}
	if v, ok := cfg["max_resolution"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxResolution = parsed
		}
	}
	if v, ok := cfg["probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Probability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := ParseRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Terrain = parsed
		}
	}
	if v, ok := cfg["terrain_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TerrainScale = parsed
		}
	}
	return c
}
