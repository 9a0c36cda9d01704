package utils

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ─── Defaults ───────────────────────────────────────────────────────────

const (
	DefaultMaxSampleSize   = 1_000_000
	DefaultGuessMin        = 1
	DefaultGuessMax        = 100
	DefaultRectangleWidth  = 30
	DefaultRectangleHeight = 50
	DefaultCompany         = "Z-Corp"
)

// ─── Per-program configs ────────────────────────────────────────────────

type TendencyConfig struct {
	// MaxSampleSize caps the drawn sample size so that huge ranges cannot
	// exhaust memory.
	MaxSampleSize int `yaml:"max_sample_size"`
}

type GuessConfig struct {
	Min uint32 `yaml:"min"`
	Max uint32 `yaml:"max"`
}

type RectangleConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

type DepartmentsConfig struct {
	Company string              `yaml:"company"`
	Seed    map[string][]string `yaml:"seed"` // department -> employees loaded at start
}

// Config is the top-level structure of the optional YAML config file.
type Config struct {
	Tendency    TendencyConfig    `yaml:"tendency"`
	Guess       GuessConfig       `yaml:"guess"`
	Rectangle   RectangleConfig   `yaml:"rectangle"`
	Departments DepartmentsConfig `yaml:"departments"`
}

// DefaultConfig returns the settings every program uses when no config file
// is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills zero-valued sections. Pairs (guess bounds) are only
// replaced when both halves are unset.
func (c *Config) applyDefaults() {
	if c.Tendency.MaxSampleSize == 0 {
		c.Tendency.MaxSampleSize = DefaultMaxSampleSize
	}
	if c.Guess.Min == 0 && c.Guess.Max == 0 {
		c.Guess.Min, c.Guess.Max = DefaultGuessMin, DefaultGuessMax
	}
	if c.Rectangle.Width == 0 {
		c.Rectangle.Width = DefaultRectangleWidth
	}
	if c.Rectangle.Height == 0 {
		c.Rectangle.Height = DefaultRectangleHeight
	}
	if strings.TrimSpace(c.Departments.Company) == "" {
		c.Departments.Company = DefaultCompany
	}
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Tendency.MaxSampleSize < 0 {
		return fmt.Errorf("tendency.max_sample_size must not be negative, got %d", c.Tendency.MaxSampleSize)
	}
	if c.Guess.Min > c.Guess.Max {
		return fmt.Errorf("guess.min (%d) must be <= guess.max (%d)", c.Guess.Min, c.Guess.Max)
	}
	for dept, names := range c.Departments.Seed {
		if strings.TrimSpace(dept) == "" {
			return fmt.Errorf("departments.seed contains an empty department name")
		}
		for _, n := range names {
			if strings.TrimSpace(n) == "" {
				return fmt.Errorf("departments.seed[%s] contains an empty employee name", dept)
			}
		}
	}
	return nil
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadConfig reads and parses a YAML config file. An empty path yields
// DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes, applies defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}
