package gradcheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a sparse gradient check.
type Config struct {
	// H is the half-width of the centered difference.
	H float64 `yaml:"h"`
	// Samples is the number of randomly chosen entries to probe.
	Samples int `yaml:"samples"`
	// Tolerance is the largest relative error a probe may have.
	Tolerance float64 `yaml:"tolerance"`
	// AbsTolerance accepts probes whose absolute error is below it even when
	// the relative error is large, which happens for near-zero gradients.
	AbsTolerance float64 `yaml:"abs_tolerance"`
	Seed         int64   `yaml:"seed"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		H:            1e-5,
		Samples:      10,
		Tolerance:    1e-5,
		AbsTolerance: 1e-9,
		Seed:         1,
	}
}

// Validate rejects settings that would make the check meaningless.
func (c Config) Validate() error {
	if !(c.H > 0) {
		return fmt.Errorf("%w: h must be positive, got %g", ErrConfig, c.H)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrConfig, c.Samples)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrConfig, c.Tolerance)
	}
	if c.AbsTolerance < 0 {
		return fmt.Errorf("%w: abs_tolerance must not be negative, got %g", ErrConfig, c.AbsTolerance)
	}
	return nil
}

// LoadConfig reads a YAML file.  Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read gradcheck config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse gradcheck config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
