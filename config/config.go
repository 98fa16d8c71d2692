// Package config loads the YAML run configuration consumed by cmd/fmm1d.
//
// No single teacher file uses YAML at runtime (gopkg.in/yaml.v3 ships in the
// pristine pack's go.mod but unexercised); this package is its natural home
// in this domain, following the teacher's example-driver convention of a
// small typed config struct loaded once at process start.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bbfmm/fmm1d/internal/ferrors"
)

// Config is the run configuration for cmd/fmm1d.
type Config struct {
	Rank      int     `yaml:"rank"`
	Kernel    string  `yaml:"kernel"` // "laplacian" | "gaussian"
	GaussianA float64 `yaml:"gaussianA"`
	InputFile string  `yaml:"inputFile"`
	Verify    bool    `yaml:"verify"`
}

// Load reads and parses the YAML document at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ferrors.Wrap(ferrors.EmptyInput, "config.Load", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, ferrors.Wrap(ferrors.InvalidShape, "config.Load", err)
	}

	if c.Rank < 1 {
		return Config{}, ferrors.Wrap(ferrors.InvalidRank, "config.Load",
			fmt.Errorf("rank must be >= 1, got %d", c.Rank))
	}
	switch c.Kernel {
	case "laplacian", "gaussian":
	default:
		return Config{}, ferrors.Wrap(ferrors.InvalidShape, "config.Load",
			fmt.Errorf("kernel must be \"laplacian\" or \"gaussian\", got %q", c.Kernel))
	}
	if c.InputFile == "" {
		return Config{}, ferrors.Wrap(ferrors.EmptyInput, "config.Load",
			fmt.Errorf("inputFile must be set"))
	}

	return c, nil
}
