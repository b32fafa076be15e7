package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Config holds the configuration for the game
type Config struct {
	Width             int           `json:"width"`
	Height            int           `json:"height"`
	FrameRate         time.Duration `json:"frame_rate"`
	AutoAdvance       bool          `json:"auto_advance"`
	MaxGenerations    int           `json:"max_generations"`
	Rule              string        `json:"rule"`
	Pattern           string        `json:"pattern"`
	PatternOffset     model.Coord   `json:"pattern_offset"`
	Alive             []model.Coord `json:"alive"`
	DetectOscillators bool          `json:"detect_oscillators"`
	HistorySize       int           `json:"history_size"`
	Interactive       bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          25,
		Height:         25,
		FrameRate:      150 * time.Millisecond,
		AutoAdvance:    true,
		MaxGenerations: 1000,
		Rule:           rules.Conway.String(),
		Pattern:        "glider",
		PatternOffset:  model.Coord{X: 1, Y: 1},
		HistorySize:    5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values that would otherwise fail later at runtime
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidDimensions, "[Validate] got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, err := rules.Parse(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate] bad rule")
	}
	if c.Pattern != "" {
		if _, err := model.PatternByName(c.Pattern); err != nil {
			return errors.Wrap(err, "[Validate] bad pattern")
		}
	}
	return nil
}

// Seed returns the alive coordinates described by the configuration:
// the named pattern shifted by PatternOffset, plus any explicit Alive cells
func (c Config) Seed() ([]model.Coord, error) {
	var seed []model.Coord
	if c.Pattern != "" {
		p, err := model.PatternByName(c.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "[Seed] failed to resolve pattern")
		}
		seed = model.Offset(p, c.PatternOffset.X, c.PatternOffset.Y)
	}
	return append(seed, c.Alive...), nil
}
