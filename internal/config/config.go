// Package config loads the gridpath CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate for every rejected field.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the YAML document.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Race    RaceConfig    `yaml:"race"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// MazeConfig configures the memory-corruption maze.
type MazeConfig struct {
	Size   int `yaml:"size"`
	Fallen int `yaml:"fallen"`
}

// RaceConfig configures the race-track analysis.
type RaceConfig struct {
	MinSaving   int64 `yaml:"min_saving"`
	CheatRadius int   `yaml:"cheat_radius"`
	Workers     int   `yaml:"workers"`
}

// LogConfig selects the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig names the Prometheus textfile to write; empty disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the puzzle defaults.
func Default() Config {
	return Config{
		Maze: MazeConfig{Size: 71, Fallen: 1024},
		Race: RaceConfig{MinSaving: 100, CheatRadius: 20, Workers: runtime.GOMAXPROCS(0)},
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads path over Default(). A missing file is not an error and yields
// the defaults; an empty path does the same.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects values no analysis can run with.
func (c Config) Validate() error {
	switch {
	case c.Maze.Size <= 0:
		return fmt.Errorf("%w: maze.size=%d", ErrInvalid, c.Maze.Size)
	case c.Maze.Fallen < 0:
		return fmt.Errorf("%w: maze.fallen=%d", ErrInvalid, c.Maze.Fallen)
	case c.Race.MinSaving < 0:
		return fmt.Errorf("%w: race.min_saving=%d", ErrInvalid, c.Race.MinSaving)
	case c.Race.CheatRadius < 0:
		return fmt.Errorf("%w: race.cheat_radius=%d", ErrInvalid, c.Race.CheatRadius)
	case c.Race.Workers <= 0:
		return fmt.Errorf("%w: race.workers=%d", ErrInvalid, c.Race.Workers)
	}

	return nil
}
