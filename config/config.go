// Package config holds the runtime settings for the kitchen simulation
// and the logger construction shared by the entry points.
package config

import (
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the simulation runtime configuration
type Config struct {
	// TickRate is the number of simulation ticks per second
	TickRate float64 `yaml:"tick_rate"`
	// EventBuffer is the initial event queue capacity; the queue grows
	// past it rather than dropping events
	EventBuffer int `yaml:"event_buffer"`
	// LogLevel is a zap level name: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		TickRate:    20,
		EventBuffer: 256,
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults
// Missing keys keep their default values; the merged result is validated
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "validate config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 || math.IsNaN(c.TickRate) || math.IsInf(c.TickRate, 0) {
		return errors.Errorf("tick_rate must be a positive finite number, got %v", c.TickRate)
	}
	if c.EventBuffer < 0 {
		return errors.Errorf("event_buffer must not be negative, got %d", c.EventBuffer)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return nil
}

// DT returns the simulation step in seconds for one tick
func (c Config) DT() float64 {
	return 1.0 / c.TickRate
}

// TickInterval returns the wall-clock duration of one tick
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// NewLogger builds the process logger at the configured level
// JSON to stderr, no sampling; simulation output stays on stdout
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log_level %q", c.LogLevel)
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}
