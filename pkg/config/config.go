// Package config loads stopwatch host configuration from YAML.
//
// Example file:
//
//	countdown:
//	  interval: 250ms
//	  max_hours: 999
//	stopwatch:
//	  interval: 10ms
//	log:
//	  level: info
//	  events: /var/log/stopwatch/
//
// Missing keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RajatGang07/stop-watch/pkg/hms"
	"github.com/RajatGang07/stop-watch/pkg/poller"
)

// Interval bounds.
const (
	MinInterval = 10 * time.Millisecond
	MaxInterval = time.Second
)

// Configuration errors.
var (
	ErrInvalidInterval = errors.New("invalid polling interval")
	ErrInvalidMaxHours = errors.New("invalid max hours")
	ErrInvalidLevel    = errors.New("invalid log level")
)

// Config holds host configuration.
type Config struct {
	Countdown CountdownConfig `yaml:"countdown"`
	Stopwatch StopwatchConfig `yaml:"stopwatch"`
	Log       LogConfig       `yaml:"log"`
}

// CountdownConfig configures the countdown widget.
type CountdownConfig struct {
	// Interval is the polling cadence.
	Interval time.Duration `yaml:"interval"`

	// MaxHours caps the hour field.
	MaxHours int `yaml:"max_hours"`
}

// StopwatchConfig configures the stopwatch widget.
type StopwatchConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// LogConfig configures operational and event logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Events is the event log path. A directory gets one session file per
	// run. Empty disables the file.
	Events string `yaml:"events"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Countdown: CountdownConfig{
			Interval: poller.CountdownInterval,
			MaxHours: hms.MaxInputHours,
		},
		Stopwatch: StopwatchConfig{
			Interval: poller.StopwatchInterval,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	if err := validateInterval("countdown", c.Countdown.Interval); err != nil {
		return err
	}
	if err := validateInterval("stopwatch", c.Stopwatch.Interval); err != nil {
		return err
	}
	if c.Countdown.MaxHours < 1 || c.Countdown.MaxHours > hms.MaxInputHours {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidMaxHours, c.Countdown.MaxHours, hms.MaxInputHours)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func validateInterval(name string, d time.Duration) error {
	if d < MinInterval || d > MaxInterval {
		return fmt.Errorf("%w: %s interval %v (must be %v-%v)", ErrInvalidInterval, name, d, MinInterval, MaxInterval)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be debug, info, warn or error)", ErrInvalidLevel, s)
	}
}
