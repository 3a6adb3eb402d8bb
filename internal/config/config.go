// Package config loads the application configuration from the user's
// home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elermun/daybook/internal/period"
)

// Config represents the application configuration.
type Config struct {
	// DataDir is where the snapshot slots and logs live.
	// Defaults to ~/.daybook.
	DataDir string `yaml:"data_dir"`

	// WeekStart is the weekday a week bucket begins on, lowercase
	// English ("monday", "sunday", ...). Defaults to monday.
	WeekStart string `yaml:"week_start"`
}

func defaultConfig() *Config {
	return &Config{WeekStart: "monday"}
}

func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".daybook", "config.yaml"), nil
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// ResolveDataDir returns the configured data directory, falling back to
// ~/.daybook when unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".daybook"), nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Calendar builds the period calendar the store uses for bucket math.
// An unknown week_start value is an error rather than a silent default.
func (c *Config) Calendar() (period.Calendar, error) {
	if c.WeekStart == "" {
		return period.Default, nil
	}
	day, ok := weekdays[strings.ToLower(c.WeekStart)]
	if !ok {
		return period.Calendar{}, fmt.Errorf("invalid week_start %q", c.WeekStart)
	}
	return period.Calendar{WeekStart: day}, nil
}
