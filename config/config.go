// Package config holds the viper-backed configuration for tagpulse.
// Values come from (in increasing precedence) built-in defaults, the config
// file, TAGPULSE_* environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the complete tagpulse configuration.
type Config struct {
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
	Report     ReportConfig    `mapstructure:"report"`
}

// ThresholdConfig controls trend classification.
type ThresholdConfig struct {
	// RisingMin is the mean growth rate (percent) at or above which a tag
	// classifies as rising.
	RisingMin float64 `mapstructure:"rising_min"`
	// DecliningMax is the mean growth rate (percent) at or below which a tag
	// classifies as declining.
	DecliningMax float64 `mapstructure:"declining_max"`
}

// ReportConfig controls presentation output.
type ReportConfig struct {
	// TopN limits how many tags the ranking table shows (0 = all).
	TopN int `mapstructure:"top_n"`
	// ChartWidth is the rendered chart width in pixels.
	ChartWidth int `mapstructure:"chart_width"`
	// ChartHeight is the rendered chart height in pixels.
	ChartHeight int `mapstructure:"chart_height"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Thresholds: ThresholdConfig{
			RisingMin:    5.0,
			DecliningMax: -5.0,
		},
		Report: ReportConfig{
			TopN:        10,
			ChartWidth:  1024,
			ChartHeight: 400,
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("thresholds.rising_min", defaults.Thresholds.RisingMin)
	viper.SetDefault("thresholds.declining_max", defaults.Thresholds.DecliningMax)

	viper.SetDefault("report.top_n", defaults.Report.TopN)
	viper.SetDefault("report.chart_width", defaults.Report.ChartWidth)
	viper.SetDefault("report.chart_height", defaults.Report.ChartHeight)
}

// Load reads the configuration from viper into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// loading fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks value sanity.
func (c *Config) Validate() error {
	if c.Thresholds.RisingMin <= c.Thresholds.DecliningMax {
		return fmt.Errorf("invalid thresholds: rising_min (%.2f) must exceed declining_max (%.2f)",
			c.Thresholds.RisingMin, c.Thresholds.DecliningMax)
	}
	if c.Report.TopN < 0 {
		return fmt.Errorf("invalid report.top_n: %d", c.Report.TopN)
	}
	if c.Report.ChartWidth <= 0 || c.Report.ChartHeight <= 0 {
		return fmt.Errorf("invalid chart size: %dx%d", c.Report.ChartWidth, c.Report.ChartHeight)
	}
	return nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tagpulse")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tagpulse"
	}
	return filepath.Join(home, ".config", "tagpulse")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
