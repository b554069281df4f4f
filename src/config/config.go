// Package config loads GrainEye settings from an optional YAML file and
// GRAINEYE_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iafilius/GrainEye/src/chart"
)

// EnvPrefix is prepended to every environment override, e.g.
// GRAINEYE_LOGGING_LEVEL=debug.
const EnvPrefix = "GRAINEYE"

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Window   WindowConfig   `mapstructure:"window"`
	Charts   ChartsConfig   `mapstructure:"charts"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Location LocationConfig `mapstructure:"location"`
	Export   ExportConfig   `mapstructure:"export"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WindowConfig is the initial desktop window size.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// ChartsConfig sizes each of the two result charts.
type ChartsConfig struct {
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
	Ticks  bool `mapstructure:"ticks"`
}

// AnalysisConfig tunes the analysis backend.
type AnalysisConfig struct {
	Delay       time.Duration `mapstructure:"delay"`
	DatasetFile string        `mapstructure:"dataset_file"`
}

// LocationConfig selects how the sample location is obtained.
type LocationConfig struct {
	Provider string `mapstructure:"provider"`
	GeoIPDB  string `mapstructure:"geoip_db"`
	PublicIP string `mapstructure:"public_ip"`
}

// ExportConfig holds where charts and reports are written by default.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Location providers.
const (
	ProviderFixed = "fixed"
	ProviderGeoIP = "geoip"
)

// Load reads configuration from file and environment variables. An empty path
// skips the file and yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults alone always unmarshal.
		panic(err)
	}
	return cfg
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 820)

	v.SetDefault("charts.width", 330)
	v.SetDefault("charts.height", 260)
	v.SetDefault("charts.ticks", false)

	v.SetDefault("analysis.delay", "1.2s")
	v.SetDefault("analysis.dataset_file", "")

	v.SetDefault("location.provider", ProviderFixed)
	v.SetDefault("location.geoip_db", "")
	v.SetDefault("location.public_ip", "")

	v.SetDefault("export.dir", "")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	if c.Window.Width < 640 || c.Window.Height < 480 {
		return fmt.Errorf("window size must be at least 640x480")
	}
	if c.Charts.Width < chart.MinSurfaceWidth || c.Charts.Height < chart.MinSurfaceHeight {
		return fmt.Errorf("charts size must be at least %dx%d", chart.MinSurfaceWidth, chart.MinSurfaceHeight)
	}

	if c.Analysis.Delay < 0 {
		return fmt.Errorf("analysis.delay must not be negative")
	}

	switch c.Location.Provider {
	case ProviderFixed:
	case ProviderGeoIP:
		// An empty geoip_db falls back to the usual GeoLite2-City install paths.
		if c.Location.PublicIP == "" {
			return fmt.Errorf("location.public_ip is required when location.provider is geoip")
		}
	default:
		return fmt.Errorf("location.provider must be one of: fixed, geoip")
	}
	return nil
}
