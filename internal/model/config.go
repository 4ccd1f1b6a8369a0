package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// Theme selects the color theme ("default" is the only built-in).
	Theme string `mapstructure:"theme" yaml:"theme"`

	// HeatmapDays is the trailing window length for the dashboard
	// activity heatmap.
	HeatmapDays int `mapstructure:"heatmap_days" yaml:"heatmap_days"`
}

// TrackingConfig holds data-entry preferences.
type TrackingConfig struct {
	// MinHoursIncrement is the smallest hours value the log form
	// accepts. Storage does not re-validate it.
	MinHoursIncrement float64 `mapstructure:"min_hours_increment" yaml:"min_hours_increment"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DBPath is the SQLite database location.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Tracking TrackingConfig `mapstructure:"tracking" yaml:"tracking"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/trackbuddy/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "trackbuddy", "config.yaml")
}

// DefaultDBPath returns the default SQLite database location,
// ~/.local/share/trackbuddy/trackbuddy.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "trackbuddy.db")
	}
	return filepath.Join(home, ".local", "share", "trackbuddy", "trackbuddy.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		DBPath: DefaultDBPath(),
		Display: DisplayConfig{
			Theme:       "default",
			HeatmapDays: 90,
		},
		Tracking: TrackingConfig{
			MinHoursIncrement: 0.25,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("db_path", DefaultDBPath())
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.heatmap_days", 90)
	v.SetDefault("tracking.min_hours_increment", 0.25)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.HeatmapDays <= 0 {
		cfg.Display.HeatmapDays = 90
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("db_path", cfg.DBPath)
	v.Set("display", cfg.Display)
	v.Set("tracking", cfg.Tracking)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
