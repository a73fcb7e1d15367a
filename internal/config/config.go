package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a dabo-sched session.
// Values are populated from .dabo-sched.yaml, DABO_SCHED_* env vars, and
// CLI flags.
type Config struct {
	PlanPath      string `mapstructure:"plan_path"`
	ProjectName   string `mapstructure:"project_name"`
	StartDate     string `mapstructure:"start_date"`
	Weekends      string `mapstructure:"weekends"`
	DatabaseURL   string `mapstructure:"database_url"`
	ListenAddr    string `mapstructure:"listen_addr"`
	HistoryPath   string `mapstructure:"history_path"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("plan_path", "plan.toml")
	viper.SetDefault("project_name", "Commercial Project")
	viper.SetDefault("start_date", "")
	viper.SetDefault("weekends", "skip")
	viper.SetDefault("database_url", "")
	viper.SetDefault("listen_addr", ":3000")
	viper.SetDefault("history_path", ".dabo-sched/history.db")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
