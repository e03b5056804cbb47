package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Proxy string `yaml:"proxy"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Simulation struct {
		DefaultSimulations int     `yaml:"default_simulations"`
		DefaultYears       float64 `yaml:"default_years"`
	} `yaml:"simulation"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}

	// Defaults
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 * * * *" // hourly
	}
	if cfg.Simulation.DefaultSimulations == 0 {
		cfg.Simulation.DefaultSimulations = 10000
	}
	if cfg.Simulation.DefaultYears == 0 {
		cfg.Simulation.DefaultYears = 15
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Simulation.DefaultSimulations < 1 || c.Simulation.DefaultSimulations > 100000 {
		return fmt.Errorf("simulation.default_simulations must be within [1, 100000]")
	}
	if c.Simulation.DefaultYears <= 0 || c.Simulation.DefaultYears > 100 {
		return fmt.Errorf("simulation.default_years must be within (0, 100]")
	}
	return nil
}
