package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	cfg  *Config
)

// GetConfig returns the application configuration as a singleton, read from
// config.yaml in the current directory.
func GetConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("compute.ratio_potential", 1.0)
	v.SetDefault("compute.ratio_attraction", 1.6)
	v.SetDefault("compute.ratio_gradient", 8.0)
	v.SetDefault("compute.njobs", 1)
	v.SetDefault("compute.stack_max", 500)

	if err := v.ReadInConfig(); err != nil {
		cfg = nil
		return nil, fmt.Errorf("failed to read config file: %s", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		cfg = nil
		return nil, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	if err := cfg.Validate(); err != nil {
		cfg = nil
		return nil, fmt.Errorf("failed to validate config: %s", err)
	}

	if cfg == nil {
		return nil, errors.New("failed to load configuration")
	}

	return cfg, nil
}

// Reset resets the configuration singleton, useful for testing.
func Reset() {
	cfg = nil
}

// Validate checks the config to error on missing or invalid fields.
func (cfg *Config) Validate() error {
	if cfg.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if cfg.App.Version == "" {
		return fmt.Errorf("app.version is required")
	}

	if cfg.Logging.Level == "" {
		return fmt.Errorf("logging.level is required")
	}

	if cfg.Compute.ModelFile == "" {
		return fmt.Errorf("compute.model_file is required")
	}

	if cfg.Compute.RatioPotential <= 0 {
		return fmt.Errorf("compute.ratio_potential must be > 0")
	}

	if cfg.Compute.RatioAttraction <= 0 {
		return fmt.Errorf("compute.ratio_attraction must be > 0")
	}

	if cfg.Compute.RatioGradient <= 0 {
		return fmt.Errorf("compute.ratio_gradient must be > 0")
	}

	if cfg.Compute.NJobs <= 0 {
		return fmt.Errorf("compute.njobs must be > 0")
	}

	if cfg.Compute.StackMax <= 0 {
		return fmt.Errorf("compute.stack_max must be > 0")
	}

	return nil
}
