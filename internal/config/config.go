// Package config provides configuration management for gorm-postgres-enforcer.
//
// Configuration is loaded from:
// 1. .gorm-postgres-enforcer.yaml in the working directory (optional)
// 2. Environment variables (LOG_LEVEL, LOG_FORMAT, OUTPUT_FORMAT)
// 3. Default values
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// OutputConfig contains report output settings.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json, or sarif
}

// Load reads configuration from file and environment variables.
// Environment variables use standard names without prefix: nested keys map
// dot to underscore, so output.format is overridden by OUTPUT_FORMAT.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".gorm-postgres-enforcer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json", "sarif":
	default:
		return fmt.Errorf("output.format must be text, json, or sarif, got %q", c.Output.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Output
	v.SetDefault("output.format", "text")
}
