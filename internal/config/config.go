// Package config holds the viper-backed configuration for camelctl serve.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ConnectorConfig declares one connector to load at startup.
type ConnectorConfig struct {
	// Descriptor is the path to the connector's JSON descriptor.
	Descriptor string `mapstructure:"descriptor"`
}

// Config is the top-level serve configuration.
type Config struct {
	ContextName string            `mapstructure:"context_name"`
	LogLevel    string            `mapstructure:"log_level"`
	LogFormat   string            `mapstructure:"log_format"`
	AdminAddr   string            `mapstructure:"admin_addr"`
	Properties  map[string]string `mapstructure:"properties"`
	Connectors  []ConnectorConfig `mapstructure:"connectors"`
	// Endpoints are URIs resolved when the context starts, so a serving
	// instance has something to explain.
	Endpoints []string `mapstructure:"endpoints"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		ContextName: "camel",
		LogLevel:    "info",
		LogFormat:   "text",
		AdminAddr:   ":8080",
	}
}

// Load unmarshals the current viper state over the defaults.
func Load() (Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
