package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// runConfig holds schemagen's tunable defaults, overridable by flags
// or an optional config file.
type runConfig struct {
	Whitespace string `mapstructure:"whitespace"`
	MaxDepth   int    `mapstructure:"max_depth"`
	Locale     string `mapstructure:"locale"`
	Verbose    bool   `mapstructure:"verbose"`
}

// loadConfig reads defaults, then an optional YAML/JSON config file at
// configPath (if non-empty), then returns the merged result. Flags
// parsed by cobra always take precedence and are applied by the
// caller after this returns.
func loadConfig(configPath string) (*runConfig, error) {
	v := viper.New()

	v.SetDefault("whitespace", `[ ]?`)
	v.SetDefault("max_depth", 3)
	v.SetDefault("locale", "en")
	v.SetDefault("verbose", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("schemagen: reading config %s: %w", configPath, err)
		}
	}

	var cfg runConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("schemagen: parsing config: %w", err)
	}
	return &cfg, nil
}
