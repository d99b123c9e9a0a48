// Package config loads validator settings from viper (config file, env vars,
// and bound CLI flags) into a typed Config.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Output format selectors for the validation report
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the validator configuration
type Config struct {
	Root             string `mapstructure:"root"`
	Strict           bool   `mapstructure:"strict"`
	Output           string `mapstructure:"output"`
	MaxLineLength    int    `mapstructure:"max_line_length"`
	DescriptionLimit int    `mapstructure:"description_limit"`
	LogLevel         string `mapstructure:"log_level"`
	LogFormat        string `mapstructure:"log_format"`
}

// FromViper builds a Config from the current viper state, applying defaults
// for anything unset.
func FromViper() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if cfg.Root == "" {
		cfg.Root = "skills"
	}
	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return cfg, errors.Errorf("unsupported output format %q (expected %q or %q)", cfg.Output, OutputText, OutputJSON)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "fmt"
	}

	return cfg, nil
}
