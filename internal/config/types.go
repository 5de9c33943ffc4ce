// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"modkit-cli/internal/isolate"
	"modkit-cli/internal/logging"
)

// ErrInvalidRunner is returned when default_runner is not recognized.
var ErrInvalidRunner = errors.New("invalid runner")

// Config is the decoded configuration. Field tags follow the snake_case
// keys of the config file.
type Config struct {
	ConsoleLevel       string `mapstructure:"console_level"`
	FileLevel          string `mapstructure:"file_level"`
	AppName            string `mapstructure:"app_name"`
	UseBackgroundColor bool   `mapstructure:"use_background_color"`
	Overwrite          bool   `mapstructure:"overwrite"`
	DefaultRunner      string `mapstructure:"default_runner"`
	RegistryPath       string `mapstructure:"registry_path"`
}

// DefaultConfig returns the documented defaults: console at information,
// file at verbose (but disabled until app_name is set), native runner.
func DefaultConfig() Config {
	return Config{
		ConsoleLevel:  "information",
		FileLevel:     "verbose",
		DefaultRunner: string(isolate.KindNative),
	}
}

// LogConfig converts the settings into a per-call logging configuration.
func (c *Config) LogConfig() (logging.Config, error) {
	consoleLevel, err := logging.ParseLevel(c.ConsoleLevel)
	if err != nil {
		return logging.Config{}, fmt.Errorf("console_level: %w", err)
	}
	fileLevel, err := logging.ParseLevel(c.FileLevel)
	if err != nil {
		return logging.Config{}, fmt.Errorf("file_level: %w", err)
	}
	return logging.Config{
		ConsoleMinLevel:    consoleLevel,
		FileMinLevel:       fileLevel,
		AppName:            c.AppName,
		UseBackgroundColor: c.UseBackgroundColor,
		Overwrite:          c.Overwrite,
	}, nil
}

// Runner returns the configured default runner kind.
func (c *Config) Runner() (isolate.Kind, error) {
	switch kind := isolate.Kind(c.DefaultRunner); kind {
	case isolate.KindNative, isolate.KindVirtual:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRunner, c.DefaultRunner)
	}
}
