// SPDX-License-Identifier: MIT

// Package config resolves mstsolve settings from .mstsolve.yaml,
// MSTSOLVE_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Solver names accepted by the method setting.
const (
	MethodPartial = "partial"
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// EnvPrefix prefixes every environment override, e.g. MSTSOLVE_METHOD.
const EnvPrefix = "MSTSOLVE"

var (
	// ErrUnknownMethod indicates a method other than partial, kruskal or prim.
	ErrUnknownMethod = errors.New("config: unknown method")

	// ErrUnknownLogFormat indicates a log format other than text or json.
	ErrUnknownLogFormat = errors.New("config: unknown log format")
)

// Config holds the runtime configuration of one mstsolve invocation.
type Config struct {
	Method    string        `mapstructure:"method"`
	Root      string        `mapstructure:"root"`
	Strict    bool          `mapstructure:"strict"`
	Watch     bool          `mapstructure:"watch"`
	Format    string        `mapstructure:"format"`
	Debounce  time.Duration `mapstructure:"debounce"`
	LogFormat string        `mapstructure:"log_format"`
	LogLevel  string        `mapstructure:"log_level"`
	Verbose   bool          `mapstructure:"verbose"`
}

// Init points viper at cfgFile, or at .mstsolve.yaml in the working and home
// directories when cfgFile is empty, and enables MSTSOLVE_* overrides.
// A missing default config file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mstsolve")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("config: read %s: %w", viper.ConfigFileUsed(), err)
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment or flags.
func Load() (Config, error) {
	viper.SetDefault("method", MethodPartial)
	viper.SetDefault("root", "")
	viper.SetDefault("strict", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("format", "")
	viper.SetDefault("debounce", 100*time.Millisecond)
	viper.SetDefault("log_format", "text")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	switch cfg.Method {
	case MethodPartial, MethodKruskal, MethodPrim:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
