// Package config loads the gedcomx-date command configuration from
// .gedcomx-date.yaml, GEDCOMX_* environment variables, and command flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrConfig wraps invalid or unreadable configuration.
var ErrConfig = errors.New("config")

// Output formats for structured command output.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

const (
	fileName  = ".gedcomx-date"
	envPrefix = "GEDCOMX"
)

// Config holds the runtime configuration of a gedcomx-date command.
type Config struct {
	// Output is the structured output format, "yaml" or "json".
	Output string `mapstructure:"output"`

	// ExpandLimit is the default maximum number of instants to expand from
	// a recurring date.
	ExpandLimit int `mapstructure:"expand_limit"`

	// LogLevel is the minimum slog level to log: debug, info, warn, or
	// error.
	LogLevel string `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment bindings for
// every Config key. Bind command flags to it before calling [Load].
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("output", OutputYAML)
	v.SetDefault("expand_limit", 10)
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file into v and returns the resulting
// Config. If path is empty, Load looks for .gedcomx-date.yaml in the current
// directory and then the home directory, and a missing file is not an
// error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if any field of cfg is out of range.
func (cfg Config) Validate() error {
	switch cfg.Output {
	case OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrConfig, cfg.Output)
	}
	if cfg.ExpandLimit < 1 {
		return fmt.Errorf("%w: expand_limit must be greater than zero", ErrConfig)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog.Level.
func (cfg Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return lvl, nil
}
