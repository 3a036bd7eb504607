// Package config loads dsakit CLI settings from flags, DSAKIT_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. DSAKIT_LOG_LEVEL.
const EnvPrefix = "DSAKIT"

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds global CLI settings.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	LogJSON  bool   `mapstructure:"log-json"`
	Output   string `mapstructure:"output"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   OutputText,
	}
}

// Load merges flags, environment and the optional file at path into a Config.
// An empty path skips the file.
func Load(flags *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-json", def.LogJSON)
	v.SetDefault("output", def.Output)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return def, errors.Wrap(err, "failed to bind flags")
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return def, errors.Wrapf(err, "failed to read config file %q", path)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return def, errors.Wrap(err, "failed to decode config")
	}
	if err := conf.Validate(); err != nil {
		return def, err
	}

	return conf, nil
}

// Validate rejects unknown output formats.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
		return nil
	}

	return errors.Errorf("unknown output format %q (want %q or %q)", c.Output, OutputText, OutputYAML)
}
