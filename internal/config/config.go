// Package config loads config-diff's persisted defaults: the dialect and
// order policy CLI flags fall back to when unset, the fixtures directory
// netform-replay-fixtures scans by default, and logging/output settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoggingConfig holds logging-related settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error fatal"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// OutputConfig holds default output-shape settings.
type OutputConfig struct {
	JSON bool `mapstructure:"json"`
}

// Config holds config-diff's persisted defaults. Every field except
// Logging.Format has a CLI flag that takes precedence over it; config only
// supplies what a flag left unset.
type Config struct {
	DefaultDialect     string `mapstructure:"default_dialect"      validate:"oneof=generic eos iosxe junos"`
	DefaultOrderPolicy string `mapstructure:"default_order_policy" validate:"oneof=ordered unordered keyed-stable"`
	FixturesDir        string `mapstructure:"fixtures_dir"`

	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoadConfig loads configuration from the given file (or the default
// location when cfgFile is empty), environment variables, and defaults.
func LoadConfig(cfgFile string) (*Config, error) {
	return LoadConfigWithViper(cfgFile, viper.New())
}

// LoadConfigWithFlags loads configuration with CLI flag binding so flag
// values take precedence over the config file and environment.
func LoadConfigWithFlags(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return LoadConfigWithViper(cfgFile, v)
}

// LoadConfigWithViper merges, in increasing precedence, defaults, a YAML
// config file, CONFIGDIFF_-prefixed environment variables, and any flags
// already bound to v.
func LoadConfigWithViper(cfgFile string, v *viper.Viper) (*Config, error) {
	v.SetDefault("default_dialect", "generic")
	v.SetDefault("default_order_policy", "ordered")
	v.SetDefault("fixtures_dir", "fixtures")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("output.json", false)

	v.SetEnvPrefix("CONFIGDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	nestedEnvBindings := map[string]string{
		"logging.level":  "LOGGING_LEVEL",
		"logging.format": "LOGGING_FORMAT",
		"output.json":    "OUTPUT_JSON",
	}
	for key, envSuffix := range nestedEnvBindings {
		if err := v.BindEnv(key, "CONFIGDIFF_"+envSuffix); err != nil {
			return nil, fmt.Errorf("bind env var for %s: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get user home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".config-diff")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
