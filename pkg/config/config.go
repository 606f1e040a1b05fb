// Package config loads and validates the vec CLI configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (VEC_*)
//  2. Configuration file (YAML)
//  3. Default values
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the vec CLI configuration.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Demo configures the scripted container walk-through.
	Demo DemoConfig `mapstructure:"demo" yaml:"demo"`

	// Bench configures the growth benchmark workloads.
	Bench BenchConfig `mapstructure:"bench" yaml:"bench"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive).
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format.
	// Valid values: text, json.
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written.
	// Valid values: stdout, stderr, or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// DemoConfig configures the demo command.
type DemoConfig struct {
	// Seed is the number of elements the walk-through starts with.
	Seed int `mapstructure:"seed" validate:"gte=0" yaml:"seed"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	// Sizes lists the append counts to run, one report row each.
	Sizes []int `mapstructure:"sizes" validate:"required,min=1,dive,gt=0" yaml:"sizes"`

	// InsertCount is the bulk-insert width used for the single-growth
	// report.
	InsertCount int `mapstructure:"insert_count" validate:"gt=0" yaml:"insert_count"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
			Output: "stderr",
		},
		Demo: DemoConfig{
			Seed: 3,
		},
		Bench: BenchConfig{
			Sizes:       []int{1_000, 10_000, 100_000},
			InsertCount: 1_000,
		},
	}
}

// Load reads configuration from the optional file at path, applies VEC_*
// environment overrides on top of the defaults, and validates the result.
// An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
	v.SetDefault("demo.seed", def.Demo.Seed)
	v.SetDefault("bench.sizes", def.Bench.Sizes)
	v.SetDefault("bench.insert_count", def.Bench.InsertCount)

	v.SetEnvPrefix("VEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
