// Package config provides configuration management for wordsift using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with the WORDSIFT_ prefix, and validation. It manages the
// input and output paths, the qualifying rules (length range and
// alphabet), watch-mode debouncing, and logging options. The built-in
// path defaults are the original word-list layout: read `6of12.txt`,
// write `words_3to7.txt`.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/conneroisu/wordsift/internal/filter"
	"github.com/conneroisu/wordsift/internal/validation"
)

// Built-in defaults. A bare `wordsift filter` reads and writes these.
const (
	DefaultInputPath  = "6of12.txt"
	DefaultOutputPath = "words_3to7.txt"

	DefaultMinLength  = 3
	DefaultMaxLength  = 7
	DefaultDebounceMS = 300
)

type Config struct {
	Input  string      `yaml:"input"`
	Output string      `yaml:"output"`
	Rules  RulesConfig `yaml:"rules"`
	Watch  WatchConfig `yaml:"watch"`
	Log    LogConfig   `yaml:"log"`
}

type RulesConfig struct {
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
	Alphabet  string `yaml:"alphabet"`
}

type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration, matching the original
// hard-coded behavior.
func Default() *Config {
	return &Config{
		Input:  DefaultInputPath,
		Output: DefaultOutputPath,
		Rules: RulesConfig{
			MinLength: DefaultMinLength,
			MaxLength: DefaultMaxLength,
			Alphabet:  string(filter.AlphabetUnicode),
		},
		Watch: WatchConfig{
			DebounceMS: DefaultDebounceMS,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the effective configuration from viper's merged sources
// (flags, WORDSIFT_* environment variables, config file) on top of the
// built-in defaults, then validates it.
func Load() (*Config, error) {
	config := Default()

	if viper.IsSet("input") {
		config.Input = viper.GetString("input")
	}
	if viper.IsSet("output") {
		config.Output = viper.GetString("output")
	}
	if viper.IsSet("rules.min_length") {
		config.Rules.MinLength = viper.GetInt("rules.min_length")
	}
	if viper.IsSet("rules.max_length") {
		config.Rules.MaxLength = viper.GetInt("rules.max_length")
	}
	if viper.IsSet("rules.alphabet") {
		config.Rules.Alphabet = viper.GetString("rules.alphabet")
	}
	if viper.IsSet("watch.debounce_ms") {
		config.Watch.DebounceMS = viper.GetInt("watch.debounce_ms")
	}
	if viper.IsSet("log.level") {
		config.Log.Level = viper.GetString("log.level")
	}
	if viper.IsSet("log.format") {
		config.Log.Format = viper.GetString("log.format")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks paths and rules for consistency.
func (c *Config) Validate() error {
	if err := validation.ValidateInputPath(c.Input); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validation.ValidateOutputPath(c.Output); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	rules, err := c.FilterRules()
	if err != nil {
		return err
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms cannot be negative, got %d", c.Watch.DebounceMS)
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

// FilterRules converts the configuration into a filter rule set.
func (c *Config) FilterRules() (filter.Rules, error) {
	alphabet, err := filter.ParseAlphabet(c.Rules.Alphabet)
	if err != nil {
		return filter.Rules{}, fmt.Errorf("invalid rules: %w", err)
	}

	return filter.Rules{
		MinLength: c.Rules.MinLength,
		MaxLength: c.Rules.MaxLength,
		Alphabet:  alphabet,
	}, nil
}
