// Package cmd provides the command-line interface for wordsift with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--input, --output, etc.) - highest priority
//	2. WORDSIFT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (WORDSIFT_INPUT, etc.)
//	4. Configuration files (.wordsift.yml) - lowest priority
//
// Environment Variables:
//
//	WORDSIFT_CONFIG_FILE: Path to custom configuration file
//	WORDSIFT_INPUT: Override the word-list source path
//	WORDSIFT_OUTPUT: Override the destination path
//	WORDSIFT_RULES_MIN_LENGTH: Override the minimum word length
//	And so on following the WORDSIFT_<SECTION>_<OPTION> pattern
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/wordsift/internal/config"
	"github.com/conneroisu/wordsift/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordsift",
	Short: "Filter a word list down to short alphabetic words",
	Long: `Wordsift reads a word-list file, normalizes each line (trim whitespace,
uppercase), and writes the words that are 3-7 letters long and fully
alphabetic to an output file, one per line, preserving source order.

Quick Start:
  wordsift filter                 Filter 6of12.txt into words_3to7.txt
  wordsift validate               Dry run with a rejection breakdown
  wordsift watch                  Re-filter whenever the input changes
  wordsift init                   Write a default .wordsift.yml

Command Aliases (for faster typing):
  filter (f), validate (v), watch (w), init (i)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .wordsift.yml, can also use WORDSIFT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig initializes the configuration system with support for
// multiple config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. WORDSIFT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .wordsift.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("WORDSIFT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordsift")
	}

	// Enable automatic environment variable binding with WORDSIFT_ prefix
	// Examples: WORDSIFT_INPUT, WORDSIFT_RULES_MAX_LENGTH
	viper.SetEnvPrefix("WORDSIFT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// If the file doesn't exist, viper falls back to defaults; a missing
	// config file is not an error.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// cmdContext returns the command's context, falling back to Background
// when the command was invoked outside Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newLogger builds the command logger from the loaded configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
