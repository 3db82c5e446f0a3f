package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/wordsift/internal/config"
)

const configFileName = ".wordsift.yml"

var initForce bool

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Write a default .wordsift.yml configuration file",
	Long: `Write a .wordsift.yml file with the built-in defaults to the current
directory so the settings are easy to discover and edit. Refuses to
overwrite an existing file unless --force is given.

Examples:
  wordsift init            # Create .wordsift.yml
  wordsift init --force    # Replace an existing .wordsift.yml`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	content := "# wordsift configuration\n# Values here are overridden by WORDSIFT_* environment variables and flags.\n" + string(data)

	if err := os.WriteFile(configFileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFileName, err)
	}

	fmt.Printf("✅ Wrote %s\n", configFileName)
	return nil
}
