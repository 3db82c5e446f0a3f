package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/wordsift/internal/config"
	"github.com/conneroisu/wordsift/internal/filter"
)

var filterCmd = &cobra.Command{
	Use:     "filter",
	Aliases: []string{"f"},
	Short:   "Filter the word list into the output file",
	Long: `Read the word-list source, normalize each line (trim whitespace,
uppercase), and write every word that is within the configured length
range and fully alphabetic to the destination file, one per line.

The destination is created or truncated, so repeated runs produce a
byte-identical file. A missing source or unwritable destination is
fatal and exits non-zero.

Examples:
  wordsift filter                          # 6of12.txt into words_3to7.txt
  wordsift filter -i list.txt -o out.txt   # Explicit paths
  wordsift filter --min-length 4 --max-length 9
  wordsift filter --alphabet ascii         # Reject non-ASCII letters`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
	addFilterFlags(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	bindFilterFlags(cmd.Flags())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	rules, err := cfg.FilterRules()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	engine := filter.NewEngine(rules, logger)

	fmt.Printf("🔤 Filtering %s\n", cfg.Input)

	report, err := engine.RunFile(cmdContext(cmd), cfg.Input, cfg.Output)
	if err != nil {
		return fmt.Errorf("filter run failed: %w", err)
	}

	duration := time.Since(startTime)
	fmt.Printf("✅ Kept %d of %d words in %v\n", report.Kept, report.LinesRead, duration)
	fmt.Printf("   - Output written to: %s\n", cfg.Output)

	return nil
}
