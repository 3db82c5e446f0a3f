package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/wordsift/internal/config"
	"github.com/conneroisu/wordsift/internal/filter"
	"github.com/conneroisu/wordsift/internal/stats"
)

var validateFormat string

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"v"},
	Short:   "Dry-run the filter and report what would be kept",
	Long: `Read the word-list source and evaluate every line without writing
anything. Reports how many words would survive and why the rest were
rejected:

- empty lines (whitespace only)
- words shorter than the minimum length
- words longer than the maximum length
- words containing non-alphabetic characters

Examples:
  wordsift validate                   # Summarize the default word list
  wordsift validate -i candidates.txt # Check another list
  wordsift validate --format json     # Output results as JSON`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addFilterFlags(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	bindFilterFlags(cmd.Flags())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	rules, err := cfg.FilterRules()
	if err != nil {
		return err
	}

	engine := filter.NewEngine(rules, newLogger(cfg))

	report, err := engine.DryRunFile(cmdContext(cmd), cfg.Input)
	if err != nil {
		return fmt.Errorf("validation run failed: %w", err)
	}

	switch validateFormat {
	case "json":
		return writeValidateJSON(cfg.Input, report)
	case "text":
		writeValidateText(cfg.Input, report)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", validateFormat)
	}
}

func writeValidateText(input string, report stats.Report) {
	fmt.Printf("🔎 Validated %s\n", input)
	fmt.Printf("   Lines read:          %d\n", report.LinesRead)
	fmt.Printf("   Would keep:          %d\n", report.Kept)
	fmt.Printf("   Rejected (empty):    %d\n", report.RejectedEmpty)
	fmt.Printf("   Rejected (too short): %d\n", report.RejectedTooShort)
	fmt.Printf("   Rejected (too long):  %d\n", report.RejectedTooLong)
	fmt.Printf("   Rejected (not alpha): %d\n", report.RejectedNotAlpha)
}

func writeValidateJSON(input string, report stats.Report) error {
	payload := struct {
		Input  string       `json:"input"`
		Report stats.Report `json:"report"`
	}{
		Input:  input,
		Report: report,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
