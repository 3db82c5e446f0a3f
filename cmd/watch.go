package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/wordsift/internal/config"
	"github.com/conneroisu/wordsift/internal/filter"
	"github.com/conneroisu/wordsift/internal/watcher"
)

var watchVerbose bool

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Re-filter the word list whenever it changes",
	Long: `Run the filter once, then watch the word-list source and re-run the
full filter each time it changes. Rapid saves are debounced into a
single run. Every run fully overwrites the destination, so the output
is always a complete, consistent snapshot of the latest input.

Press Ctrl-C to stop.

Examples:
  wordsift watch                  # Watch the default word list
  wordsift watch -i list.txt      # Watch another list
  wordsift watch --verbose        # Show individual change events`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addFilterFlags(watchCmd)

	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Verbose output")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		report, err := engine.RunFile(ctx, cfg.Input, cfg.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Filter run failed: %v\n", err)
			return
		}
		fmt.Printf("✅ Kept %d of %d words\n", report.Kept, report.LinesRead)
	}

	// Initial run so the output exists before the first change.
	fmt.Printf("🔤 Filtering %s\n", cfg.Input)
	runOnce()

	fileWatcher, err := watcher.NewFileWatcher(cfg.Input, time.Duration(cfg.Watch.DebounceMS)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	fileWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		if watchVerbose {
			fmt.Printf("📁 File changes detected:\n")
			for _, event := range events {
				fmt.Printf("   %s: %s\n", event.Type, event.Path)
			}
		} else {
			fmt.Printf("📁 %d change(s) detected\n", len(events))
		}
		runOnce()
		return nil
	})

	fmt.Printf("👀 Watching %s for changes (Ctrl-C to stop)\n", cfg.Input)

	if err := fileWatcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println("Stopped watching.")
	return nil
}
