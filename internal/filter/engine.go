package filter

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/conneroisu/wordsift/internal/errors"
	"github.com/conneroisu/wordsift/internal/logging"
	"github.com/conneroisu/wordsift/internal/stats"
)

// maxLineBytes bounds the scanner token size so a malformed word list
// with enormous lines fails loudly instead of silently truncating.
const maxLineBytes = 1024 * 1024

// Engine runs the filter over a source and destination.
type Engine struct {
	rules  Rules
	logger logging.Logger
}

// NewEngine creates an engine bound to a rule set. A nil logger gets
// the package default.
func NewEngine(rules Rules, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Engine{
		rules:  rules,
		logger: logger.WithComponent("filter"),
	}
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Run streams src line by line, writing each qualifying normalized word
// to dst followed by a newline. Source order is preserved and nothing
// is deduplicated. The returned report counts every line, including a
// partial count when an error cuts the run short.
func (e *Engine) Run(ctx context.Context, src io.Reader, dst io.Writer) (stats.Report, error) {
	start := time.Now()
	collector := stats.NewCollector()

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	writer := bufio.NewWriter(dst)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return collector.Snapshot(), ctx.Err()
		default:
		}

		word := Normalize(scanner.Text())
		reason := e.rules.Evaluate(word)
		collector.Record(reason)

		if reason != stats.ReasonNone {
			e.logger.Debug(ctx, "line rejected", "word", word, "reason", string(reason))
			continue
		}

		if _, err := writer.WriteString(word + "\n"); err != nil {
			return collector.Snapshot(), errors.NewIOError("OUTPUT_WRITE", "failed to write word", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return collector.Snapshot(), errors.NewIOError("INPUT_READ", "failed to read word list", err)
	}

	if err := writer.Flush(); err != nil {
		return collector.Snapshot(), errors.NewIOError("OUTPUT_FLUSH", "failed to flush output", err)
	}

	collector.SetDuration(time.Since(start))
	report := collector.Snapshot()
	e.logger.Info(ctx, "filter run complete",
		"lines", report.LinesRead,
		"kept", report.Kept,
		"rejected", report.Rejected(),
		"duration", report.Duration.String(),
	)
	return report, nil
}

// RunFile opens inputPath, creates or truncates outputPath, and runs
// the filter between them. Both files are closed before returning; a
// mid-run failure leaves whatever was already written in place.
func (e *Engine) RunFile(ctx context.Context, inputPath, outputPath string) (stats.Report, error) {
	src, err := os.Open(inputPath)
	if err != nil {
		return stats.Report{}, errors.NewIOError("INPUT_OPEN", "failed to open word list", err).WithPath(inputPath)
	}
	defer src.Close()

	dst, err := os.Create(outputPath)
	if err != nil {
		return stats.Report{}, errors.NewIOError("OUTPUT_OPEN", "failed to create output file", err).WithPath(outputPath)
	}

	report, runErr := e.Run(ctx, src, dst)

	if err := dst.Close(); err != nil && runErr == nil {
		runErr = errors.NewIOError("OUTPUT_CLOSE", "failed to close output file", err).WithPath(outputPath)
	}

	return report, runErr
}

// DryRun reads src and evaluates every line without writing anything.
func (e *Engine) DryRun(ctx context.Context, src io.Reader) (stats.Report, error) {
	return e.Run(ctx, src, io.Discard)
}

// DryRunFile is DryRun over a file path.
func (e *Engine) DryRunFile(ctx context.Context, inputPath string) (stats.Report, error) {
	src, err := os.Open(inputPath)
	if err != nil {
		return stats.Report{}, errors.NewIOError("INPUT_OPEN", "failed to open word list", err).WithPath(inputPath)
	}
	defer src.Close()

	return e.DryRun(ctx, src)
}
