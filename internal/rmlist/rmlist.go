// Package rmlist executes previously produced removal-list files: one
// absolute path per line, as written by internal/duplicate.Planner. Grounded
// on original_source/src/rmlist/mod.rs, which reads each listed file path
// and deletes it, counting successes and logging failures.
package rmlist

import (
	"bufio"
	"fmt"
	"os"

	"github.com/duskcore/filehygiene/internal/logsink"
)

// Run deletes every path listed across the given removal-list files.
// Per-line delete failures are logged and do not stop the run. dryRun
// suppresses the actual deletions while still counting what would happen.
// Returns the number of paths successfully deleted (or that would have
// been, in dry-run).
func Run(paths []string, dryRun bool, logger logsink.Sink) (int, error) {
	deleted := 0
	for _, listPath := range paths {
		n, err := runOne(listPath, dryRun, logger)
		if err != nil {
			return deleted, fmt.Errorf("read removal list %s: %w", listPath, err)
		}
		deleted += n
	}
	return deleted, nil
}

func runOne(listPath string, dryRun bool, logger logsink.Sink) (int, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	deleted := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !dryRun {
			if err := os.Remove(line); err != nil {
				warnf(logger, "cannot delete %s: %v", line, err)
				continue
			}
		}
		deleted++
	}
	if err := scanner.Err(); err != nil {
		return deleted, err
	}
	return deleted, nil
}

func warnf(logger logsink.Sink, format string, args ...any) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}
