// Package emptydirs recursively removes directories that contain no files,
// post-order: a directory whose only children are themselves now-empty
// directories is removed too. Grounded on
// original_source/src/clean_empty_directory/mod.rs's recursive
// has_item/can_delete walk, adapted to Go's os.ReadDir.
package emptydirs

import (
	"os"
	"path/filepath"

	"github.com/duskcore/filehygiene/internal/logsink"
)

// Sweep walks root post-order and removes every directory that ends up
// holding no files, directly or transitively. It reports whether root
// itself was removable (so a caller recursing over multiple roots can
// compose this). dryRun suppresses the actual os.Remove but still performs
// the full walk and reports what would have happened.
func Sweep(root string, dryRun bool, logger logsink.Sink) (removable bool, err error) {
	info, err := os.Lstat(root)
	if err != nil {
		return false, err
	}
	if info.Mode()&os.ModeSymlink != 0 || !info.IsDir() {
		return false, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false, err
	}

	hasItem := false
	for _, entry := range entries {
		childPath := filepath.Join(root, entry.Name())
		childInfo, statErr := os.Lstat(childPath)
		if statErr != nil {
			warnf(logger, "stat %s: %v", childPath, statErr)
			hasItem = true
			continue
		}

		switch {
		case childInfo.Mode()&os.ModeSymlink != 0:
			hasItem = true
		case childInfo.IsDir():
			childRemovable, walkErr := Sweep(childPath, dryRun, logger)
			if walkErr != nil {
				warnf(logger, "sweep %s: %v", childPath, walkErr)
				hasItem = true
				continue
			}
			if !childRemovable {
				hasItem = true
			}
		default:
			hasItem = true
		}
	}

	if hasItem {
		return false, nil
	}

	if !dryRun {
		if err := os.Remove(root); err != nil {
			return false, err
		}
	}
	return true, nil
}

func warnf(logger logsink.Sink, format string, args ...any) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}
