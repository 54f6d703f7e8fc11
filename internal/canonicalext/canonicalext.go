// Package canonicalext renames files whose extension is in a small
// correction table to its canonical form (e.g. "jpeg" to "jpg"). Grounded
// on original_source/src/canonical/mod.rs's EXTENSION_CORRECTIONS map and
// canonicalize_filename/canonicalize_path pair.
package canonicalext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/duskcore/filehygiene/internal/logsink"
)

// corrections maps a lowercased extension (without the dot) to its
// canonical replacement.
var corrections = map[string]string{
	"jpeg": "jpg",
	"mp4":  "m4v",
}

// CorrectedName returns the canonical filename for name, and true, if its
// extension needs correction. A name whose extension is absent or not in the
// correction table (including an already canonical one) returns ("", false).
// Only the name is examined; skipping directories is left to Rename.
func CorrectedName(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", false
	}
	stem := strings.TrimSuffix(name, ext)
	correction, ok := corrections[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return "", false
	}
	return stem + "." + correction, true
}

// Rename renames path to its canonical form if its extension needs
// correction. Directories are left alone. Returns whether a rename was
// performed (or would have been, in dry-run).
func Rename(path string, dryRun bool, logger logsink.Sink) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}

	newName, ok := CorrectedName(filepath.Base(path))
	if !ok {
		return false, nil
	}
	newPath := filepath.Join(filepath.Dir(path), newName)

	if !dryRun {
		if err := os.Rename(path, newPath); err != nil {
			return false, fmt.Errorf("rename %s to %s: %w", path, newPath, err)
		}
	}
	if logger != nil {
		logger.Infof("%s => %s", path, newPath)
	}
	return true, nil
}
