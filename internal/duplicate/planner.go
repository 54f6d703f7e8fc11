package duplicate

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/duskcore/filehygiene/internal/index"
	"github.com/duskcore/filehygiene/internal/logsink"
	"github.com/duskcore/filehygiene/internal/record"
)

// Planner selects duplicate-group members for deletion, writes the removal
// list, and performs the deletions. Grounded on
// duplicate/mod.rs's get_duplicate_files_to_delete/create_rmlist pair and a
// "stat → check safety → retry" style for handling a failed remove (see
// deduper.tryCleanupOrphanedTmp).
type Planner struct {
	Patterns []string
	DryRun   bool
	Force    bool
	Logger   logsink.Sink
}

// Select walks each group in order and marks members for deletion: a member
// is selected iff fewer than group.len()-1 members have already been
// selected in that group, and its path contains at least one non-empty
// pattern as a substring. An empty pattern list selects nothing. Selected
// records are removed from ix so a later group recompute sees them gone.
func (p *Planner) Select(groups []record.DuplicateGroup, ix *index.Index) record.RemovalList {
	var selected record.RemovalList
	for _, group := range groups {
		retentionCap := len(group) - 1
		selectedInGroup := 0
		for _, r := range group {
			if selectedInGroup >= retentionCap {
				break
			}
			if !p.matches(r.Path) {
				continue
			}
			selected = append(selected, r)
			selectedInGroup++
			ix.Remove(r)
		}
	}
	return selected
}

func (p *Planner) matches(path string) bool {
	for _, pattern := range p.Patterns {
		if pattern == "" {
			continue
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// WriteRemovalList creates (overwriting) path and writes one absolute path
// per line, LF-terminated, in selection order. A nil or empty list, or an
// empty path (removal-list output not configured), writes nothing and
// leaves any existing file untouched.
func (p *Planner) WriteRemovalList(path string, selected record.RemovalList) error {
	if path == "" || len(selected) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create removal list: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, r := range selected {
		if _, err := fmt.Fprintf(w, "%s\n", r.Path); err != nil {
			return fmt.Errorf("write removal list: %w", err)
		}
	}
	return w.Flush()
}

// Delete removes every selected file from disk, honoring DryRun (no
// mutation, but every other effect already happened) and Force (retry once
// after clearing the read-only bit on failure). Per-file errors are logged
// and do not abort the remaining deletions. Returns the count and total
// size of files actually removed (or that would have been, in dry-run).
func (p *Planner) Delete(selected record.RemovalList) (count int, bytes uint64) {
	for _, r := range selected {
		if !p.DryRun {
			if err := p.deleteOne(r.Path); err != nil {
				p.warnf("delete %s: %v", r.Path, err)
				continue
			}
		}
		count++
		bytes += r.Size
	}
	return count, bytes
}

func (p *Planner) deleteOne(path string) error {
	err := os.Remove(path)
	if err == nil {
		return nil
	}
	if !p.Force || !isPermissionError(err) {
		return err
	}
	if chmodErr := os.Chmod(path, 0o600); chmodErr != nil {
		return err
	}
	return os.Remove(path)
}

func isPermissionError(err error) bool {
	return errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM)
}

func (p *Planner) warnf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Warnf(format, args...)
	}
}
