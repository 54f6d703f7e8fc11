// Package walker discovers files for the duplicate-detection pipeline: it
// canonicalizes and ancestry-dedups the starting roots, then walks each
// surviving subtree, emitting one FileRecord per regular file found.
//
// Uses a fan-out/fan-in shape (one goroutine per root, a shared result
// channel, a WaitGroup shutdown sequence), collapsed from per-directory
// fan-out to per-root since ordering only needs to be stable within a root,
// not across the whole tree.
package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/duskcore/filehygiene/internal/record"
)

// ErrInterrupted is returned, wrapped together with the path of the file a
// walker goroutine was trying to emit, when its result channel was abandoned
// by the consumer.
var ErrInterrupted = errors.New("walker: interrupted, result channel abandoned")

// Logger receives non-fatal per-entry warnings. A nil Logger discards them.
type Logger interface {
	Warnf(format string, args ...any)
}

// CanonicalizeRoots resolves each path to an absolute, symlink-free form and
// removes any path that is a descendant of another path already in the
// list, leaving a set of mutually disjoint subtrees. A resolution failure
// for any input path is returned immediately, before any traversal begins.
func CanonicalizeRoots(paths []string) ([]string, error) {
	canon := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("canonicalize %q: %w", p, err)
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("canonicalize %q: %w", p, err)
		}
		canon = append(canon, resolved)
	}
	return dedupAncestry(canon), nil
}

// dedupAncestry drops any path that is a descendant of another path in the
// list. Ported from original_source/src/common/fs.rs's optimize_path_list.
func dedupAncestry(paths []string) []string {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		descendant := false
		for parent := filepath.Dir(p); parent != p; {
			if set[parent] {
				descendant = true
				break
			}
			next := filepath.Dir(parent)
			if next == parent {
				break
			}
			parent = next
		}
		if !descendant {
			out = append(out, p)
		}
	}
	return out
}

// Walk canonicalizes and ancestry-dedups roots, then walks each surviving
// subtree in its own goroutine, sending every discovered regular file to
// out. Walk closes out once every subtree is exhausted (or abandons the
// walk on the first fatal error) and blocks until then.
//
// done, if non-nil, lets a caller abandon the walk early: closing it causes
// any goroutine currently blocked sending to out to return ErrInterrupted
// instead of hanging forever on a consumer that has stopped reading.
func Walk(roots []string, out chan<- record.FileRecord, done <-chan struct{}, logger Logger) error {
	defer close(out)

	paths, err := CanonicalizeRoots(roots)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(paths))
	for _, root := range paths {
		wg.Add(1)
		go func(root string) {
			defer wg.Done()
			if err := walkOne(root, out, done, logger); err != nil {
				errCh <- err
			}
		}(root)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

func walkOne(root string, out chan<- record.FileRecord, done <-chan struct{}, logger Logger) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			warnf(logger, "walk %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			warnf(logger, "stat %s: %v", path, err)
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		r := record.FileRecord{
			Path:     path,
			Size:     uint64(info.Size()),
			Created:  createdTime(info),
			Modified: info.ModTime(),
		}

		select {
		case out <- r:
			return nil
		case <-done:
			return fmt.Errorf("%s: %w", path, ErrInterrupted)
		}
	})
}

func warnf(logger Logger, format string, args ...any) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}
