package rmlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunDeletesListedFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(b, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	listPath := filepath.Join(dir, "rmlist.txt")
	if err := os.WriteFile(listPath, []byte(a+"\n"+b+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deleted, err := Run([]string{listPath}, false, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deletions, got %d", deleted)
	}
	if _, err := os.Stat(a); !os.IsNotExist(err) {
		t.Fatalf("expected a deleted")
	}
	if _, err := os.Stat(b); !os.IsNotExist(err) {
		t.Fatalf("expected b deleted")
	}
}

func TestRunDryRunLeavesFilesInPlace(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	listPath := filepath.Join(dir, "rmlist.txt")
	if err := os.WriteFile(listPath, []byte(a+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deleted, err := Run([]string{listPath}, true, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected dry-run to still count 1, got %d", deleted)
	}
	if _, err := os.Stat(a); err != nil {
		t.Fatalf("expected file untouched by dry run: %v", err)
	}
}

func TestRunContinuesPastMissingFile(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	missing := filepath.Join(dir, "missing.txt")

	listPath := filepath.Join(dir, "rmlist.txt")
	if err := os.WriteFile(listPath, []byte(missing+"\n"+present+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deleted, err := Run([]string{listPath}, false, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 successful deletion, got %d", deleted)
	}
}

func TestRunMissingListFileErrors(t *testing.T) {
	_, err := Run([]string{filepath.Join(t.TempDir(), "does-not-exist.txt")}, false, nil)
	if err == nil {
		t.Fatalf("expected error for missing removal-list file")
	}
}
