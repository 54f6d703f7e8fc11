package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/duskcore/filehygiene/internal/record"
)

func testRecord(path string, size uint64) record.FileRecord {
	t := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return record.FileRecord{Path: path, Size: size, Created: t, Modified: t}
}

func TestLoadMissingFileIsNotError(t *testing.T) {
	s := New()
	if err := s.Load(filepath.Join(t.TempDir(), "missing.txt")); err != nil {
		t.Fatalf("Load on missing file should not error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checksums.txt")

	s1 := New()
	a := testRecord("/a", 10)
	b := testRecord("/b", 20)
	s1.Put(a, "deadbeef")
	s1.Put(b, "cafef00d")

	if err := s1.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	s2 := New()
	if err := s2.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, ok := s2.Get(a); !ok || got != "deadbeef" {
		t.Fatalf("Get(a) = %q, %v; want deadbeef, true", got, ok)
	}
	if got, ok := s2.Get(b); !ok || got != "cafef00d" {
		t.Fatalf("Get(b) = %q, %v; want cafef00d, true", got, ok)
	}
	if s2.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s2.Len())
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checksums.txt")
	content := "deadbeef%created://x/modified://y/size://1/path://ok\nno-delimiter-here\n"
	if err := writeFile(path, content); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected malformed line to be skipped, got %d entries", s.Len())
	}
}

func TestKeyWithExtraDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checksums.txt")
	// The path portion of a key may itself legitimately contain '%'.
	content := "deadbeef%created://x/modified://y/size://1/path://weird%name.txt\n"
	if err := writeFile(path, content); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "created://x/modified://y/size://1/path://weird%name.txt"
	if fp, ok := s.m[want]; !ok || fp != "deadbeef" {
		t.Fatalf("expected key with embedded delimiter to round-trip, got m=%v", s.m)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
