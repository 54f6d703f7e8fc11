// Package record defines the identity types shared across the duplicate
// detection pipeline: the scanned FileRecord, the derived FileIdentityKey
// used to key the checksum store, and the grouping/removal types the later
// pipeline stages produce.
package record

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"
)

// FileRecord is the identity of a file as observed at scan time.
//
// Two FileRecords are equal iff all four fields match. Changing any field
// (size, timestamps) invalidates any checksum-store entry keyed on the old
// values — that's intentional, see FileIdentityKey.
type FileRecord struct {
	Path     string
	Size     uint64
	Created  time.Time
	Modified time.Time
}

// Equal reports whether two records share identical identity fields.
func (r FileRecord) Equal(other FileRecord) bool {
	return r.Path == other.Path &&
		r.Size == other.Size &&
		r.Created.Equal(other.Created) &&
		r.Modified.Equal(other.Modified)
}

// Compare orders records lexicographically over (size, path), ascending.
// DuplicateGroups sort their members by this order; the group list itself
// sorts by a different, descending comparator (see SortGroups).
func (r FileRecord) Compare(other FileRecord) int {
	if c := cmp.Compare(r.Size, other.Size); c != 0 {
		return c
	}
	return cmp.Compare(r.Path, other.Path)
}

// Key formats the FileIdentityKey: a deterministic, delimited encoding of
// (created, modified, size, path) used to key the ChecksumStore. Timestamps
// are rendered in UTC with sub-second precision so that two runs on an
// unchanged file produce a bit-identical key regardless of the host's local
// timezone database.
func (r FileRecord) Key() string {
	return fmt.Sprintf(
		"created://%s/modified://%s/size://%s/path://%s",
		formatTimestamp(r.Created),
		formatTimestamp(r.Modified),
		strconv.FormatUint(r.Size, 10),
		r.Path,
	)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999999Z07:00")
}

// DuplicateGroup is a non-empty ordered collection of FileRecords that share
// size and fingerprint. Groups produced by the pipeline always have at least
// two members; callers must not assume it for groups built by hand (e.g. in
// tests that probe an in-progress group).
type DuplicateGroup []FileRecord

// SortGroups sorts a slice of DuplicateGroups by each group's first record,
// descending — largest size first, ties broken by path lexicographically,
// reversed. Each group's own members must already be sorted by
// FileRecord.Compare (ascending), so group[0] is its smallest-path
// representative.
func SortGroups(groups []DuplicateGroup) {
	slices.SortFunc(groups, func(a, b DuplicateGroup) int {
		return -a[0].Compare(b[0])
	})
}

// SortMembers sorts a group's members by FileRecord.Compare.
func SortMembers(group DuplicateGroup) {
	slices.SortFunc(group, FileRecord.Compare)
}

// RemovalList is an ordered sequence of records selected for deletion.
type RemovalList []FileRecord
