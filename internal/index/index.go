// Package index implements the CandidateIndex: a dual map over FileRecords
// (by path, and by size) that lets the pipeline orchestrator cheaply triage
// away files that cannot possibly be content duplicates.
package index

import "github.com/duskcore/filehygiene/internal/record"

// Index pairs a by-path map, which owns each FileRecord, with a by-size map
// holding a read-only view keyed by size. Not safe for concurrent use — it
// is mutated only by the orchestrator goroutine.
type Index struct {
	byPath map[string]record.FileRecord
	bySize map[uint64]map[string]record.FileRecord
}

// New returns an empty CandidateIndex.
func New() *Index {
	return &Index{
		byPath: make(map[string]record.FileRecord),
		bySize: make(map[uint64]map[string]record.FileRecord),
	}
}

// Put inserts or replaces r in both sub-indexes.
func (ix *Index) Put(r record.FileRecord) {
	ix.byPath[r.Path] = r
	bucket, ok := ix.bySize[r.Size]
	if !ok {
		bucket = make(map[string]record.FileRecord)
		ix.bySize[r.Size] = bucket
	}
	bucket[r.Path] = r
}

// Get returns the record at path, if present.
func (ix *Index) Get(path string) (record.FileRecord, bool) {
	r, ok := ix.byPath[path]
	return r, ok
}

// Remove deletes r's path from both sub-indexes. Idempotent: removing a
// path that is already absent is a no-op.
func (ix *Index) Remove(r record.FileRecord) {
	if existing, ok := ix.byPath[r.Path]; ok {
		delete(ix.byPath, r.Path)
		if bucket, ok := ix.bySize[existing.Size]; ok {
			delete(bucket, r.Path)
			if len(bucket) == 0 {
				delete(ix.bySize, existing.Size)
			}
		}
	}
}

// Len reports the number of records currently indexed.
func (ix *Index) Len() int {
	return len(ix.byPath)
}

// Records returns all indexed records in unspecified order.
func (ix *Index) Records() []record.FileRecord {
	out := make([]record.FileRecord, 0, len(ix.byPath))
	for _, r := range ix.byPath {
		out = append(out, r)
	}
	return out
}

// SizeBuckets returns the current size→records grouping. The returned slices
// are snapshots; mutating the Index afterward does not affect them.
func (ix *Index) SizeBuckets() map[uint64][]record.FileRecord {
	out := make(map[uint64][]record.FileRecord, len(ix.bySize))
	for size, bucket := range ix.bySize {
		records := make([]record.FileRecord, 0, len(bucket))
		for _, r := range bucket {
			records = append(records, r)
		}
		out[size] = records
	}
	return out
}

// PruneUniqueSizes removes every record whose size bucket contains ≤1 entry,
// from both sub-indexes atomically. No file with a unique size can be a
// content duplicate, so this keeps the index limited to real candidates. It
// must be called again after deletions, since removing a duplicate may leave
// a formerly-shared-size bucket with a single survivor.
func (ix *Index) PruneUniqueSizes() {
	for size, bucket := range ix.bySize {
		if len(bucket) > 1 {
			continue
		}
		for path := range bucket {
			delete(ix.byPath, path)
		}
		delete(ix.bySize, size)
	}
}
