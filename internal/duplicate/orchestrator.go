// Package duplicate implements the duplicate-detection pipeline's driver:
// the four-phase orchestrator (scan, triage & hash, group, delete) and the
// deletion planner it delegates to, in the same phase-driven runE style as
// a cobra RunE wiring function, composing the four phases around channels
// the way duplicate/mod.rs's run() function does.
package duplicate

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/duskcore/filehygiene/internal/hashpool"
	"github.com/duskcore/filehygiene/internal/index"
	"github.com/duskcore/filehygiene/internal/logsink"
	"github.com/duskcore/filehygiene/internal/record"
	"github.com/duskcore/filehygiene/internal/report"
	"github.com/duskcore/filehygiene/internal/store"
	"github.com/duskcore/filehygiene/internal/walker"
)

// Orchestrator drives a single duplicate-detection run. It owns the
// CandidateIndex and ChecksumStore for the run's duration; nothing else
// mutates them.
type Orchestrator struct {
	Logger logsink.Sink
}

// Run executes Phases A–D against opts and returns a Summary of what
// happened. The only errors returned are pre-flight failures (bad starting
// paths, inability to spawn the hash pool); everything else is logged and
// the pipeline continues.
func (o *Orchestrator) Run(opts Options) (Summary, error) {
	ix := index.New()
	cs := store.New()
	if err := cs.Load(opts.DBPath); err != nil {
		o.warnf("load checksum store %s: %v", opts.DBPath, err)
	}

	var summary Summary

	// Phase A: scan.
	fileCh := make(chan record.FileRecord, 1000)
	done := make(chan struct{})
	walkErrCh := make(chan error, 1)
	go func() {
		walkErrCh <- walker.Walk(opts.Paths, fileCh, done, o.Logger)
	}()

	for r := range fileCh {
		summary.FilesScanned++
		if r.Size >= opts.MinSize {
			ix.Put(r)
		}
	}
	if err := <-walkErrCh; err != nil {
		close(done)
		return summary, fmt.Errorf("scan: %w", err)
	}

	// Phase B: triage & hash.
	ix.PruneUniqueSizes()

	numCandidates := ix.Len()
	pool := hashpool.New(poolSize(opts.ChecksumThreads))

	// Jobs are fed from a goroutine so the main goroutine can start
	// draining Results() concurrently below; with thousands of candidates
	// the jobs/results channels fill and submitting synchronously here
	// would deadlock against an undrained results channel.
	toHashCh := make(chan int, 1)
	go func() {
		toHash := 0
		for _, r := range ix.Records() {
			if _, ok := cs.Get(r); !ok {
				pool.Submit(r)
				toHash++
			}
		}
		pool.Close()
		toHashCh <- toHash
	}()

	batch := batchSize(numCandidates)
	sinceFlush := 0
	for result := range pool.Results() {
		if result.Err != nil {
			o.warnf("%v", result.Err)
			continue
		}
		r, ok := ix.Get(result.Record.Path)
		if !ok {
			o.warnf("hash result for untracked path %s discarded", result.Record.Path)
			continue
		}
		cs.Put(r, result.Fingerprint)
		sinceFlush++
		if sinceFlush >= batch {
			if err := cs.Write(opts.DBPath); err != nil {
				o.warnf("flush checksum store: %v", err)
			}
			sinceFlush = 0
		}
	}
	summary.CandidatesHashed = <-toHashCh
	if err := cs.Write(opts.DBPath); err != nil {
		o.warnf("flush checksum store: %v", err)
	}

	// Phase C: group.
	groups := buildGroups(ix, cs)

	// Phase D: delete.
	planner := &Planner{
		Patterns: opts.DeletePatterns,
		DryRun:   opts.DryRun,
		Force:    opts.Force,
		Logger:   o.Logger,
	}
	selected := planner.Select(groups, ix)
	if err := planner.WriteRemovalList(opts.RemovalListPath, selected); err != nil {
		o.warnf("write removal list: %v", err)
	}
	summary.Deleted, summary.DeletedBytes = planner.Delete(selected)

	ix.PruneUniqueSizes()
	finalGroups := buildGroups(ix, cs)
	summary.DuplicateGroups = len(finalGroups)
	for _, g := range finalGroups {
		for _, r := range g {
			summary.DuplicateBytes += r.Size
		}
	}

	shape := ReportShape{Title: reportTitle(opts.Paths), Groups: finalGroups}
	if err := writeReport(opts.Output, opts.Overwrite, shape); err != nil {
		o.warnf("write report: %v", err)
	}

	return summary, nil
}

// buildGroups groups ix's remaining records by (size, fingerprint), drops
// records with no fingerprint, keeps only groups of size ≥2, and sorts the
// result with the final group list's comparator.
func buildGroups(ix *index.Index, cs *store.Store) []record.DuplicateGroup {
	var groups []record.DuplicateGroup
	for _, bucket := range ix.SizeBuckets() {
		byFingerprint := make(map[string]record.DuplicateGroup)
		for _, r := range bucket {
			fp, ok := cs.Get(r)
			if !ok {
				continue
			}
			byFingerprint[fp] = append(byFingerprint[fp], r)
		}
		for _, group := range byFingerprint {
			if len(group) < 2 {
				continue
			}
			record.SortMembers(group)
			groups = append(groups, group)
		}
	}
	record.SortGroups(groups)
	return groups
}

// poolSize caps the hash-worker pool at the lesser of the user-supplied
// bound and detected parallelism; if detection fails, assume 1.
func poolSize(userCap int) int {
	detected := runtime.NumCPU()
	if detected < 1 {
		detected = 1
	}
	if userCap <= 0 {
		return detected
	}
	if userCap < detected {
		return userCap
	}
	return detected
}

func reportTitle(paths []string) string {
	return strings.Join(paths, ",")
}

func writeReport(path string, overwrite bool, shape ReportShape) error {
	data := report.Data{Title: shape.Title}
	for _, g := range shape.Groups {
		var rg report.Group
		for _, r := range g {
			rg = append(rg, report.File{Path: r.Path, Size: r.Size})
		}
		data.Groups = append(data.Groups, rg)
	}
	return report.WriteFile(path, data, overwrite)
}

func (o *Orchestrator) warnf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(format, args...)
	}
}
