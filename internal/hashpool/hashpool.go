// Package hashpool computes content fingerprints with a fixed-size worker
// pool: same pending-count/close-input/join-workers/close-output shutdown
// sequence as a verification worker pool, but collapsed to a single
// whole-file read per job instead of progressive head/tail/chunk
// verification, since duplicate grouping here keys on one full-file
// fingerprint rather than an incrementally narrowed candidate set.
package hashpool

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/duskcore/filehygiene/internal/record"
)

// blockSize is the read buffer used while streaming a file into the hasher.
const blockSize = 64 * 1024

// Result pairs a submitted record with its fingerprint, or the error
// encountered while hashing it.
type Result struct {
	Record      record.FileRecord
	Fingerprint string
	Err         error
}

// Pool hashes submitted FileRecords with N worker goroutines.
//
// A Pool is single-use: create with New, call Submit for every job, call
// Close, then drain Results until it closes.
type Pool struct {
	jobs    chan record.FileRecord
	results chan Result
	pending sync.WaitGroup
	workers sync.WaitGroup
}

// New starts a Pool with the given number of workers. workers is clamped to
// at least 1.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		jobs:    make(chan record.FileRecord, 1000),
		results: make(chan Result, 1000),
	}
	for i := 0; i < workers; i++ {
		p.workers.Add(1)
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.workers.Done()
	for r := range p.jobs {
		fp, err := hashFile(r.Path)
		if err != nil {
			p.results <- Result{Record: r, Err: fmt.Errorf("hash %s: %w", r.Path, err)}
		} else {
			p.results <- Result{Record: r, Fingerprint: fp}
		}
		p.pending.Done()
	}
}

// Submit enqueues r for hashing. Must not be called after Close.
func (p *Pool) Submit(r record.FileRecord) {
	p.pending.Add(1)
	p.jobs <- r
}

// Close signals that no more jobs will be submitted. Once every already
// submitted job has been processed, the results channel is closed. Close
// itself does not block; read Results to completion to observe that.
func (p *Pool) Close() {
	go func() {
		p.pending.Wait()
		close(p.jobs)
		p.workers.Wait()
		close(p.results)
	}()
}

// Results is the channel of completed jobs. It closes after Close has been
// called and every in-flight job has drained.
func (p *Pool) Results() <-chan Result {
	return p.results
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	buf := make([]byte, blockSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}
