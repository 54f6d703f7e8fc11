package duplicate

import "github.com/duskcore/filehygiene/internal/record"

// Options configures a single orchestrator run. It mirrors the CLI's
// invocation surface: Paths comes from the positional arguments and every
// other field has a corresponding flag in cmd/filehygiene.
type Options struct {
	Paths           []string
	MinSize         uint64
	DeletePatterns  []string
	DryRun          bool
	Output          string
	Overwrite       bool
	DBPath          string
	RemovalListPath string
	ChecksumThreads int
	Force           bool
}

// ReportShape is the stable shape the reporter adapter consumes: a title and
// the final, post-deletion group list. internal/duplicate never renders
// HTML itself — it only produces this shape.
type ReportShape struct {
	Title  string
	Groups []record.DuplicateGroup
}

// Summary reports the counts a caller (typically the CLI) prints after a run.
type Summary struct {
	FilesScanned     int
	CandidatesHashed int
	DuplicateGroups  int
	DuplicateBytes   uint64
	Deleted          int
	DeletedBytes     uint64
}
