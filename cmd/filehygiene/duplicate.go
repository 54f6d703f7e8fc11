package main

import (
	"fmt"

	"github.com/duskcore/filehygiene/internal/duplicate"
	"github.com/duskcore/filehygiene/internal/logsink"
	"github.com/duskcore/filehygiene/internal/progress"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// duplicateOptions holds CLI flags for the duplicate command.
type duplicateOptions struct {
	minSizeStr      string
	deletePatterns  []string
	dryRun          bool
	output          string
	overwrite       bool
	dbPath          string
	rmlistPath      string
	checksumThreads int
	force           bool
	noProgress      bool
	verbose         bool
}

// newDuplicateCmd creates the duplicate subcommand.
func newDuplicateCmd() *cobra.Command {
	opts := &duplicateOptions{
		minSizeStr: "1",
		dbPath:     ".filehygiene-checksums",
		output:     "duplicate-report.html",
	}

	cmd := &cobra.Command{
		Use:   "duplicate [paths...]",
		Short: "Find duplicate files and optionally delete the ones that match a pattern",
		Long: `Scans the given paths for duplicate files by content, maintaining a
persistent checksum cache across runs.

Use --delete-pattern to select which group members are eligible for
deletion (a file is eligible if its path contains the substring); at
most group-size minus one members per group are ever removed, so every
group keeps at least one survivor. Use --dry-run to preview without
deleting anything.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDuplicate(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.minSizeStr, "min-size", "m", opts.minSizeStr, "Minimum file size to consider (e.g., 100, 1K, 10M, 1G)")
	cmd.Flags().StringSliceVarP(&opts.deletePatterns, "delete-pattern", "d", nil, "Substring pattern authorizing deletion of matching duplicates (repeatable)")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Preview selection and reporting without deleting or renaming anything")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "HTML report destination path")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Allow overwriting an existing report file")
	cmd.Flags().StringVar(&opts.dbPath, "db", opts.dbPath, "Checksum store path")
	cmd.Flags().StringVar(&opts.rmlistPath, "rmlist", "", "Removal-list destination path (skipped if empty or nothing is selected)")
	cmd.Flags().IntVar(&opts.checksumThreads, "checksum-threads", 0, "Upper bound on hash-pool size (0 = detected parallelism)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "On delete error, attempt to clear the read-only attribute and retry once")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable progress output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level instead of warning level")

	return cmd
}

// phaseStamp renders a phase name for the progress bar's description.
type phaseStamp string

func (p phaseStamp) String() string { return string(p) }

// summaryStamp renders a run Summary for the progress bar's completion line.
type summaryStamp duplicate.Summary

func (s summaryStamp) String() string {
	return fmt.Sprintf(
		"%d scanned, %d hashed, %d duplicate group(s) (%s), %d deleted (%s)",
		s.FilesScanned, s.CandidatesHashed, s.DuplicateGroups,
		humanize.Bytes(s.DuplicateBytes), s.Deleted, humanize.Bytes(s.DeletedBytes),
	)
}

// runDuplicate executes the duplicate-detection pipeline.
func runDuplicate(paths []string, opts *duplicateOptions) error {
	minSize, err := parseSize(opts.minSizeStr)
	if err != nil {
		return fmt.Errorf("invalid --min-size: %w", err)
	}

	showProgress := !opts.noProgress
	bar := progress.New(showProgress, -1)
	bar.Describe(phaseStamp("scanning and hashing duplicates"))

	logger := newLogger(opts.verbose)

	orch := &duplicate.Orchestrator{Logger: logger}
	summary, err := orch.Run(duplicate.Options{
		Paths:           paths,
		MinSize:         minSize,
		DeletePatterns:  opts.deletePatterns,
		DryRun:          opts.dryRun,
		Output:          opts.output,
		Overwrite:       opts.overwrite,
		DBPath:          opts.dbPath,
		RemovalListPath: opts.rmlistPath,
		ChecksumThreads: opts.checksumThreads,
		Force:           opts.force,
	})
	if err != nil {
		return err
	}

	bar.Finish(summaryStamp(summary))
	return nil
}

// newLogger returns the Sink used for a single CLI invocation: a logrus
// sink at debug level when verbose, warn level otherwise.
func newLogger(verbose bool) logsink.Sink {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return logsink.New(l)
}
