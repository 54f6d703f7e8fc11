package main

import (
	"fmt"

	"github.com/duskcore/filehygiene/internal/canonicalext"
	"github.com/duskcore/filehygiene/internal/record"
	"github.com/duskcore/filehygiene/internal/walker"
	"github.com/spf13/cobra"
)

// newCanonicalExtCmd creates the canonical-ext subcommand.
func newCanonicalExtCmd() *cobra.Command {
	var dryRun bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "canonical-ext [paths...]",
		Short: "Rename files whose extension has a canonical form to that form",
		Long: `Walks the given paths and renames every file whose extension is in
the correction table (e.g. "jpeg" to "jpg") to its canonical form.
Directories are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCanonicalExt(args, dryRun, verbose)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be renamed without renaming it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each rename")

	return cmd
}

func runCanonicalExt(roots []string, dryRun, verbose bool) error {
	logger := newLogger(verbose)

	fileCh := make(chan record.FileRecord, 1000)
	done := make(chan struct{})
	walkErrCh := make(chan error, 1)
	go func() {
		walkErrCh <- walker.Walk(roots, fileCh, done, logger)
	}()

	renamed := 0
	for r := range fileCh {
		ok, err := canonicalext.Rename(r.Path, dryRun, logger)
		if err != nil {
			logger.Warnf("rename %s: %v", r.Path, err)
			continue
		}
		if ok {
			renamed++
		}
	}
	if err := <-walkErrCh; err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	if verbose {
		logger.Infof("%d file(s) renamed", renamed)
	}
	return nil
}
