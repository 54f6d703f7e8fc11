package main

import (
	"fmt"

	"github.com/duskcore/filehygiene/internal/emptydirs"
	"github.com/duskcore/filehygiene/internal/walker"
	"github.com/spf13/cobra"
)

// newEmptyDirsCmd creates the empty-dirs subcommand.
func newEmptyDirsCmd() *cobra.Command {
	var dryRun bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "empty-dirs [paths...]",
		Short: "Recursively remove directories that contain no files",
		Long: `Removes any directory whose subtree contains no regular files,
including a directory whose only contents are other now-empty
directories. Symlinked directories are never descended into or removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEmptyDirs(args, dryRun, verbose)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be removed without removing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log the number of fully emptied roots when done")

	return cmd
}

func runEmptyDirs(roots []string, dryRun, verbose bool) error {
	canon, err := walker.CanonicalizeRoots(roots)
	if err != nil {
		return fmt.Errorf("canonicalize paths: %w", err)
	}

	logger := newLogger(verbose)
	removed := 0
	for _, root := range canon {
		ok, err := emptydirs.Sweep(root, dryRun, logger)
		if err != nil {
			return fmt.Errorf("sweep %s: %w", root, err)
		}
		if ok {
			removed++
		}
	}

	if verbose {
		logger.Infof("%d root(s) fully emptied", removed)
	}
	return nil
}
