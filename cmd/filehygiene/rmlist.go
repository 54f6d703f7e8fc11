package main

import (
	"fmt"

	"github.com/duskcore/filehygiene/internal/rmlist"
	"github.com/spf13/cobra"
)

// newRmlistCmd creates the rmlist subcommand.
func newRmlistCmd() *cobra.Command {
	var dryRun bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "rmlist [list-files...]",
		Short: "Delete every path listed in one or more removal-list files",
		Long: `Reads one or more removal-list files, each holding one absolute path
per line as produced by "filehygiene duplicate --rmlist", and deletes
every listed path. A missing target path is logged and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRmlist(args, dryRun, verbose)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be deleted without deleting it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log the number of deleted paths when done")

	return cmd
}

func runRmlist(listPaths []string, dryRun, verbose bool) error {
	logger := newLogger(verbose)

	deleted, err := rmlist.Run(listPaths, dryRun, logger)
	if err != nil {
		return fmt.Errorf("rmlist: %w", err)
	}

	if verbose {
		logger.Infof("%d path(s) deleted", deleted)
	}
	return nil
}
