package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := &cobra.Command{
		Use:     "filehygiene",
		Short:   "A toolkit of file-hygiene operations: duplicate detection, empty-directory cleanup, extension canonicalization, and removal-list execution",
		Version: version + " (" + commit + ")",
	}

	root.AddCommand(newDuplicateCmd())
	root.AddCommand(newEmptyDirsCmd())
	root.AddCommand(newCanonicalExtCmd())
	root.AddCommand(newRmlistCmd())

	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
