// Package cli wires the gitdeck command line to the interactive session.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gitdeck [path]",
		Short: "Keyboard-driven terminal UI for everyday git work",
		Long: "gitdeck shows changed files with their diffs, recent history and local branches,\n" +
			"and stages, commits, pushes, pulls and manages branches without leaving the terminal.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runSession(path)
		},
	}
}
