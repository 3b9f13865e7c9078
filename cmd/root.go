package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "stalesweep",
		Short: "Unassign inactive users from stale GitHub issues",
		Long: `A CLI tool that scans a repository's open issues, removes assignees
that have been inactive past a threshold, posts an explanatory comment,
and reports a summary. Issues with a linked open pull request are left
alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add sweep flags to root command so `stalesweep` and `stalesweep sweep`
	// work identically
	addSweepFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdSweep(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdRateLimit())

	return rootCmd
}
