// Package cli provides the command-line interface for linesift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linesift/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linesift",
		Short: "Filter, rewrite, and highlight log lines as they stream by",
		Long: `linesift is a streaming text-pipeline tool. It reads lines from stdin
(or files), runs each one through an ordered list of commands, and prints
the survivors with their matches highlighted.

Commands, applied left to right:
  fc:PATTERN               keep lines matching PATTERN, highlight matches
  fn:PATTERN               keep lines matching PATTERN, no highlighting
  n:PATTERN                drop lines matching PATTERN
  s:/PATTERN/REPLACEMENT/  rewrite matches (any delimiter character works)
  ft:[BEGIN]-[END]         keep lines whose leading H:MM:SS.f timestamp is
                           in range; adjacent ft: commands union
  PATTERN                  shorthand for fc:PATTERN

All patterns are case-insensitive regular expressions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewFilterCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
