// Package cli provides the Cobra command structure for fv.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/fv/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	debug      bool
}

// NewRootCommand creates the root fv command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalOptions{}
	view := &viewOptions{}

	rootCmd := &cobra.Command{
		Use:   "fv [file]",
		Short: "A terminal text viewer with incremental search",
		Long: `fv shows a text file in the terminal with line numbers, incremental
search, match highlighting and an optional filter that hides lines without
a match.

With no file, or with "-", fv reads standard input.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if global.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, global, view, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")

	addViewFlags(rootCmd, view)

	// Add subcommands.
	rootCmd.AddCommand(newConfigCommand(global))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
