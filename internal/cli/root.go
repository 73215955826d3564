// Package cli provides the Cobra command structure for adocast.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/adocast/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root adocast command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "adocast",
		Short: "Adapt AsciiDoc element trees into position-annotated lint ASTs",
		Long: `adocast adapts the element tree an AsciiDoc processor produces into the
position-annotated AST a text-linting framework consumes.

The processor reports line numbers but no character offsets; adocast
re-locates every element's literal text in the original source and emits a
tree where each node carries its exact line/column span and byte range.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newParseCommand(&configPath, &color))
	rootCmd.AddCommand(newExtensionsCommand(&configPath))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
