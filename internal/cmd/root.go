// Package cmd wires the config, supervisor, control, and renderer
// packages together behind a cobra command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root cobra command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "paneforge",
		Short: "A terminal multiplexer for interactive and scheduled panes",
		Long: `paneforge renders one interactive main pane plus any number of
background and periodic task panes onto the host terminal, reading their
layout and schedule from a task manifest.`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
