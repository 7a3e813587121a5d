// Package page provides commands that work on single documents.
package page

import (
	"github.com/spf13/cobra"
)

// NewCmdPage creates the page command.
func NewCmdPage() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "page",
		Aliases: []string{"pages"},
		Short:   "Render, inspect, and import documents",
		Long:    `Commands for rendering, inspecting, listing, and importing Markdown documents.`,
	}

	cmd.AddCommand(NewCmdRender())
	cmd.AddCommand(NewCmdTitle())
	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdImport())

	return cmd
}
