// Package root provides the root command for the mds CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/cmd/build"
	"github.com/open-cli-collective/mdsite/internal/cmd/completion"
	"github.com/open-cli-collective/mdsite/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/mdsite/internal/cmd/init"
	"github.com/open-cli-collective/mdsite/internal/cmd/page"
	"github.com/open-cli-collective/mdsite/internal/version"
)

// NewCmdRoot creates the root command for mds.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mds",
		Short: "A Markdown static site generator",
		Long: `mds turns a directory of Markdown documents into a static HTML site.

Every document in the content directory is rendered into an HTML fragment,
substituted into a page template together with its title, and written to
the public directory alongside a copy of the static assets.

Get started by running: mds init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mds/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	_ = cmd.RegisterFlagCompletionFunc("output", completion.OutputFormats)

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(page.NewCmdPage())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
