package completion

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/view"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

// Engines completes --engine values.
func Engines(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return md.ValidEngines(), cobra.ShellCompDirectiveNoFileComp
}

// OutputFormats completes --output values.
func OutputFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return view.ValidFormats(), cobra.ShellCompDirectiveNoFileComp
}

// MarkdownFiles restricts file completion to Markdown documents.
func MarkdownFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"md"}, cobra.ShellCompDirectiveFilterFileExt
}

// HTMLFiles restricts file completion to HTML pages.
func HTMLFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"html", "htm"}, cobra.ShellCompDirectiveFilterFileExt
}
