package page

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/cmd/completion"
	"github.com/open-cli-collective/mdsite/internal/view"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

type titleOptions struct {
	output  string
	noColor bool
	stdin   io.Reader // For testing; defaults to os.Stdin
	out     io.Writer // For testing; defaults to os.Stdout
}

// NewCmdTitle creates the page title command.
func NewCmdTitle() *cobra.Command {
	opts := &titleOptions{}

	cmd := &cobra.Command{
		Use:   "title [file]",
		Short: "Print the title of a document",
		Long: `Print the text of the first level-1 heading of a document.

Fails when the document has no level-1 heading.`,
		Example: `  # Print a title
  mds page title content/index.md

  # From stdin
  echo "# Hello" | mds page title`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completion.MarkdownFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runTitle(argOrEmpty(args), opts)
		},
	}

	return cmd
}

func runTitle(path string, opts *titleOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	document, err := readInput(path, opts.stdin)
	if err != nil {
		return err
	}

	title, err := md.ExtractTitle(document)
	if err != nil {
		if errors.Is(err, md.ErrNoTitle) && path != "" && path != "-" {
			return fmt.Errorf("%s: %w", path, err)
		}
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		renderer.RenderKeyValue("title", title)
		return nil
	}
	renderer.RenderText(title)
	return nil
}
