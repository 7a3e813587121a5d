package page

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/cmd/completion"
	"github.com/open-cli-collective/mdsite/internal/view"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

type importOptions struct {
	selector   string
	outputFile string
	force      bool
	output     string
	noColor    bool
	stdin      io.Reader // For testing; defaults to os.Stdin
	out        io.Writer // For testing; defaults to os.Stdout
}

// NewCmdImport creates the page import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [file.html]",
		Short: "Convert an HTML page into a Markdown document",
		Long: `Convert an existing HTML page into a Markdown document.

Scripts and styles are dropped. Use --selector to keep only the part of the
page that holds the content, for example an <article> element.`,
		Example: `  # Print the Markdown for a page
  mds page import old/about.html

  # Keep only the article and write it into the content directory
  mds page import old/about.html --selector article --file content/about.md

  # From stdin
  curl -s https://example.com | mds page import --selector main`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completion.HTMLFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runImport(argOrEmpty(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.selector, "selector", "s", "", "CSS selector of the element to convert")
	cmd.Flags().StringVarP(&opts.outputFile, "file", "f", "", "Write the document to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}

func runImport(path string, opts *importOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	html, err := readInput(path, opts.stdin)
	if err != nil {
		return err
	}

	document, err := md.FromHTMLWithOptions(html, md.ImportOptions{Selector: opts.selector})
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.outputFile == "" {
		if opts.output == "json" {
			return renderer.RenderJSON(map[string]string{"markdown": document})
		}
		renderer.RenderText(document)
		return nil
	}

	// Check if file already exists (unless --force is used)
	if !opts.force {
		if _, err := os.Stat(opts.outputFile); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", opts.outputFile)
		}
	}

	if err := os.MkdirAll(filepath.Dir(opts.outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if !strings.HasSuffix(document, "\n") {
		document += "\n"
	}
	if err := os.WriteFile(opts.outputFile, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	renderer.Success(fmt.Sprintf("Imported: %s", opts.outputFile))
	if title, err := md.ExtractTitle(document); err == nil {
		renderer.RenderKeyValue("Title", title)
	}
	return nil
}
