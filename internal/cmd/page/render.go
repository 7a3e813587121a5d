package page

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/cmd/completion"
	"github.com/open-cli-collective/mdsite/internal/config"
	"github.com/open-cli-collective/mdsite/internal/view"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

type renderOptions struct {
	full       bool
	engine     string
	template   string
	configPath string
	output     string
	noColor    bool
	stdin      io.Reader // For testing; defaults to os.Stdin
	out        io.Writer // For testing; defaults to os.Stdout
}

// renderResult is the JSON shape of a rendered document.
type renderResult struct {
	Source string `json:"source,omitempty"`
	Title  string `json:"title,omitempty"`
	Engine string `json:"engine"`
	HTML   string `json:"html"`
}

// NewCmdRender creates the page render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to HTML",
		Long: `Render a Markdown document to HTML.

By default only the document fragment is printed. With --full the fragment
and the document title are substituted into the page template.

Reads from standard input when no file is given or the file is "-".`,
		Example: `  # Render a fragment
  mds page render content/index.md

  # Render a complete page with the configured template
  mds page render content/index.md --full

  # Render with goldmark from stdin
  echo "# Hi" | mds page render --engine goldmark`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completion.MarkdownFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runRender(argOrEmpty(args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.full, "full", false, "Render a complete page using the template")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Renderer: native or goldmark (overrides config)")
	_ = cmd.RegisterFlagCompletionFunc("engine", completion.Engines)
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Template file for --full (overrides config)")

	return cmd
}

func runRender(path string, opts *renderOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfg, err := config.LoadWithEnv(config.ResolvePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.engine != "" {
		cfg.Engine = opts.engine
	}
	if opts.template != "" {
		cfg.Template = opts.template
	}

	engine, err := md.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}

	document, err := readInput(path, opts.stdin)
	if err != nil {
		return err
	}

	var html string
	if opts.full {
		template, err := os.ReadFile(cfg.Template)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		pageOpts := cfg.PageOptions(string(template))
		pageOpts.Engine = engine
		html, err = md.RenderPage(document, pageOpts)
		if err != nil {
			return err
		}
	} else {
		html, err = md.Render(document, engine)
		if err != nil {
			return err
		}
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		title, _ := md.ExtractTitle(document)
		return renderer.RenderJSON(renderResult{
			Source: path,
			Title:  title,
			Engine: string(engine),
			HTML:   html,
		})
	}

	renderer.RenderText(html)
	return nil
}
