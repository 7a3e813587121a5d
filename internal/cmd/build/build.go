// Package build provides the build command for mds.
package build

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/cmd/completion"
	"github.com/open-cli-collective/mdsite/internal/config"
	"github.com/open-cli-collective/mdsite/internal/site"
	"github.com/open-cli-collective/mdsite/internal/view"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

type buildOptions struct {
	configPath string
	engine     string
	output     string
	noColor    bool
	out        io.Writer
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the site",
		Long: `Generate the site into the public directory.

The public directory is removed and recreated, static assets are copied
into it and every Markdown document in the content directory is rendered
through the page template. The build stops at the first document that
cannot be rendered.`,
		Example: `  # Build with the configured settings
  mds build

  # Build with goldmark instead of the native renderer
  mds build --engine goldmark

  # Machine-readable report
  mds build -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runBuild(opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", "", "Renderer: native or goldmark (overrides config)")
	_ = cmd.RegisterFlagCompletionFunc("engine", completion.Engines)

	return cmd
}

func runBuild(opts *buildOptions, cfg *config.Config) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	// Load config if not provided (allows injection for testing)
	if cfg == nil {
		var err error
		cfg, err = config.LoadWithEnv(config.ResolvePath(opts.configPath))
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'mds init' to configure)", err)
		}
	}
	if opts.engine != "" {
		cfg.Engine = opts.engine
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mds init' to configure)", err)
	}

	engine, err := md.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}

	report, err := site.Build(site.Options{
		ContentDir:         cfg.ContentDir,
		StaticDir:          cfg.StaticDir,
		PublicDir:          cfg.PublicDir,
		TemplatePath:       cfg.Template,
		TitlePlaceholder:   cfg.TitlePlaceholder,
		ContentPlaceholder: cfg.ContentPlaceholder,
		Engine:             engine,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(report)
	}

	headers := []string{"SOURCE", "OUTPUT", "TITLE", "SIZE"}
	var rows [][]string
	for _, p := range report.Pages {
		rows = append(rows, []string{
			relativeTo(cfg.ContentDir, p.Source),
			relativeTo(cfg.PublicDir, p.Output),
			view.Truncate(p.Title, 40),
			humanize.Bytes(uint64(p.Bytes)),
		})
	}
	renderer.RenderTable(headers, rows)

	if opts.output != "plain" {
		renderer.RenderText("")
		renderer.Success(fmt.Sprintf("Built %d %s (%s) and copied %d static %s into %s",
			len(report.Pages), plural(len(report.Pages), "page", "pages"),
			humanize.Bytes(report.TotalBytes()),
			len(report.Static), plural(len(report.Static), "file", "files"),
			cfg.PublicDir))
	}

	return nil
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
