package page

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/config"
	"github.com/open-cli-collective/mdsite/internal/site"
	"github.com/open-cli-collective/mdsite/internal/view"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

type listOptions struct {
	contentDir string
	configPath string
	output     string
	noColor    bool
	out        io.Writer // For testing; defaults to os.Stdout
}

// NewCmdList creates the page list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List documents in the content directory",
		Long:    `List every Markdown document in the content directory with its title and the page it builds to.`,
		Example: `  # List documents
  mds page list

  # List another directory
  mds page list --content drafts

  # Output as JSON
  mds page list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.contentDir, "content", "", "Content directory (overrides config)")

	return cmd
}

func runList(opts *listOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfg, err := config.LoadWithEnv(config.ResolvePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.contentDir != "" {
		cfg.ContentDir = opts.contentDir
	}

	docs, err := site.FindDocuments(cfg.ContentDir)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if len(docs) == 0 && opts.output != "json" {
		renderer.RenderText(fmt.Sprintf("No documents found in %s.", cfg.ContentDir))
		return nil
	}

	headers := []string{"SOURCE", "TITLE", "PAGE", "SIZE"}
	var rows [][]string
	for _, doc := range docs {
		data, err := os.ReadFile(doc)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", doc, err)
		}

		title, err := md.ExtractTitle(string(data))
		if err != nil {
			title = "-"
		}

		page, err := site.OutputPath(cfg.ContentDir, cfg.PublicDir, doc)
		if err != nil {
			return err
		}

		rel, _ := filepath.Rel(cfg.ContentDir, doc)
		rows = append(rows, []string{
			rel,
			view.Truncate(title, 50),
			page,
			humanize.Bytes(uint64(len(data))),
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
