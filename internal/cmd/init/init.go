// Package init provides the init command for mds.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/cmd/completion"
	"github.com/open-cli-collective/mdsite/internal/config"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

// starterTemplate is written when the configured template does not exist.
const starterTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ Title }}</title>
  <link href="/index.css" rel="stylesheet">
</head>
<body>
  <article>
    {{ Content }}
  </article>
</body>
</html>
`

// starterDocument is written when the content directory is created.
const starterDocument = `# Hello

This page was generated by **mds**. Edit ` + "`index.md`" + ` to change it.
`

type initOptions struct {
	configPath  string
	contentDir  string
	staticDir   string
	publicDir   string
	template    string
	engine      string
	noScaffold  bool
	interactive bool
	out         io.Writer // For testing; defaults to os.Stdout
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{interactive: true}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mds configuration",
		Long: `Initialize mds for a site.

This command will guide you through choosing the content, static, and
public directories, the page template, and the renderer. The configuration
will be saved to ~/.config/mds/config.yml.

Missing content and static directories and a missing template are created
with starter files unless --no-scaffold is given.`,
		Example: `  # Interactive setup
  mds init

  # Pre-populate directories
  mds init --content docs --public site`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.contentDir, "content", "", "Directory holding Markdown documents")
	cmd.Flags().StringVar(&opts.staticDir, "static", "", "Directory of assets copied verbatim")
	cmd.Flags().StringVar(&opts.publicDir, "public", "", "Output directory (recreated on every build)")
	cmd.Flags().StringVar(&opts.template, "template", "", "Page template file")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Renderer: native or goldmark")
	_ = cmd.RegisterFlagCompletionFunc("engine", completion.Engines)
	cmd.Flags().BoolVar(&opts.noScaffold, "no-scaffold", false, "Do not create missing directories and starter files")

	return cmd
}

func runInit(opts *initOptions) error {
	out := opts.out
	if out == nil {
		out = os.Stdout
	}
	configPath := config.ResolvePath(opts.configPath)

	// Check if config already exists
	if opts.interactive {
		if _, err := os.Stat(configPath); err == nil {
			var overwrite bool
			err := huh.NewConfirm().
				Title("Configuration already exists").
				Description(fmt.Sprintf("Overwrite %s?", configPath)).
				Value(&overwrite).
				Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(out, "Initialization cancelled.")
				return nil
			}
		}
	}

	cfg := prefill(opts)

	if opts.interactive {
		if err := newForm(cfg).Run(); err != nil {
			return err
		}
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !opts.noScaffold {
		created, err := scaffold(cfg)
		if err != nil {
			return err
		}
		for _, path := range created {
			fmt.Fprintf(out, "Created %s\n", path)
		}
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  mds page list")
	fmt.Fprintln(out, "  mds build")

	return nil
}

// prefill returns a config seeded from flags, falling back to defaults.
func prefill(opts *initOptions) *config.Config {
	cfg := &config.Config{
		ContentDir: opts.contentDir,
		StaticDir:  opts.staticDir,
		PublicDir:  opts.publicDir,
		Template:   opts.template,
		Engine:     opts.engine,
	}
	cfg.ApplyDefaults()
	return cfg
}

func newForm(cfg *config.Config) *huh.Form {
	required := func(name string) func(string) error {
		return func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", name)
			}
			return nil
		}
	}

	engineOptions := make([]huh.Option[string], 0, len(md.ValidEngines()))
	for _, e := range md.ValidEngines() {
		engineOptions = append(engineOptions, huh.NewOption(e, e))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Content directory").
				Description("Markdown documents to render").
				Placeholder(config.DefaultContentDir).
				Value(&cfg.ContentDir).
				Validate(required("content directory")),

			huh.NewInput().
				Title("Static directory (optional)").
				Description("Assets copied verbatim into the public directory").
				Placeholder(config.DefaultStaticDir).
				Value(&cfg.StaticDir),

			huh.NewInput().
				Title("Public directory").
				Description("Build output; removed and recreated on every build").
				Placeholder(config.DefaultPublicDir).
				Value(&cfg.PublicDir).
				Validate(required("public directory")),

			huh.NewInput().
				Title("Template").
				Description("HTML file with {{ Title }} and {{ Content }} placeholders").
				Placeholder(config.DefaultTemplate).
				Value(&cfg.Template).
				Validate(required("template")),

			huh.NewSelect[string]().
				Title("Renderer").
				Options(engineOptions...).
				Value(&cfg.Engine),
		),
	)
}

// scaffold creates whatever the configuration points at but is missing and
// returns the created paths.
func scaffold(cfg *config.Config) ([]string, error) {
	var created []string

	if _, err := os.Stat(cfg.ContentDir); errors.Is(err, os.ErrNotExist) {
		index := filepath.Join(cfg.ContentDir, "index.md")
		if err := writeNew(index, starterDocument); err != nil {
			return nil, err
		}
		created = append(created, index)
	}

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(cfg.StaticDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", cfg.StaticDir, err)
			}
			created = append(created, cfg.StaticDir)
		}
	}

	if _, err := os.Stat(cfg.Template); errors.Is(err, os.ErrNotExist) {
		if err := writeNew(cfg.Template, starterTemplate); err != nil {
			return nil, err
		}
		created = append(created, cfg.Template)
	}

	return created, nil
}

func writeNew(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
