package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/config"
	"github.com/open-cli-collective/mdsite/internal/site"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check that the configured site can be built",
		Long: `Check that the configuration is valid, the content directory exists and
holds documents, and the template carries the content placeholder.`,
		Example: `  # Test configuration
  mds config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(noColor, os.Stdout, config.ResolvePath(configPath))
		},
	}

	return cmd
}

func runTest(noColor bool, out io.Writer, configPath string, cfgs ...*config.Config) error {
	if noColor {
		color.NoColor = true
	}

	var cfg *config.Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		var err error
		cfg, err = config.LoadWithEnv(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'mds init' to configure)", err)
		}
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fail := func(msg string, err error) error {
		_, _ = red.Fprintf(out, "✗ %s: %v\n", msg, err)
		fmt.Fprintln(out, "\nCheck your settings with: mds config show")
		fmt.Fprintln(out, "Reconfigure with: mds init")
		return fmt.Errorf("%s: %w", msg, err)
	}

	if err := cfg.Validate(); err != nil {
		return fail("invalid config", err)
	}
	_, _ = green.Fprintln(out, "✓ Configuration is valid")

	docs, err := site.FindDocuments(cfg.ContentDir)
	if err != nil {
		return fail("content directory unusable", err)
	}
	if len(docs) == 0 {
		_, _ = yellow.Fprintf(out, "! No documents in %s\n", cfg.ContentDir)
	} else {
		_, _ = green.Fprintf(out, "✓ Found %d documents in %s\n", len(docs), cfg.ContentDir)
	}

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err != nil || !info.IsDir() {
			_, _ = yellow.Fprintf(out, "! Static directory %s not found, no assets will be copied\n", cfg.StaticDir)
		} else {
			_, _ = green.Fprintf(out, "✓ Static directory %s found\n", cfg.StaticDir)
		}
	}

	template, err := os.ReadFile(cfg.Template)
	if err != nil {
		return fail("template unreadable", err)
	}
	if err := cfg.PageOptions(string(template)).Validate(); err != nil {
		return fail("template unusable", err)
	}
	_, _ = green.Fprintf(out, "✓ Template %s is usable\n", cfg.Template)

	return nil
}
