package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdsite/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current mds configuration with source indicators.`,
		Example: `  # Show current config
  mds config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(config.ResolvePath(configPath), noColor, os.Stdout)
		},
	}

	return cmd
}

// fieldSource reports where the effective value came from: an environment
// variable, the config file, or the built-in default.
func fieldSource(value, fileValue, envVar string, fileLoaded bool) string {
	if v := os.Getenv(envVar); v != "" && v == value {
		return envVar
	}
	if fileLoaded && fileValue != "" && fileValue == value {
		return "config"
	}
	return "default"
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(out, "%-20s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(out, "-")
			return
		}

		fmt.Fprint(out, value)
		_, _ = dim.Fprintf(out, "  (source: %s)\n", fieldSource(value, fileValue, envVar, fileErr == nil))
	}

	printField("Content dir", cfg.ContentDir, fileCfg.ContentDir, "MDS_CONTENT_DIR")
	printField("Static dir", cfg.StaticDir, fileCfg.StaticDir, "MDS_STATIC_DIR")
	printField("Public dir", cfg.PublicDir, fileCfg.PublicDir, "MDS_PUBLIC_DIR")
	printField("Template", cfg.Template, fileCfg.Template, "MDS_TEMPLATE")
	printField("Engine", cfg.Engine, fileCfg.Engine, "MDS_ENGINE")
	if cfg.TitlePlaceholder != "" {
		printField("Title placeholder", cfg.TitlePlaceholder, fileCfg.TitlePlaceholder, "")
	}
	if cfg.ContentPlaceholder != "" {
		printField("Content placeholder", cfg.ContentPlaceholder, fileCfg.ContentPlaceholder, "")
	}

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}
