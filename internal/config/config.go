// Package config provides configuration management for mds.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/mdsite/internal/site"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

// Default directory and file names, relative to the working directory.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultPublicDir  = "public"
	DefaultTemplate   = "template.html"
)

// Config holds the mds configuration.
type Config struct {
	ContentDir         string `yaml:"content_dir"`
	StaticDir          string `yaml:"static_dir,omitempty"`
	PublicDir          string `yaml:"public_dir"`
	Template           string `yaml:"template"`
	Engine             string `yaml:"engine,omitempty"`
	TitlePlaceholder   string `yaml:"title_placeholder,omitempty"`
	ContentPlaceholder string `yaml:"content_placeholder,omitempty"`
	OutputFormat       string `yaml:"output_format,omitempty"`
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return errors.New("content_dir is required")
	}
	if c.PublicDir == "" {
		return errors.New("public_dir is required")
	}
	if c.Template == "" {
		return errors.New("template is required")
	}

	// public_dir is wiped on every build
	if err := site.CheckPublicDir(c.PublicDir,
		site.ProtectedPath{Name: "content_dir", Path: c.ContentDir},
		site.ProtectedPath{Name: "static_dir", Path: c.StaticDir},
		site.ProtectedPath{Name: "template", Path: c.Template},
	); err != nil {
		return err
	}

	if _, err := md.ParseEngine(c.Engine); err != nil {
		return err
	}

	return nil
}

// ApplyDefaults fills empty directory and template fields with the defaults.
func (c *Config) ApplyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.StaticDir == "" {
		c.StaticDir = DefaultStaticDir
	}
	if c.PublicDir == "" {
		c.PublicDir = DefaultPublicDir
	}
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.Engine == "" {
		c.Engine = string(md.EngineNative)
	}
}

// PageOptions builds renderer options around the given template text.
func (c *Config) PageOptions(template string) md.PageOptions {
	engine, _ := md.ParseEngine(c.Engine)
	return md.PageOptions{
		Template:           template,
		TitlePlaceholder:   c.TitlePlaceholder,
		ContentPlaceholder: c.ContentPlaceholder,
		Engine:             engine,
	}
}

// EnvVars lists the environment variables read by LoadFromEnv.
var EnvVars = []string{
	"MDS_CONTENT_DIR",
	"MDS_STATIC_DIR",
	"MDS_PUBLIC_DIR",
	"MDS_TEMPLATE",
	"MDS_ENGINE",
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("MDS_CONTENT_DIR"); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv("MDS_STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("MDS_PUBLIC_DIR"); v != "" {
		c.PublicDir = v
	}
	if v := os.Getenv("MDS_TEMPLATE"); v != "" {
		c.Template = v
	}
	if v := os.Getenv("MDS_ENGINE"); v != "" {
		c.Engine = v
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mds", "config.yml")
	}

	// Fall back to ~/.config/mds/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mds", "config.yml")
	}

	return filepath.Join(home, ".config", "mds", "config.yml")
}

// ResolvePath returns override when set, otherwise DefaultConfigPath.
func ResolvePath(override string) string {
	if override != "" {
		return override
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides with environment
// variables and fills remaining gaps with defaults.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}
