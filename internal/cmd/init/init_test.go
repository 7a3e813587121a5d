package init

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdsite/internal/config"
	"github.com/open-cli-collective/mdsite/pkg/md"
)

func TestStarterTemplate_IsValid(t *testing.T) {
	opts := md.PageOptions{Template: starterTemplate}
	require.NoError(t, opts.Validate())

	page, err := md.RenderPage(starterDocument, opts)
	require.NoError(t, err)
	assert.Contains(t, page, "<title>Hello</title>")
	assert.Contains(t, page, "<b>mds</b>")
	assert.Contains(t, page, "<code>index.md</code>")
}

func TestPrefill(t *testing.T) {
	cfg := prefill(&initOptions{contentDir: "docs", engine: "goldmark"})

	assert.Equal(t, "docs", cfg.ContentDir)
	assert.Equal(t, config.DefaultStaticDir, cfg.StaticDir)
	assert.Equal(t, config.DefaultPublicDir, cfg.PublicDir)
	assert.Equal(t, config.DefaultTemplate, cfg.Template)
	assert.Equal(t, "goldmark", cfg.Engine)
}

func TestRunInit_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "conf", "config.yml")

	var buf bytes.Buffer
	opts := &initOptions{
		configPath: configPath,
		contentDir: filepath.Join(dir, "content"),
		staticDir:  filepath.Join(dir, "static"),
		publicDir:  filepath.Join(dir, "public"),
		template:   filepath.Join(dir, "template.html"),
		out:        &buf,
	}

	require.NoError(t, runInit(opts))

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, opts.contentDir, loaded.ContentDir)
	assert.Equal(t, opts.publicDir, loaded.PublicDir)
	assert.Equal(t, "native", loaded.Engine)

	for _, path := range []string{
		filepath.Join(dir, "content", "index.md"),
		filepath.Join(dir, "static"),
		filepath.Join(dir, "template.html"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
		assert.Contains(t, buf.String(), "Created "+path)
	}
	assert.Contains(t, buf.String(), "Configuration saved to "+configPath)
}

func TestRunInit_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "template.html")
	require.NoError(t, os.WriteFile(template, []byte("<p>{{ Content }}</p>"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0755))

	opts := &initOptions{
		configPath: filepath.Join(dir, "config.yml"),
		contentDir: filepath.Join(dir, "content"),
		publicDir:  filepath.Join(dir, "public"),
		staticDir:  filepath.Join(dir, "static"),
		template:   template,
		out:        &bytes.Buffer{},
	}
	require.NoError(t, runInit(opts))

	data, err := os.ReadFile(template)
	require.NoError(t, err)
	assert.Equal(t, "<p>{{ Content }}</p>", string(data))

	_, err = os.Stat(filepath.Join(dir, "content", "index.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunInit_NoScaffold(t *testing.T) {
	dir := t.TempDir()
	opts := &initOptions{
		configPath: filepath.Join(dir, "config.yml"),
		contentDir: filepath.Join(dir, "content"),
		publicDir:  filepath.Join(dir, "public"),
		template:   filepath.Join(dir, "template.html"),
		noScaffold: true,
		out:        &bytes.Buffer{},
	}
	require.NoError(t, runInit(opts))

	_, err := os.Stat(filepath.Join(dir, "content"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(opts.configPath)
	assert.NoError(t, err)
}

func TestRunInit_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	opts := &initOptions{
		configPath: filepath.Join(dir, "config.yml"),
		contentDir: "site",
		publicDir:  "site",
		out:        &bytes.Buffer{},
	}

	err := runInit(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, err = os.Stat(opts.configPath)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigFilePermissions_DirectoryCreation(t *testing.T) {
	// Create a temp directory with nested path
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "deeply", "config.yml")

	cfg := config.Config{
		ContentDir: "content",
		PublicDir:  "public",
		Template:   "template.html",
	}

	// Save should create the directory structure
	err := cfg.Save(configPath)
	require.NoError(t, err)

	// Verify file exists
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// Verify directory was created
	dirInfo, err := os.Stat(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	// Verify command structure
	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	// Verify flags exist
	for _, name := range []string{"content", "static", "public", "template", "engine"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}

	noScaffold := cmd.Flags().Lookup("no-scaffold")
	require.NotNil(t, noScaffold)
	assert.Equal(t, "false", noScaffold.DefValue)
}
