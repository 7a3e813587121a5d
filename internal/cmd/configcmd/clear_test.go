package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdsite/internal/config"
)

// clearEnv blanks every MDS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range config.EnvVars {
		t.Setenv(v, "")
	}
}

func TestRunClear_WithExistingConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "mds", "config.yml")

	cfg := &config.Config{
		ContentDir: "content",
		PublicDir:  "public",
		Template:   "template.html",
	}
	require.NoError(t, cfg.Save(configPath))

	var buf bytes.Buffer
	err := runClear(true, &buf, configPath)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Configuration cleared from "+configPath)

	// Verify file is deleted
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunClear_NoConfigFile(t *testing.T) {
	clearEnv(t)

	// Should not error even if file doesn't exist
	var buf bytes.Buffer
	err := runClear(true, &buf, filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No config file to remove")
}

func TestRunClear_Idempotent(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	// Running twice should succeed
	require.NoError(t, runClear(true, &bytes.Buffer{}, configPath))
	require.NoError(t, runClear(true, &bytes.Buffer{}, configPath))
}

func TestRunClear_ReportsEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("MDS_PUBLIC_DIR", "dist")

	var buf bytes.Buffer
	require.NoError(t, runClear(true, &buf, filepath.Join(t.TempDir(), "config.yml")))
	assert.Contains(t, buf.String(), "Environment variables will still be used: MDS_PUBLIC_DIR")
}
