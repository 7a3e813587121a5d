package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdsite/internal/config"
)

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{
		ContentDir: "posts",
		PublicDir:  "dist",
		Template:   "layout.html",
		Engine:     "goldmark",
	}
	require.NoError(t, cfg.Save(configPath))
	t.Setenv("MDS_PUBLIC_DIR", "site")

	var buf bytes.Buffer
	err := runShow(configPath, true, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "posts  (source: config)")
	assert.Contains(t, output, "site  (source: MDS_PUBLIC_DIR)")
	assert.Contains(t, output, "static  (source: default)")
	assert.Contains(t, output, "goldmark  (source: config)")
	assert.Contains(t, output, "Config file: "+configPath)
	assert.NotContains(t, output, "file not found")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var buf bytes.Buffer
	err := runShow(configPath, true, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "content  (source: default)")
	assert.Contains(t, output, "(file not found)")
}

func TestFieldSource(t *testing.T) {
	t.Setenv("MDS_TEMPLATE", "env.html")

	tests := []struct {
		name       string
		value      string
		fileValue  string
		fileLoaded bool
		want       string
	}{
		{"from env", "env.html", "file.html", true, "MDS_TEMPLATE"},
		{"from file", "file.html", "file.html", true, "config"},
		{"file missing", "template.html", "", false, "default"},
		{"default fills empty file field", "template.html", "", true, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldSource(tt.value, tt.fileValue, "MDS_TEMPLATE", tt.fileLoaded))
		})
	}
}
