package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPublicDir(t *testing.T) {
	root := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name      string
		public    string
		protected []ProtectedPath
		errMsg    string
	}{
		{
			name:   "sibling directories",
			public: filepath.Join(root, "public"),
			protected: []ProtectedPath{
				{Name: "content_dir", Path: filepath.Join(root, "content")},
				{Name: "template", Path: filepath.Join(root, "template.html")},
			},
		},
		{
			name:      "empty protected path is ignored",
			public:    filepath.Join(root, "public"),
			protected: []ProtectedPath{{Name: "static_dir", Path: ""}},
		},
		{
			name:      "protected path inside a lookalike name",
			public:    filepath.Join(root, "site"),
			protected: []ProtectedPath{{Name: "content_dir", Path: filepath.Join(root, "site2", "content")}},
		},
		{
			name:   "empty",
			public: "",
			errMsg: "public_dir is required",
		},
		{
			name:   "root",
			public: string(filepath.Separator),
			errMsg: "must not be the working or root directory",
		},
		{
			name:   "working directory",
			public: wd,
			errMsg: "must not be the working or root directory",
		},
		{
			name:   "parent of working directory",
			public: "..",
			errMsg: "must not contain the working directory",
		},
		{
			name:      "same as content",
			public:    filepath.Join(root, "site"),
			protected: []ProtectedPath{{Name: "content_dir", Path: filepath.Join(root, "site") + string(filepath.Separator)}},
			errMsg:    "public_dir must differ from content_dir",
		},
		{
			name:      "contains content",
			public:    filepath.Join(root, "site"),
			protected: []ProtectedPath{{Name: "content_dir", Path: filepath.Join(root, "site", "content")}},
			errMsg:    "must not contain content_dir",
		},
		{
			name:      "contains template",
			public:    root,
			protected: []ProtectedPath{{Name: "template", Path: filepath.Join(root, "template.html")}},
			errMsg:    "must not contain template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPublicDir(tt.public, tt.protected...)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
