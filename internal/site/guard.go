package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProtectedPath names a path that must survive a rebuild of the public
// directory.
type ProtectedPath struct {
	Name string
	Path string
}

// CheckPublicDir rejects a public directory whose removal would take the
// working directory, the filesystem root or any protected path with it.
func CheckPublicDir(publicDir string, protected ...ProtectedPath) error {
	if publicDir == "" {
		return errors.New("public_dir is required")
	}

	public, err := filepath.Abs(publicDir)
	if err != nil {
		return fmt.Errorf("failed to resolve public_dir: %w", err)
	}
	if public == filepath.VolumeName(public)+string(filepath.Separator) {
		return errors.New("public_dir must not be the working or root directory")
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if public == wd {
		return errors.New("public_dir must not be the working or root directory")
	}
	if contains(public, wd) {
		return fmt.Errorf("public_dir %s must not contain the working directory", publicDir)
	}

	for _, p := range protected {
		if p.Path == "" {
			continue
		}
		abs, err := filepath.Abs(p.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p.Name, err)
		}
		if abs == public {
			return fmt.Errorf("public_dir must differ from %s", p.Name)
		}
		if contains(public, abs) {
			return fmt.Errorf("public_dir %s must not contain %s %s", publicDir, p.Name, p.Path)
		}
	}
	return nil
}

// contains reports whether path lies strictly below dir. Both are absolute.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
