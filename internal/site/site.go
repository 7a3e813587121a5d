// Package site builds a static site from a directory of Markdown documents.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/open-cli-collective/mdsite/pkg/md"
)

// DocumentExt is the extension of source documents.
const DocumentExt = ".md"

// PageExt is the extension of generated pages.
const PageExt = ".html"

// Options configures a site build.
type Options struct {
	ContentDir string
	// StaticDir is optional. A missing directory is skipped.
	StaticDir          string
	PublicDir          string
	TemplatePath       string
	TitlePlaceholder   string
	ContentPlaceholder string
	Engine             md.Engine
}

// Page describes one generated page.
type Page struct {
	Source string `json:"source"`
	Output string `json:"output"`
	Title  string `json:"title"`
	Bytes  int    `json:"bytes"`
}

// Report summarizes a build.
type Report struct {
	Static []string `json:"static"`
	Pages  []Page   `json:"pages"`
}

// TotalBytes returns the combined size of all generated pages.
func (r *Report) TotalBytes() uint64 {
	var total uint64
	for _, p := range r.Pages {
		total += uint64(p.Bytes)
	}
	return total
}

// FindDocuments returns every Markdown document below contentDir, sorted.
func FindDocuments(contentDir string) ([]string, error) {
	var docs []string
	err := filepath.Walk(contentDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), DocumentExt) {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content directory: %w", err)
	}

	sort.Strings(docs)
	return docs, nil
}

// OutputPath maps a document below contentDir to its page below publicDir.
func OutputPath(contentDir, publicDir, doc string) (string, error) {
	rel, err := filepath.Rel(contentDir, doc)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", doc, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("document %s is outside %s", doc, contentDir)
	}
	return filepath.Join(publicDir, strings.TrimSuffix(rel, filepath.Ext(rel))+PageExt), nil
}

// GeneratePage renders the document at srcPath into destPath.
func GeneratePage(srcPath, destPath string, opts md.PageOptions) (Page, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read %s: %w", srcPath, err)
	}
	document := string(data)

	html, err := md.RenderPage(document, opts)
	if err != nil {
		return Page{}, fmt.Errorf("failed to render %s: %w", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return Page{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(destPath, []byte(html), 0644); err != nil {
		return Page{}, fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	// Templates without a title placeholder accept untitled documents.
	title, _ := md.ExtractTitle(document)

	return Page{
		Source: srcPath,
		Output: destPath,
		Title:  title,
		Bytes:  len(html),
	}, nil
}

// Build regenerates PublicDir: static files are copied first, then every
// document is rendered through the template. The first failure aborts.
// PublicDir is checked with CheckPublicDir before anything is removed.
func Build(opts Options) (*Report, error) {
	template, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	pageOpts := md.PageOptions{
		Template:           string(template),
		TitlePlaceholder:   opts.TitlePlaceholder,
		ContentPlaceholder: opts.ContentPlaceholder,
		Engine:             opts.Engine,
	}.WithDefaults()
	if err := pageOpts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", opts.TemplatePath, err)
	}

	if err := CheckPublicDir(opts.PublicDir,
		ProtectedPath{Name: "content_dir", Path: opts.ContentDir},
		ProtectedPath{Name: "static_dir", Path: opts.StaticDir},
		ProtectedPath{Name: "template", Path: opts.TemplatePath},
	); err != nil {
		return nil, err
	}

	docs, err := FindDocuments(opts.ContentDir)
	if err != nil {
		return nil, err
	}

	report := &Report{}

	if hasDir(opts.StaticDir) {
		report.Static, err = CopyStatic(opts.StaticDir, opts.PublicDir)
		if err != nil {
			return nil, err
		}
	} else if err := resetDir(opts.PublicDir); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		dest, err := OutputPath(opts.ContentDir, opts.PublicDir, doc)
		if err != nil {
			return nil, err
		}
		page, err := GeneratePage(doc, dest, pageOpts)
		if err != nil {
			return nil, err
		}
		report.Pages = append(report.Pages, page)
	}

	return report, nil
}

func hasDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
