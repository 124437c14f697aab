// Package fs exports stored page snapshots as markdown files.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/progscout/progscout"
)

// URLToPath converts a snapshot URL to a relative file path under its
// domain. Example: https://example.com/courses/welding → example.com/courses/welding.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", progscout.Errorf(progscout.EINVALID, "snapshot URL %q has no host", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash becomes index.md
	if path == "" {
		return filepath.Join(strings.ToLower(u.Host), "index.md"), nil
	}
	if strings.HasSuffix(path, "/") {
		path += "index"
	}

	return filepath.Join(strings.ToLower(u.Host), path+".md"), nil
}

// FormatSnapshot formats a snapshot with YAML frontmatter.
func FormatSnapshot(snap *progscout.Snapshot) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(snap.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(snap.Title)
	b.WriteString("\nfetched: ")
	b.WriteString(snap.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(snap.Content)
	return b.String()
}

// Exporter writes snapshots as markdown files to a directory.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes to the given base directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// ExportSnapshot writes a snapshot to disk as a markdown file and
// returns the path written.
func (e *Exporter) ExportSnapshot(snap *progscout.Snapshot) (string, error) {
	if err := snap.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(snap.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(e.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content := FormatSnapshot(snap)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
