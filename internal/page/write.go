package page

import (
	"fmt"
	"os"
	"path/filepath"
)

// Filename returns the output filename for a slug.
func Filename(slug string) string {
	return slug + ".html"
}

// Write puts a rendered page at <dir>/<slug>.html and returns that path.
func Write(dir string, slug string, html []byte) (string, error) {
	path := filepath.Join(dir, Filename(slug))
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return path, nil
}
