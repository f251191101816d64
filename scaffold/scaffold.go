// Package scaffold holds the embedded templates used by the portfolio CLI to
// create new content files.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

var postTemplate = template.Must(template.ParseFS(Templates, "templates/post.md.tmpl"))

// ErrExists is returned by WritePost when the target file is already there.
var ErrExists = errors.New("scaffold: file already exists")

// PostData holds the variables passed to the post template.
type PostData struct {
	Title string
	Date  time.Time
}

// RenderPost writes a new draft post with front matter to w.
func RenderPost(w io.Writer, data PostData) error {
	return postTemplate.Execute(w, data)
}

// WritePost creates dir/slug.md from the post template. It never overwrites
// an existing file.
func WritePost(dir, slug string, data PostData) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("scaffold: empty slug for title %q", data.Title)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, slug+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return path, err
	}
	if err := RenderPost(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return path, fmt.Errorf("scaffold: render %s: %w", path, err)
	}
	return path, f.Close()
}
