// Package content loads blog posts from a directory of markdown files with
// YAML front-matter and derives the strings the site displays for them.
package content

import "time"

const (
	// DefaultTitle is used when a post has no title in its front-matter.
	DefaultTitle = "Untitled"
	// DefaultAuthor is used when a post has no author in its front-matter.
	DefaultAuthor = "Elton Peixoto"
)

// Post is a single markdown file from the content directory.
// Posts are built fresh on every load and never modified afterwards.
type Post struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Tags        []string
	Author      string
	Image       string
	Published   bool
	Content     string

	// Frontmatter holds the decoded metadata block as-is, including keys the
	// loader does not know about.
	Frontmatter map[string]any
}

// Link returns the site path of the post.
func (p Post) Link() string {
	return "/blog/" + p.Slug + "/"
}

// HasTag reports whether the post carries tag (exact match).
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
