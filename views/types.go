package views

import (
	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/profile"
)

// Site holds site-wide settings. Every page carries it so nothing is hardcoded.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	Keywords    string
	Image       string // default og:image
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	Keywords    string
	Image       string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Page is the data every layout needs.
type Page struct {
	Site      Site
	Meta      PageMeta
	Nav       string // active section: home, blog, projects, contact
	Path      string // request path, where the theme toggle returns to
	Theme     string // "dark" or "light"
	CSRFToken string
	JSONLD    string
	Year      int
}

// Dark reports whether the page renders with the dark colour scheme.
func (p Page) Dark() bool {
	return p.Theme != "light"
}

type HomeData struct {
	Page
	Profile *profile.Profile
	Recent  []content.Post
}

type BlogData struct {
	Page
	Posts     []content.Post // after tag filtering
	Total     int            // published posts before filtering
	Tags      []content.TagCount
	ActiveTag string
}

// Filtered reports whether a tag other than "all" is selected.
func (d BlogData) Filtered() bool {
	return d.ActiveTag != "" && d.ActiveTag != content.AllTags
}

type PostData struct {
	Page
	Post    content.Post
	Related []content.Post
}

type ProjectsData struct {
	Page
	Profile *profile.Profile
}

type ContactData struct {
	Page
	Profile *profile.Profile
}

// ErrorData backs the not-found and server-error pages.
type ErrorData struct {
	Page
	Message string
}
