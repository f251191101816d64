package portfolio

import (
	"time"

	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/profile"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Elton Peixoto")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author for JSON-LD and posts without one
	Keywords    string // Default meta keywords
	Image       string // Default og:image

	Addr       string // Listen address (default ":3000")
	ContentDir string // Directory of post files (default "content/posts")
	SiteFile   string // Profile YAML (default "site.yaml")

	Location      *time.Location        // Zone for dates without an offset (default UTC)
	FailurePolicy content.FailurePolicy // What listings do with broken post files
	ReadTimeout   time.Duration         // Per-file read timeout, zero disables
	RecentPosts   int                   // Posts shown on the home page (default 3)
	RelatedPosts  int                   // Related posts under an article (default 3)

	SessionSecret string // Theme cookie secret; random per process when empty
	CookieSecure  bool   // Set true for HTTPS
	PreviewDrafts bool   // Serve unpublished posts at their URL
	ThemeLimit    int    // Theme toggles per IP per minute (default 30)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Elton Peixoto"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "DevOps, SRE e Platform Engineering. Infra as Code, observabilidade e plataformas internas em AWS & GCP."
	}
	if c.Author == "" {
		c.Author = content.DefaultAuthor
	}
	if c.Keywords == "" {
		c.Keywords = "DevOps, SRE, Platform Engineering, AWS, GCP, Kubernetes, Terraform, Observability"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.SiteFile == "" {
		c.SiteFile = "site.yaml"
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.RecentPosts == 0 {
		c.RecentPosts = 3
	}
	if c.RelatedPosts == 0 {
		c.RelatedPosts = 3
	}
	if c.ThemeLimit == 0 {
		c.ThemeLimit = 30
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for site-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLoader replaces the loader built from ContentDir, e.g. to serve posts
// embedded in the binary.
func WithLoader(l *content.Loader) Option {
	return func(a *App) {
		a.Loader = l
	}
}

// WithProfile uses p instead of reading SiteFile.
func WithProfile(p *profile.Profile) Option {
	return func(a *App) {
		a.Profile = p
	}
}
