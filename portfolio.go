// Package portfolio serves a personal site with a markdown blog, built with
// Go, Echo and templ. Posts are read from a directory of markdown files on
// every request; the profile behind the home, projects and contact pages is
// read from a YAML file at startup.
//
// Pages are rendered through the ViewFuncs struct, so a site can replace any
// template while portfolio keeps the handler logic, middleware, feed and sitemap.
package portfolio

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"

	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/profile"
	"github.com/eltonpeixoto/portfolio/views"
)

// ViewFuncs holds the components the handlers render. This is the
// inversion-of-control mechanism that lets a site own its templates.
type ViewFuncs struct {
	Home        func(views.HomeData) templ.Component
	Blog        func(views.BlogData) templ.Component
	Post        func(views.PostData) templ.Component
	Projects    func(views.ProjectsData) templ.Component
	Contact     func(views.ContactData) templ.Component
	NotFound    func(views.ErrorData) templ.Component
	ServerError func(views.ErrorData) templ.Component
}

// DefaultViews returns the bundled templates.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Blog:        views.Blog,
		Post:        views.Post,
		Projects:    views.Projects,
		Contact:     views.Contact,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App wires together the content loader, profile, handlers, middleware and
// templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Loader  *content.Loader
	Profile *profile.Profile
	Views   ViewFuncs

	customRoutes []func(*App)
	staticDir    string
	themeLimiter *RateLimiter

	initOnce sync.Once
	initErr  error
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Loader == nil {
		a.Loader = content.New(a.Config.ContentDir,
			content.WithAuthor(a.Config.Author),
			content.WithLocation(a.Config.Location),
			content.WithFailurePolicy(a.Config.FailurePolicy),
			content.WithReadTimeout(a.Config.ReadTimeout),
			content.WithLogger(a.Echo.Logger),
		)
	}
	return a
}

// Init loads the profile and registers middleware and routes. It runs once;
// Start calls it, and tests can call it to use a.Echo as an http.Handler.
func (a *App) Init() error {
	a.initOnce.Do(func() {
		a.initErr = a.init()
	})
	return a.initErr
}

func (a *App) init() error {
	if a.Profile == nil {
		p, err := profile.Load(a.Config.SiteFile)
		if err != nil {
			return fmt.Errorf("portfolio: load profile: %w", err)
		}
		a.Profile = p
	}

	if a.Config.SessionSecret == "" {
		a.Config.SessionSecret = hex.EncodeToString(securecookie.GenerateRandomKey(32))
		a.Echo.Logger.Warn("portfolio: SessionSecret not set, using a random secret; theme preferences reset on restart")
	}

	a.themeLimiter = NewRateLimiter(a.Config.ThemeLimit, time.Minute)
	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s from %s on %s", a.Config.Name, a.Config.ContentDir, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Bundled assets (site.css, theme.js) are served under /public/ and
	// fall through to the site's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/theme.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", a.handleHealth)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/projects/", a.handleProjects)
	e.GET("/contact/", a.handleContact)
	e.POST("/theme/", a.handleTheme, a.themeLimiter.Middleware)
}

// Close shuts the server down.
func (a *App) Close() error {
	if a.themeLimiter != nil {
		a.themeLimiter.Stop()
	}
	return a.Echo.Close()
}

// Shutdown stops the server gracefully, waiting for in-flight requests until
// ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	if a.themeLimiter != nil {
		a.themeLimiter.Stop()
	}
	return a.Echo.Shutdown(ctx)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("portfolio: required environment variable %s is not set", key)
	}
	return v
}
