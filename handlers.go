package portfolio

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/views"
)

// page builds the layout data shared by every view.
func (a *App) page(c echo.Context, nav string, meta views.PageMeta) views.Page {
	cfg := a.Config
	if meta.Title == "" {
		meta.Title = cfg.Name + " - " + a.Profile.Role
	}
	if meta.Description == "" {
		meta.Description = cfg.Description
	}
	if meta.Keywords == "" {
		meta.Keywords = cfg.Keywords
	}
	if meta.Image == "" {
		meta.Image = cfg.Image
	}
	if meta.URL == "" {
		meta.URL = BuildURL(cfg.URL, strings.Trim(c.Request().URL.Path, "/"))
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	return views.Page{
		Site: views.Site{
			Name:        cfg.Name,
			URL:         cfg.URL,
			Description: cfg.Description,
			Author:      cfg.Author,
			Keywords:    cfg.Keywords,
			Image:       cfg.Image,
		},
		Meta:      meta,
		Nav:       nav,
		Path:      c.Request().URL.Path,
		Theme:     string(ThemeFrom(c)),
		CSRFToken: CsrfToken(c),
		Year:      time.Now().Year(),
	}
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Loader.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	if len(posts) > a.Config.RecentPosts {
		posts = posts[:a.Config.RecentPosts]
	}
	p := a.page(c, "home", views.PageMeta{})
	p.JSONLD = WebsiteJsonLD(a.Config)
	return Render(c, a.Views.Home(views.HomeData{
		Page:    p,
		Profile: a.Profile,
		Recent:  posts,
	}))
}

func (a *App) handleBlog(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Loader.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Blog(views.BlogData{
		Page: a.page(c, "blog", views.PageMeta{
			Title:       "Blog - " + a.Config.Name,
			Description: "Artigos sobre DevOps, SRE, Platform Engineering e tecnologias relacionadas",
		}),
		Posts:     content.FilterByTag(posts, tag),
		Total:     len(posts),
		Tags:      content.Tags(posts),
		ActiveTag: tag,
	}))
}

func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	post, err := a.Loader.GetPost(ctx, slug)
	if errors.Is(err, content.ErrNotFound) && a.Config.PreviewDrafts {
		post, err = a.Loader.GetPostAny(ctx, slug)
	}
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return a.renderNotFound(c, "Post não encontrado")
		}
		var le *content.LoadError
		if errors.As(err, &le) {
			c.Logger().Errorf("load post %s: %v", slug, err)
			return a.renderServerError(c, http.StatusInternalServerError, "Erro ao carregar o post")
		}
		return err
	}

	var related []content.Post
	if posts, err := a.Loader.ListPosts(ctx); err != nil {
		c.Logger().Warnf("related posts for %s: %v", slug, err)
	} else {
		related = content.Related(post, posts, a.Config.RelatedPosts)
	}

	description := post.Description
	if description == "" {
		description = "Artigo sobre " + post.Title
	}
	p := a.page(c, "blog", views.PageMeta{
		Title:       post.Title + " - " + a.Config.Name,
		Description: description,
		Keywords:    strings.Join(post.Tags, ", "),
		Image:       AbsoluteURL(a.Config.URL, post.Image),
		URL:         BuildURL(a.Config.URL, "blog", post.Slug),
		OGType:      "article",
	})
	p.JSONLD = BlogPostingJsonLD(post, a.Config)
	return Render(c, a.Views.Post(views.PostData{
		Page:    p,
		Post:    post,
		Related: related,
	}))
}

func (a *App) handleProjects(c echo.Context) error {
	return Render(c, a.Views.Projects(views.ProjectsData{
		Page: a.page(c, "projects", views.PageMeta{
			Title:       "Projetos - " + a.Config.Name,
			Description: "Projetos em DevOps, SRE, Platform Engineering e desenvolvimento de sites para pequenas empresas.",
		}),
		Profile: a.Profile,
	}))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(views.ContactData{
		Page: a.page(c, "contact", views.PageMeta{
			Title:       "Contato - " + a.Config.Name,
			Description: "Entre em contato para discutir projetos, oportunidades ou trocar ideias sobre DevOps, SRE e Platform Engineering",
		}),
		Profile: a.Profile,
	}))
}

// handleTheme stores the theme in the session. An explicit "theme" form
// value wins; otherwise the current theme is toggled. Script callers asking
// for JSON get the new theme back, forms are redirected to where they came from.
func (a *App) handleTheme(c echo.Context) error {
	next := ThemeFrom(c).Toggle()
	if v := c.FormValue("theme"); v == string(ThemeDark) || v == string(ThemeLight) {
		next = Theme(v)
	}
	if err := setTheme(c, next); err != nil {
		return err
	}
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, map[string]string{"theme": string(next)})
	}
	return c.Redirect(http.StatusSeeOther, localRedirect(c.FormValue("redirect")))
}

// localRedirect only allows paths on this site.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Loader.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Loader.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleHealth(c echo.Context) error {
	posts, err := a.Loader.ListPosts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "error",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"posts":  len(posts),
	})
}

// handleRobots serves robots.txt from the static dir, or a generated one
// pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.staticDir, "robots.txt")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	body := "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimSuffix(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context, message string) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(views.ErrorData{
		Page:    a.page(c, "", views.PageMeta{Title: "Página não encontrada - " + a.Config.Name}),
		Message: message,
	}))
}

func (a *App) renderServerError(c echo.Context, code int, message string) error {
	return RenderStatus(c, code, a.Views.ServerError(views.ErrorData{
		Page:    a.page(c, "", views.PageMeta{Title: "Erro - " + a.Config.Name}),
		Message: message,
	}))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c, "")
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = a.renderServerError(c, code, "")
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
