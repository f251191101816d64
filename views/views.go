// Package views renders the site's pages. Each page is an html/template file
// under templates/ executed inside the shared layout and exposed as a
// templ.Component so handlers render every page the same way.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var files embed.FS

var pages = mustParsePages("home", "blog", "post", "projects", "contact", "notfound", "error")

func mustParsePages(names ...string) map[string]*template.Template {
	base := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html"))
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(base.Clone())
		out[name] = template.Must(t.ParseFS(files, "templates/"+name+".html"))
	}
	return out
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, ok := pages[name]
		if !ok {
			return fmt.Errorf("views: unknown page %q", name)
		}
		return t.ExecuteTemplate(w, "layout", data)
	})
}

func Home(d HomeData) templ.Component         { return page("home", d) }
func Blog(d BlogData) templ.Component         { return page("blog", d) }
func Post(d PostData) templ.Component         { return page("post", d) }
func Projects(d ProjectsData) templ.Component { return page("projects", d) }
func Contact(d ContactData) templ.Component   { return page("contact", d) }
func NotFound(d ErrorData) templ.Component    { return page("notfound", d) }
func ServerError(d ErrorData) templ.Component { return page("error", d) }
