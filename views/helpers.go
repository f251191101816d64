package views

import (
	"html"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/markdown"
)

var funcs = template.FuncMap{
	"formatDate":  formatDate,
	"isoDate":     isoDate,
	"readingTime": content.ReadingTime,
	"summary":     content.Summary,
	"markdown":    renderMarkdown,
	"href":        href,
	"jsonLD":      jsonLD,
	"tagURL":      TagURL,
	"shareURL":    shareURL,
	"tagClass":    TagClass,
	"join":        strings.Join,
}

func formatDate(t time.Time) string {
	return content.FormatDate(t, content.DefaultDateFormat)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// renderMarkdown returns sanitized HTML, or the escaped source when rendering fails.
func renderMarkdown(src string) template.HTML {
	out, err := markdown.Render(src)
	if err != nil {
		return template.HTML("<pre>" + html.EscapeString(src) + "</pre>")
	}
	return template.HTML(out)
}

// href passes raw through markdown.SafeURL. Unsafe URLs become "#".
func href(raw string) template.URL {
	safe := markdown.SafeURL(raw)
	if safe == "" {
		return "#"
	}
	// SafeURL escapes for attribute context; html/template escapes again.
	return template.URL(html.UnescapeString(safe))
}

func jsonLD(s string) template.JS {
	return template.JS(s)
}

// TagURL returns the blog listing URL filtered by tag.
func TagURL(tag string) string {
	if tag == "" || tag == content.AllTags {
		return "/blog/"
	}
	return "/blog/?tag=" + url.QueryEscape(tag)
}

func shareURL(network, pageURL, title string) string {
	switch network {
	case "twitter":
		return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(title) + "&url=" + url.QueryEscape(pageURL)
	case "linkedin":
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(pageURL)
	default:
		return pageURL
	}
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	if active {
		return "pill pill-active"
	}
	return "pill"
}
