package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/profile"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func testPage(nav string) Page {
	return Page{
		Site:      Site{Name: "Elton Peixoto", URL: "https://example.com", Author: "Elton Peixoto"},
		Meta:      PageMeta{Title: "Título", Description: "Descrição", URL: "https://example.com/", OGType: "website"},
		Nav:       nav,
		Theme:     "dark",
		CSRFToken: "tok123",
		Year:      2025,
	}
}

func samplePost() content.Post {
	return content.Post{
		Slug:      "prometheus-tsdb",
		Title:     "Arquitetura do TSDB",
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Tags:      []string{"sre", "prometheus"},
		Author:    "Elton Peixoto",
		Published: true,
		Content:   "## Intro\n\nTexto com [link](https://prometheus.io).",
	}
}

func TestLayout(t *testing.T) {
	out := renderString(t, Home(HomeData{Page: testPage("home"), Profile: profile.Default()}))
	assert.Contains(t, out, `<html lang="pt-BR" class="dark">`)
	assert.Contains(t, out, "<title>Título</title>")
	assert.Contains(t, out, `name="_csrf" value="tok123"`)
	assert.Contains(t, out, `<a href="/" class="active">Início</a>`)
	assert.Contains(t, out, "Modo claro")

	light := testPage("blog")
	light.Theme = "light"
	out = renderString(t, Blog(BlogData{Page: light}))
	assert.NotContains(t, out, `class="dark"`)
	assert.Contains(t, out, "Modo escuro")
}

func TestHome(t *testing.T) {
	out := renderString(t, Home(HomeData{
		Page:    testPage("home"),
		Profile: profile.Default(),
		Recent:  []content.Post{samplePost()},
	}))
	assert.Contains(t, out, "DevOps • SRE • Platform Engineering")
	assert.Contains(t, out, "Minha stack")
	assert.Contains(t, out, `href="/blog/prometheus-tsdb/"`)
	assert.Contains(t, out, "15/03/2024")
}

func TestBlog(t *testing.T) {
	p := samplePost()
	out := renderString(t, Blog(BlogData{
		Page:  testPage("blog"),
		Posts: []content.Post{p},
		Total: 3,
		Tags:  []content.TagCount{{Name: "sre", Count: 2}, {Name: "prometheus", Count: 1}},
	}))
	assert.Contains(t, out, "Todos (3)")
	assert.Contains(t, out, `<a class="pill pill-active" href="/blog/">`)
	assert.Contains(t, out, "sre (2)")
	assert.Contains(t, out, "1 min de leitura")
	assert.Contains(t, out, "por Elton Peixoto")
	assert.Contains(t, out, "Ler mais")
}

func TestBlogEmpty(t *testing.T) {
	out := renderString(t, Blog(BlogData{Page: testPage("blog")}))
	assert.Contains(t, out, "Nenhum post encontrado")

	out = renderString(t, Blog(BlogData{Page: testPage("blog"), ActiveTag: "go", Total: 2}))
	assert.Contains(t, out, `Nenhum post com a tag "go"`)
	assert.Contains(t, out, "Ver todos os posts")
}

func TestPost(t *testing.T) {
	p := samplePost()
	out := renderString(t, Post(PostData{Page: testPage("blog"), Post: p}))
	assert.Contains(t, out, "<h1>Arquitetura do TSDB</h1>")
	assert.Contains(t, out, `<h2 id="intro">Intro</h2>`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `href="/blog/?tag=sre"`)
	assert.NotContains(t, out, "Rascunho")

	p.Published = false
	out = renderString(t, Post(PostData{Page: testPage("blog"), Post: p}))
	assert.Contains(t, out, "Rascunho")
}

func TestPostEscapesTitle(t *testing.T) {
	p := samplePost()
	p.Title = `<script>alert("x")</script>`
	out := renderString(t, Post(PostData{Page: testPage("blog"), Post: p}))
	assert.NotContains(t, out, `<script>alert`)
}

func TestProjectsAndContact(t *testing.T) {
	out := renderString(t, Projects(ProjectsData{Page: testPage("projects"), Profile: profile.Default()}))
	assert.Contains(t, out, "Projetos Enterprise")
	assert.Contains(t, out, "Maat – AWS Tag Editor with Approvals")
	assert.Contains(t, out, `class="status live"`)

	out = renderString(t, Contact(ContactData{Page: testPage("contact"), Profile: profile.Default()}))
	assert.Contains(t, out, "Perguntas frequentes")
	assert.Contains(t, out, `href="mailto:pluizelton@gmail.com"`)
}

func TestErrorPages(t *testing.T) {
	out := renderString(t, NotFound(ErrorData{Page: testPage("")}))
	assert.Contains(t, out, "Página não encontrada")
	assert.Contains(t, out, `href="/blog/"`)

	out = renderString(t, ServerError(ErrorData{Page: testPage(""), Message: "Erro ao carregar o post"}))
	assert.Contains(t, out, "Erro ao carregar o post")
}

func TestHref(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/a?b=1&c=2", "https://example.com/a?b=1&c=2"},
		{"javascript:alert(1)", "#"},
		{"/public/img.png", "/public/img.png"},
	}
	for _, tt := range tests {
		got := string(href(tt.input))
		if got != tt.expected {
			t.Errorf("href(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTagURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "/blog/"},
		{"all", "/blog/"},
		{"go", "/blog/?tag=go"},
		{"c++ & go", "/blog/?tag=c%2B%2B+%26+go"},
	}
	for _, tt := range tests {
		if got := TagURL(tt.input); got != tt.expected {
			t.Errorf("TagURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestShareURL(t *testing.T) {
	got := shareURL("twitter", "https://example.com/blog/a/", "Olá mundo")
	if !strings.HasPrefix(got, "https://twitter.com/intent/tweet?text=Ol%C3%A1+mundo&url=") {
		t.Errorf("shareURL twitter = %q", got)
	}
}
