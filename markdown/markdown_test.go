package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, src string) string {
	t.Helper()
	got, err := Render(src)
	if err != nil {
		t.Fatalf("Render(%q) error: %v", src, err)
	}
	return got
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"`code`", "<code>code</code>"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderBoldNotMatchedAsItalic(t *testing.T) {
	got := render(t, "**bold**")
	if strings.Contains(got, "<em>") {
		t.Errorf("Render(%q) = %q, should not contain <em>", "**bold**", got)
	}
}

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", `<h1 id="heading-1">Heading 1</h1>`},
		{"## Heading 2", `<h2 id="heading-2">Heading 2</h2>`},
		{"### Heading 3", `<h3 id="heading-3">Heading 3</h3>`},
	}
	for _, tt := range tests {
		got := strings.TrimSpace(render(t, tt.input))
		if got != tt.expected {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	got := render(t, "```go\nfmt.Println(\"hello\")\n```")
	if !strings.Contains(got, `<pre><code class="language-go">`) {
		t.Errorf("code block should have language-go class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(&#34;hello&#34;)") && !strings.Contains(got, "fmt.Println(&quot;hello&quot;)") {
		t.Errorf("code block should keep escaped content: %q", got)
	}
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	got := render(t, "```\nplain code\n```")
	if !strings.Contains(got, "<pre><code>plain code") {
		t.Errorf("code block without language should have bare code tag: %q", got)
	}
}

func TestRenderLists(t *testing.T) {
	got := render(t, "- item 1\n- item 2")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>item 1</li>") {
		t.Errorf("unordered list: %q", got)
	}
	got = render(t, "1. first\n2. second\n\nsome text")
	if !strings.Contains(got, "<ol>") || !strings.Contains(got, "<li>second</li>") {
		t.Errorf("ordered list: %q", got)
	}
	if !strings.Contains(got, "<p>some text</p>") {
		t.Errorf("expected paragraph after list: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>2</td>") {
		t.Errorf("table: %q", got)
	}
}

func TestRenderExternalLinks(t *testing.T) {
	got := render(t, "[Google](https://google.com)")
	for _, want := range []string{`href="https://google.com"`, `target="_blank"`, "noopener", "noreferrer"} {
		if !strings.Contains(got, want) {
			t.Errorf("external link %q missing %q", got, want)
		}
	}
}

func TestRenderInternalLinks(t *testing.T) {
	for _, input := range []string{"[post](/blog/outro/)", "[top](#intro)"} {
		got := render(t, input)
		if strings.Contains(got, "target=") || strings.Contains(got, "noopener") {
			t.Errorf("Render(%q) = %q, internal link should open in place", input, got)
		}
	}
}

func TestRenderLinkWithUnderscoresInURL(t *testing.T) {
	got := render(t, "[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)")
	if !strings.Contains(got, `href="https://en.wikipedia.org/wiki/Some_Article_Title"`) {
		t.Errorf("link URL mangled: %q", got)
	}
	if strings.Contains(got, "<em>") {
		t.Errorf("underscores in URL became emphasis: %q", got)
	}
}

func TestRenderImagesAreLazy(t *testing.T) {
	got := render(t, "![diagrama](/public/img/arch.png)")
	if !strings.Contains(got, `loading="lazy"`) {
		t.Errorf("image should load lazily: %q", got)
	}
	if !strings.Contains(got, `alt="diagrama"`) {
		t.Errorf("image alt missing: %q", got)
	}
}

func TestRenderSanitizes(t *testing.T) {
	tests := []struct {
		input     string
		forbidden string
	}{
		{"<script>alert(1)</script>", "<script"},
		{"[x](javascript:alert(1))", "javascript:"},
		{`<img src="x" onerror="alert(1)">`, "onerror"},
		{`<a href="/" onclick="steal()">x</a>`, "onclick"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if strings.Contains(got, tt.forbidden) {
			t.Errorf("Render(%q) = %q, should not contain %q", tt.input, got, tt.forbidden)
		}
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("Run `go test` to verify.").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<code>go test</code>") {
		t.Errorf("component output = %q, want inline code tags", buf.String())
	}
}

func TestTerminal(t *testing.T) {
	got, err := Terminal("# Título\n\nTexto do post.", 60)
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	if !strings.Contains(got, "Texto") {
		t.Errorf("Terminal output missing body: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/blog/post/", "/blog/post/"},
		{"#top", "#top"},
		{"https://example.com/a?b=1&c=2", "https://example.com/a?b=1&amp;c=2"},
		{"mailto:eu@example.com", "mailto:eu@example.com"},
		{"tel:+5511999999999", "tel:+5511999999999"},
		{"  https://example.com  ", "https://example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html,hi", ""},
		{"example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := SafeURL(tt.input)
		if got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
