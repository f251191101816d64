package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagged(slug string, tags ...string) Post {
	return Post{Slug: slug, Tags: tags, Published: true}
}

func TestTags(t *testing.T) {
	posts := []Post{
		tagged("a", "go", "sre"),
		tagged("b", "k8s", "go"),
		tagged("c"),
		tagged("d", "sre"),
	}
	want := []TagCount{{"go", 2}, {"sre", 2}, {"k8s", 1}}
	assert.Equal(t, want, Tags(posts))
	assert.Empty(t, Tags(nil))
}

func TestFilterByTag(t *testing.T) {
	posts := []Post{
		tagged("a", "go"),
		tagged("b", "Go"),
		tagged("c", "sre", "go"),
	}
	tests := []struct {
		tag  string
		want []string
	}{
		{"", []string{"a", "b", "c"}},
		{AllTags, []string{"a", "b", "c"}},
		{"go", []string{"a", "c"}},
		{"Go", []string{"b"}},
		{"missing", []string{}},
	}
	for _, tt := range tests {
		got := slugsOf(FilterByTag(posts, tt.tag))
		assert.Equal(t, tt.want, got, "FilterByTag(%q)", tt.tag)
	}
}

func TestRelated(t *testing.T) {
	current := tagged("cur", "go", "sre")
	posts := []Post{
		tagged("x", "k8s"),
		current,
		tagged("y", "sre"),
		tagged("z", "go", "sre"),
		tagged("w", "go"),
	}
	assert.Equal(t, []string{"y", "z", "w"}, slugsOf(Related(current, posts, 0)))
	assert.Equal(t, []string{"y", "z"}, slugsOf(Related(current, posts, 2)))
	assert.Empty(t, Related(tagged("lonely"), posts, 3))
}

func TestPostLinkAndHasTag(t *testing.T) {
	p := tagged("hello-world", "go")
	assert.Equal(t, "/blog/hello-world/", p.Link())
	assert.True(t, p.HasTag("go"))
	assert.False(t, p.HasTag("GO"))
}
