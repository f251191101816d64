package content

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 7, 3, 0, time.UTC)
	tests := []struct {
		pattern string
		want    string
	}{
		{"dd/MM/yyyy", "05/03/2024"},
		{"", "05/03/2024"},
		{"d/M/yy", "5/3/24"},
		{"yyyy-MM-dd HH:mm:ss", "2024-03-05 09:07:03"},
		{"H'h'mm", "9h07"},
		{"'hoje' dd", "hoje 05"},
		{"dd''MM", "05'03"},
		{"'it''s' yyyy", "it's 2024"},
		{"Q dd", "Q 05"},
	}
	for _, tt := range tests {
		got := FormatDate(ts, tt.pattern)
		if got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestFormatDateLocaleNames(t *testing.T) {
	ts := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	got := FormatDate(ts, "d 'de' MMMM 'de' yyyy")
	assert.True(t, strings.EqualFold(got, "15 de março de 2024"), "got %q", got)

	got = FormatDate(ts, "EEEE")
	assert.True(t, strings.EqualFold(got, "sexta-feira"), "got %q", got)

	got = FormatDate(ts, "dd MMM")
	assert.True(t, strings.EqualFold(got, "15 mar"), "got %q", got)
}

func TestFormatDateUnterminatedQuote(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02 dd", FormatDate(ts, "dd 'dd"))
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, "1 min de leitura"},
		{1, "1 min de leitura"},
		{200, "1 min de leitura"},
		{201, "2 min de leitura"},
		{400, "2 min de leitura"},
		{401, "3 min de leitura"},
	}
	for _, tt := range tests {
		content := strings.TrimSpace(strings.Repeat("palavra ", tt.words))
		got := ReadingTime(content)
		if got != tt.want {
			t.Errorf("ReadingTime(%d words) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestReadingMinutesCountsAnyWhitespace(t *testing.T) {
	content := strings.Repeat("a\tb\nc  d ", 100)
	assert.Equal(t, 2, ReadingMinutes(content))
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{"short unchanged", "Hello world", 150, "Hello world"},
		{"strips marks", "# Title\n\n**bold** `code` - [link]", 150, "Title\n\nbold code  link"},
		{"trims", "   padded   ", 150, "padded"},
		{"exact length", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "abcde..."},
		{"cut trims trailing space", "abcd efgh", 5, "abcd..."},
		{"default length", strings.Repeat("x", 200), 0, strings.Repeat("x", 150) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.content, tt.max))
		})
	}
}

func TestExcerptLengthBound(t *testing.T) {
	long := strings.Repeat("ação ", 100)
	got := Excerpt(long, 150)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 153)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, utf8.ValidString(got))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "desc", Summary(Post{Description: "desc", Content: "body"}))
	assert.Equal(t, "body", Summary(Post{Content: "## body"}))
}
