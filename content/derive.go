package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/goodsign/monday"
)

const (
	// DefaultDateFormat is the short date pattern used on cards and post headers.
	DefaultDateFormat = "dd/MM/yyyy"
	// WordsPerMinute is the reading speed behind ReadingTime.
	WordsPerMinute = 200
	// DefaultExcerptLength is the excerpt length used when none is given.
	DefaultExcerptLength = 150
)

// Locale is the language month and weekday names are rendered in.
var Locale = monday.LocalePtBR

// FormatDate renders t with a date-fns style pattern such as "dd/MM/yyyy" or
// "d 'de' MMMM 'de' yyyy". Text between single quotes is copied literally and
// "''" yields a quote. Letters that are not tokens are copied as-is.
func FormatDate(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	runes := []rune(pattern)
	var b strings.Builder
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\'' {
			i = writeQuoted(&b, runes, i)
			continue
		}
		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}
		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		b.WriteString(formatToken(t, r, n))
		i += n
	}
	return b.String()
}

// writeQuoted copies the literal starting at the quote runes[i] and returns
// the index after its closing quote.
func writeQuoted(b *strings.Builder, runes []rune, i int) int {
	if i+1 < len(runes) && runes[i+1] == '\'' {
		b.WriteRune('\'')
		return i + 2
	}
	j := i + 1
	for j < len(runes) {
		if runes[j] == '\'' {
			if j+1 < len(runes) && runes[j+1] == '\'' {
				b.WriteRune('\'')
				j += 2
				continue
			}
			return j + 1
		}
		b.WriteRune(runes[j])
		j++
	}
	return j
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func formatToken(t time.Time, letter rune, n int) string {
	switch letter {
	case 'd':
		return pad(t.Day(), n)
	case 'M':
		switch {
		case n >= 4:
			return monday.Format(t, "January", monday.Locale(Locale))
		case n == 3:
			return monday.Format(t, "Jan", monday.Locale(Locale))
		default:
			return pad(int(t.Month()), n)
		}
	case 'y':
		if n == 2 {
			return pad(t.Year()%100, 2)
		}
		return pad(t.Year(), n)
	case 'E':
		if n >= 4 {
			return monday.Format(t, "Monday", monday.Locale(Locale))
		}
		return monday.Format(t, "Mon", monday.Locale(Locale))
	case 'H':
		return pad(t.Hour(), n)
	case 'm':
		return pad(t.Minute(), n)
	case 's':
		return pad(t.Second(), n)
	default:
		return strings.Repeat(string(letter), n)
	}
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// ReadingMinutes returns the whitespace-separated word count divided by
// WordsPerMinute, rounded up, and never less than one.
func ReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ReadingTime formats ReadingMinutes for display, e.g. "3 min de leitura".
func ReadingTime(content string) string {
	return fmt.Sprintf("%d min de leitura", ReadingMinutes(content))
}

// markdownMarks are stripped from excerpts.
const markdownMarks = "#*`-[]"

// Excerpt strips common markdown marks from content and cuts it to maxLength
// characters, appending "..." when it had to cut. maxLength <= 0 means
// DefaultExcerptLength.
func Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	plain := strings.TrimSpace(strings.Map(func(r rune) rune {
		if strings.ContainsRune(markdownMarks, r) {
			return -1
		}
		return r
	}, content))

	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}
	return strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace) + "..."
}

// Summary is the text shown on a post card: the description when present,
// otherwise an excerpt of the body.
func Summary(p Post) string {
	if p.Description != "" {
		return p.Description
	}
	return Excerpt(p.Content, DefaultExcerptLength)
}
