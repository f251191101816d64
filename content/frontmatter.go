package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

// metadata mirrors the front-matter keys the loader understands.
type metadata struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Date        rawScalar  `yaml:"date"`
	Tags        stringList `yaml:"tags"`
	Author      string     `yaml:"author"`
	Image       string     `yaml:"image"`
	Published   *bool      `yaml:"published"`
}

// rawScalar keeps the literal text of a scalar so dates are parsed by us and
// not by the YAML timestamp resolver.
type rawScalar string

func (r *rawScalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*r = rawScalar(strings.TrimSpace(node.Value))
	return nil
}

// stringList accepts either a YAML sequence or a single scalar.
type stringList []string

func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = nil
			return nil
		}
		*s = stringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var vals []string
		if err := node.Decode(&vals); err != nil {
			return err
		}
		*s = vals
		return nil
	default:
		return fmt.Errorf("line %d: expected a list of strings", node.Line)
	}
}

// frontMatterDelim opens and closes the YAML metadata block at the top of a post.
const frontMatterDelim = "---"

// parseSource splits source into decoded metadata, the raw key/value map and
// the markdown body.
func parseSource(source []byte) (metadata, map[string]any, string, error) {
	var meta metadata
	raw := map[string]any{}
	format := frontmatter.NewFormat(frontMatterDelim, frontMatterDelim, func(data []byte, v interface{}) error {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
		return yaml.Unmarshal(data, v)
	})
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, format)
	if err != nil {
		return metadata{}, nil, "", fmt.Errorf("parse front-matter: %w", err)
	}
	return meta, raw, string(body), nil
}

// buildPost applies the field defaults to decoded metadata.
func (l *Loader) buildPost(slug string, source []byte, now time.Time) (Post, error) {
	meta, raw, body, err := parseSource(source)
	if err != nil {
		return Post{}, err
	}
	date := now
	if meta.Date != "" {
		date, err = dateparse.ParseIn(string(meta.Date), l.loc)
		if err != nil {
			return Post{}, fmt.Errorf("parse date %q: %w", string(meta.Date), err)
		}
	}
	p := Post{
		Slug:        slug,
		Title:       strings.TrimSpace(meta.Title),
		Description: strings.TrimSpace(meta.Description),
		Date:        date,
		Tags:        normalizeTags(meta.Tags),
		Author:      strings.TrimSpace(meta.Author),
		Image:       strings.TrimSpace(meta.Image),
		Published:   meta.Published == nil || *meta.Published,
		Content:     body,
		Frontmatter: raw,
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Author == "" {
		p.Author = l.author
	}
	return p, nil
}

// normalizeTags trims tags, drops empties and keeps the first occurrence of
// each duplicate.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
