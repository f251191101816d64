// Package profile holds the static data behind the home, projects and contact
// pages: who the site is about, what they work with and how to reach them.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eltonpeixoto/portfolio/markdown"
)

//go:embed default.yaml
var defaultYAML []byte

// Profile is the decoded site.yaml.
type Profile struct {
	Name       string         `yaml:"name"`
	Role       string         `yaml:"role"`
	Tagline    string         `yaml:"tagline"`
	Links      Links          `yaml:"links"`
	Focus      []string       `yaml:"focus"`
	About      []string       `yaml:"about"`
	Principles []string       `yaml:"principles"`
	Stack      []StackGroup   `yaml:"stack"`
	Featured   []Featured     `yaml:"featured"`
	Articles   []Article      `yaml:"articles"`
	Groups     []ProjectGroup `yaml:"project_groups"`
	Contact    Contact        `yaml:"contact"`
}

type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Company  string `yaml:"company"`
	Email    string `yaml:"email"`
}

type StackGroup struct {
	Group string   `yaml:"group"`
	Items []string `yaml:"items"`
}

// Featured is a project summary shown on the home page.
type Featured struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

// Article is an externally hosted article linked from the home page.
type Article struct {
	Title  string `yaml:"title"`
	URL    string `yaml:"url"`
	Source string `yaml:"source"`
}

type ProjectGroup struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Projects    []Project `yaml:"projects"`
}

// Categories returns the distinct project categories of g in order.
func (g ProjectGroup) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range g.Projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Highlights   []string `yaml:"highlights"`
	Technologies []string `yaml:"technologies"`
	Category     string   `yaml:"category"`
	Status       string   `yaml:"status"`
	GitHub       string   `yaml:"github"`
	Demo         string   `yaml:"demo"`
	Impact       []string `yaml:"impact"`
}

// InProduction reports whether the project status is "Production".
func (p Project) InProduction() bool {
	return p.Status == "Production"
}

type Contact struct {
	Methods      []ContactMethod `yaml:"methods"`
	Expertise    []Expertise     `yaml:"expertise"`
	Availability string          `yaml:"availability"`
	Services     []string        `yaml:"services"`
	FAQ          []FAQ           `yaml:"faq"`
}

type ContactMethod struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	LinkText    string `yaml:"link_text"`
	External    bool   `yaml:"external"`
}

type Expertise struct {
	Area        string `yaml:"area"`
	Description string `yaml:"description"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Default returns the built-in profile.
func Default() *Profile {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("profile: built-in profile: %v", err))
	}
	return p
}

// Load reads the profile at path. A missing file yields Default.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a profile document. Unknown keys are errors.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the profile has a name, that every link is a URL the
// pages can render and that project titles are unique.
func (p *Profile) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	checkURL := func(field, raw string) {
		if raw != "" && markdown.SafeURL(raw) == "" {
			errs = append(errs, fmt.Errorf("%s: unsafe or invalid URL %q", field, raw))
		}
	}
	checkURL("links.github", p.Links.GitHub)
	checkURL("links.linkedin", p.Links.LinkedIn)
	checkURL("links.company", p.Links.Company)
	checkURL("links.email", p.Links.Email)
	for i, a := range p.Articles {
		checkURL(fmt.Sprintf("articles[%d].url", i), a.URL)
	}
	for i, m := range p.Contact.Methods {
		checkURL(fmt.Sprintf("contact.methods[%d].link", i), m.Link)
	}

	titles := make(map[string]bool)
	for gi, g := range p.Groups {
		for pi, proj := range g.Projects {
			where := fmt.Sprintf("project_groups[%d].projects[%d]", gi, pi)
			if proj.Title == "" {
				errs = append(errs, fmt.Errorf("%s: title is required", where))
			} else if titles[proj.Title] {
				errs = append(errs, fmt.Errorf("%s: duplicate project title %q", where, proj.Title))
			}
			titles[proj.Title] = true
			checkURL(where+".github", proj.GitHub)
			checkURL(where+".demo", proj.Demo)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("profile: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Projects returns the projects of every group in order.
func (p *Profile) Projects() []Project {
	var out []Project
	for _, g := range p.Groups {
		out = append(out, g.Projects...)
	}
	return out
}
