package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

// Extension is the file extension of post files.
const Extension = ".md"

// FailurePolicy decides what ListPosts does with a file that fails to load.
type FailurePolicy int

const (
	// FailAll aborts the whole listing with the first LoadError.
	FailAll FailurePolicy = iota
	// SkipInvalid logs the LoadError and leaves the file out of the listing.
	SkipInvalid
)

func (p FailurePolicy) String() string {
	switch p {
	case FailAll:
		return "fail-all"
	case SkipInvalid:
		return "skip-invalid"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy maps "fail-all" and "skip-invalid" to their policy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-all", "fail":
		return FailAll, nil
	case "skip-invalid", "skip":
		return SkipInvalid, nil
	default:
		return FailAll, fmt.Errorf("content: unknown failure policy %q", s)
	}
}

// Logger is the subset of echo.Logger the loader writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Loader reads posts from a directory of markdown files. It keeps no state
// between calls: every operation re-scans the directory, so files added or
// removed while the process runs are picked up on the next call.
type Loader struct {
	fsys        fs.FS
	dir         string
	author      string
	loc         *time.Location
	now         func() time.Time
	policy      FailurePolicy
	concurrency int
	readTimeout time.Duration
	logger      Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithAuthor sets the author used for posts without one.
func WithAuthor(author string) Option {
	return func(l *Loader) {
		if author != "" {
			l.author = author
		}
	}
}

// WithLocation sets the time zone front-matter dates without an offset are read in.
func WithLocation(loc *time.Location) Option {
	return func(l *Loader) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithClock replaces time.Now as the source of the default post date.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// WithFailurePolicy sets how ListPosts treats files that fail to load.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(l *Loader) {
		l.policy = p
	}
}

// WithConcurrency bounds the number of files read at once.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithReadTimeout fails a single file read that takes longer than d.
// Zero disables the timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.readTimeout = d
	}
}

// WithLogger sets the logger used for skipped files and debug output.
func WithLogger(logger Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New returns a Loader for the posts in dir.
func New(dir string, opts ...Option) *Loader {
	l := NewFS(os.DirFS(dir), opts...)
	l.dir = dir
	return l
}

// NewFS returns a Loader reading posts from the root of fsys, e.g. an
// embed.FS sub-tree bundled into the binary.
func NewFS(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:        fsys,
		author:      DefaultAuthor,
		loc:         time.UTC,
		now:         time.Now,
		policy:      FailAll,
		concurrency: 8,
		logger:      log.New("content"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the directory the loader was created for, or "" for NewFS.
func (l *Loader) Dir() string {
	return l.dir
}

// Policy returns the configured failure policy.
func (l *Loader) Policy() FailurePolicy {
	return l.policy
}

// ListPosts returns published posts, newest first. Posts with the same date
// keep the order their files were discovered in.
func (l *Loader) ListPosts(ctx context.Context) ([]Post, error) {
	return l.load(ctx, false)
}

// ListAllPosts returns every post including unpublished ones, newest first.
func (l *Loader) ListAllPosts(ctx context.Context) ([]Post, error) {
	return l.load(ctx, true)
}

// GetPost returns the published post whose slug equals slug exactly.
// Unpublished posts are reported as ErrNotFound, the same as in ListPosts.
func (l *Loader) GetPost(ctx context.Context, slug string) (Post, error) {
	p, err := l.GetPostAny(ctx, slug)
	if err != nil {
		return Post{}, err
	}
	if !p.Published {
		return Post{}, ErrNotFound
	}
	return p, nil
}

// GetPostAny returns a post by slug regardless of its published flag.
func (l *Loader) GetPostAny(ctx context.Context, slug string) (Post, error) {
	files, err := l.discover()
	if err != nil {
		return Post{}, err
	}
	for _, name := range files {
		if slugOf(name) == slug {
			return l.readPost(ctx, name, l.now())
		}
	}
	return Post{}, ErrNotFound
}

// Slugs returns the slug of every post file in discovery order without
// reading the files.
func (l *Loader) Slugs() ([]string, error) {
	files, err := l.discover()
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(files))
	for i, name := range files {
		slugs[i] = slugOf(name)
	}
	return slugs, nil
}

// Check loads every file and returns the LoadErrors found, whatever the
// failure policy. A non-nil error means the directory itself could not be read.
func (l *Loader) Check(ctx context.Context) ([]*LoadError, error) {
	files, err := l.discover()
	if err != nil {
		return nil, err
	}
	now := l.now()
	var problems []*LoadError
	for _, name := range files {
		if _, err := l.readPost(ctx, name, now); err != nil {
			var le *LoadError
			if !errors.As(err, &le) {
				return nil, err
			}
			problems = append(problems, le)
		}
	}
	return problems, nil
}

func (l *Loader) load(ctx context.Context, includeDrafts bool) ([]Post, error) {
	files, err := l.discover()
	if err != nil {
		return nil, err
	}

	// One instant for the whole batch so undated posts tie and keep
	// discovery order.
	now := l.now()
	posts := make([]Post, len(files))
	loaded := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			p, err := l.readPost(gctx, name, now)
			if err != nil {
				if l.policy == SkipInvalid && ctx.Err() == nil && IsLoadError(err) {
					l.logger.Warnf("skipping %s: %v", name, err)
					return nil
				}
				return err
			}
			posts[i], loaded[i] = p, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Post, 0, len(posts))
	for i, p := range posts {
		if !loaded[i] {
			continue
		}
		if !p.Published && !includeDrafts {
			continue
		}
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b Post) int {
		return b.Date.Compare(a.Date)
	})
	l.logger.Debugf("loaded %d of %d posts", len(out), len(files))
	return out, nil
}

// discover lists post file names in lexical order. A missing directory is
// an empty blog, not an error.
func (l *Loader) discover() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("content: scan %s: %w", l.displayDir(), err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || path.Ext(name) != Extension {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

func (l *Loader) readPost(ctx context.Context, name string, now time.Time) (Post, error) {
	slug := slugOf(name)
	data, err := l.readFile(ctx, name)
	if err != nil {
		return Post{}, &LoadError{Slug: slug, Path: l.displayPath(name), Err: err}
	}
	p, err := l.buildPost(slug, data, now)
	if err != nil {
		return Post{}, &LoadError{Slug: slug, Path: l.displayPath(name), Err: err}
	}
	return p, nil
}

func (l *Loader) readFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.readTimeout <= 0 {
		return fs.ReadFile(l.fsys, name)
	}

	ctx, cancel := context.WithTimeout(ctx, l.readTimeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := fs.ReadFile(l.fsys, name)
		ch <- result{data, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}

func (l *Loader) displayDir() string {
	if l.dir == "" {
		return "."
	}
	return l.dir
}

func (l *Loader) displayPath(name string) string {
	if l.dir == "" {
		return name
	}
	return filepath.Join(l.dir, name)
}

func slugOf(name string) string {
	return strings.TrimSuffix(name, Extension)
}
