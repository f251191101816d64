package content

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no published post matches the requested slug.
var ErrNotFound = errors.New("content: post not found")

// LoadError reports a content file that exists but could not be read or parsed.
type LoadError struct {
	Slug string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("content: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
