// Package urls provides the site URL table: an ordered, immutable list of
// (pattern, handler, name) routes resolved first-match-wins.
//
// Patterns are relative to the site root. An exact route with pattern "" serves
// "/" only; an include route with pattern "admin/" hands "/admin" and everything
// below it to a mounted module.
package urls

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/mysite/pkg/module"
)

var (
	ErrInvalidPattern = errors.New("invalid url pattern")
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrAmbiguousRoute = errors.New("ambiguous route")
	ErrNoReverseMatch = errors.New("no reverse match")
)

// Kind distinguishes exact routes from module includes.
type Kind int

const (
	KindExact Kind = iota
	KindInclude
)

func (k Kind) String() string {
	if k == KindInclude {
		return "include"
	}
	return "exact"
}

// Route binds a pattern to either a handler (exact) or a module (include).
type Route struct {
	Pattern string
	Name    string
	Kind    Kind
	Handler http.Handler
	Module  *module.Module
}

// Path declares an exact route. name may be empty.
func Path(pattern string, handler http.Handler, name string) Route {
	return Route{
		Pattern: pattern,
		Name:    name,
		Kind:    KindExact,
		Handler: handler,
	}
}

// Include declares a prefix route delegating its subtree to m.
// The route is named after its prefix segment, so Reverse("admin") yields "/admin/".
func Include(pattern string, m *module.Module) Route {
	return Route{
		Pattern: pattern,
		Name:    strings.TrimSuffix(pattern, "/"),
		Kind:    KindInclude,
		Module:  m,
	}
}

// URL returns the absolute path the route is reached at.
func (r Route) URL() string {
	return "/" + r.Pattern
}

func (r Route) matches(path string) bool {
	if r.Kind == KindInclude {
		prefix := strings.TrimSuffix(r.URL(), "/")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.URL()
}

func (r Route) validate() error {
	if strings.HasPrefix(r.Pattern, "/") {
		return fmt.Errorf("%w: %q must not start with /", ErrInvalidPattern, r.Pattern)
	}
	if strings.ContainsAny(r.Pattern, "{} \t\n") || strings.Contains(r.Pattern, "//") {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, r.Pattern)
	}

	switch r.Kind {
	case KindExact:
		if r.Handler == nil {
			return fmt.Errorf("%w: %q has no handler", ErrInvalidPattern, r.Pattern)
		}
	case KindInclude:
		segment, ok := strings.CutSuffix(r.Pattern, "/")
		if !ok || segment == "" || strings.Contains(segment, "/") {
			return fmt.Errorf("%w: include %q must be a single segment ending in /", ErrInvalidPattern, r.Pattern)
		}
		if r.Module == nil {
			return fmt.Errorf("%w: include %q has no module", ErrInvalidPattern, r.Pattern)
		}
		if r.Module.Prefix() != "/"+segment {
			return fmt.Errorf("%w: include %q mounts module at %q", ErrInvalidPattern, r.Pattern, r.Module.Prefix())
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidPattern, r.Kind)
	}
	return nil
}

// overlaps reports whether some path could be matched by both routes.
func overlaps(a, b Route) bool {
	switch {
	case a.Kind == KindExact && b.Kind == KindExact:
		return a.URL() == b.URL()
	case a.Kind == KindInclude && b.Kind == KindInclude:
		return a.URL() == b.URL()
	case a.Kind == KindInclude:
		return a.matches(b.URL())
	default:
		return b.matches(a.URL())
	}
}
