// Package admin implements the administrative site mounted under /admin: a registry of
// apps and their models plus a log of recent admin actions.
package admin

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicateApp = errors.New("app already registered")
	ErrAppNotFound  = errors.New("app not found")
	ErrInvalidApp   = errors.New("invalid app")
)

// Model is an entry listed under an app.
type Model struct {
	Name   string
	Plural string
}

// App groups models under a URL-safe label.
type App struct {
	Label  string
	Name   string
	Models []Model
}

// Site is the admin registry. Register apps during startup; the site is read-only once served.
type Site struct {
	header string
	title  string
	apps   map[string]App
}

// NewSite creates an empty admin site.
func NewSite(cfg *Config) *Site {
	return &Site{
		header: cfg.SiteHeader,
		title:  cfg.SiteTitle,
		apps:   make(map[string]App),
	}
}

// Header is the text shown at the top of every admin page.
func (s *Site) Header() string { return s.header }

// Title is the suffix of every admin page's <title>.
func (s *Site) Title() string { return s.title }

// Register adds app to the site. Labels must be unique single path segments.
func (s *Site) Register(app App) error {
	if app.Label == "" || strings.ContainsAny(app.Label, "/ ") {
		return fmt.Errorf("%w: label %q", ErrInvalidApp, app.Label)
	}
	if _, ok := s.apps[app.Label]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateApp, app.Label)
	}
	if app.Name == "" {
		app.Name = app.Label
	}

	models := slices.Clone(app.Models)
	for i := range models {
		if models[i].Plural == "" {
			models[i].Plural = models[i].Name + "s"
		}
	}
	slices.SortFunc(models, func(a, b Model) int { return cmp.Compare(a.Name, b.Name) })
	app.Models = models

	s.apps[app.Label] = app
	return nil
}

// Apps returns registered apps ordered by name.
func (s *Site) Apps() []App {
	apps := make([]App, 0, len(s.apps))
	for _, a := range s.apps {
		apps = append(apps, a)
	}
	slices.SortFunc(apps, func(a, b App) int { return cmp.Compare(a.Name, b.Name) })
	return apps
}

// App looks up a registered app by label.
func (s *Site) App(label string) (App, error) {
	app, ok := s.apps[label]
	if !ok {
		return App{}, fmt.Errorf("%w: %s", ErrAppNotFound, label)
	}
	return app, nil
}
