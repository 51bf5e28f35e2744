// Package web renders server-side HTML views with pre-parsed Go templates.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ErrWrite wraps failures that happen after the status line was sent.
// Callers must not write another response when errors.Is(err, ErrWrite).
var ErrWrite = errors.New("write response")

// ViewDef names a view template and its page title.
type ViewDef struct {
	Template string
	Title    string
}

// ViewData is passed to every view. BasePath lets templates build module-relative URLs.
type ViewData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds one parsed template tree per view, each cloned from the shared layouts.
// Parsing happens once at startup so template errors fail fast.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts in layoutFS matched by layoutGlob and clones them
// for each view found under viewSubdir of viewFS.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// Render executes layout for view into a buffer and writes it with status.
// Nothing is written to w when template execution fails; a failed write returns ErrWrite.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout string, view ViewDef, data any) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, layout, ViewData{
		Title:    view.Title,
		BasePath: ts.basePath,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", view.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, view.Template, err)
	}
	return nil
}

// ErrorHandler renders view with status and fixed data for every request.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, status, layout, view, data); err != nil && !errors.Is(err, ErrWrite) {
			http.Error(w, http.StatusText(status), status)
		}
	}
}
