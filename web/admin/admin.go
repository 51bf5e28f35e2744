// Package admin provides the admin web module mounted under /admin.
package admin

import (
	"embed"
	"errors"
	"log/slog"
	"net/http"

	adminsite "github.com/JaimeStill/mysite/internal/admin"
	"github.com/JaimeStill/mysite/pkg/module"
	"github.com/JaimeStill/mysite/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "admin.html"

var (
	indexView    = web.ViewDef{Template: "index.html", Title: "Site administration"}
	appView      = web.ViewDef{Template: "app.html", Title: "App administration"}
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found"}
)

// Deps are the collaborators of the admin module.
type Deps struct {
	Site          *adminsite.Site
	Log           adminsite.LogStore
	RecentActions int
	Logger        *slog.Logger
}

type pageData struct {
	SiteHeader     string
	SiteTitle      string
	Apps           []adminsite.App
	App            adminsite.App
	Recent         []adminsite.LogEntry
	LogUnavailable bool
}

type handler struct {
	deps      Deps
	templates *web.TemplateSet
}

// NewModule creates the admin module configured for the given base path.
func NewModule(basePath string, deps Deps) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		[]web.ViewDef{indexView, appView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	h := &handler{deps: deps, templates: ts}
	m := module.New(basePath, h.routes())
	m.Use(noCache)
	return m, nil
}

func (h *handler) routes() http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.templates.ErrorHandler(layout, notFoundView, http.StatusNotFound, h.base()))
	r.HandleFunc("GET /{$}", h.index)
	r.HandleFunc("GET /{app}", h.app)
	return r
}

func (h *handler) base() pageData {
	return pageData{
		SiteHeader: h.deps.Site.Header(),
		SiteTitle:  h.deps.Site.Title(),
	}
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	data := h.base()
	data.Apps = h.deps.Site.Apps()

	recent, err := h.deps.Log.Recent(r.Context(), h.deps.RecentActions)
	if err != nil {
		h.deps.Logger.Warn("recent actions unavailable", "error", err)
		data.LogUnavailable = true
	}
	data.Recent = recent

	h.render(w, http.StatusOK, indexView, data)
}

func (h *handler) app(w http.ResponseWriter, r *http.Request) {
	data := h.base()

	app, err := h.deps.Site.App(r.PathValue("app"))
	if err != nil {
		if errors.Is(err, adminsite.ErrAppNotFound) {
			h.render(w, http.StatusNotFound, notFoundView, data)
			return
		}
		h.deps.Logger.Error("lookup app", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	data.App = app

	view := appView
	view.Title = app.Name + " administration"
	h.render(w, http.StatusOK, view, data)
}

func (h *handler) render(w http.ResponseWriter, status int, view web.ViewDef, data pageData) {
	err := h.templates.Render(w, status, layout, view, data)
	switch {
	case err == nil:
	case errors.Is(err, web.ErrWrite):
		h.deps.Logger.Warn("write admin view", "template", view.Template, "error", err)
	default:
		h.deps.Logger.Error("render admin view", "template", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// noCache keeps admin pages out of shared caches.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=0, no-cache, no-store, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}
