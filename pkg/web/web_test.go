package web_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/mysite/pkg/web"
)

var testFS = fstest.MapFS{
	"layouts/base.html": {Data: []byte(
		`{{define "base.html"}}<title>{{.Title}}</title><a href="{{.BasePath}}/">home</a>{{template "content" .}}{{end}}`,
	)},
	"views/home.html": {Data: []byte(`{{define "content"}}<p>{{.Data}}</p>{{end}}`)},
	"views/404.html":  {Data: []byte(`{{define "content"}}<p>missing {{.Data}}</p>{{end}}`)},
}

var (
	homeView     = web.ViewDef{Template: "home.html", Title: "Home"}
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found"}
)

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "views", "/admin", []web.ViewDef{homeView, notFoundView})
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_MissingView(t *testing.T) {
	_, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "views", "", []web.ViewDef{{Template: "nope.html"}})
	if err == nil {
		t.Error("expected error for missing view template")
	}
}

func TestTemplateSet_Render(t *testing.T) {
	ts := newSet(t)
	w := httptest.NewRecorder()

	if err := ts.Render(w, http.StatusOK, "base.html", homeView, "<hello>"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<title>Home</title>", `href="/admin/"`, "&lt;hello&gt;"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
}

func TestTemplateSet_Render_UnknownView(t *testing.T) {
	ts := newSet(t)
	w := httptest.NewRecorder()

	if err := ts.Render(w, http.StatusOK, "base.html", web.ViewDef{Template: "other.html"}, nil); err == nil {
		t.Error("expected error for unregistered view")
	}
	if w.Body.Len() != 0 {
		t.Errorf("body written on failure: %q", w.Body.String())
	}
}

func TestRouter_Fallback(t *testing.T) {
	ts := newSet(t)
	r := web.NewRouter()
	r.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("home"))
	})
	r.SetFallback(ts.ErrorHandler("base.html", notFoundView, http.StatusNotFound, "page"))

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "home"},
		{"/missing", http.StatusNotFound, "missing page"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_NoFallback(t *testing.T) {
	r := web.NewRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	ts := newSet(t)
	r := web.NewRouter()
	r.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("home"))
	})
	r.SetFallback(ts.ErrorHandler("base.html", notFoundView, http.StatusNotFound, "page"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if allow := w.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
		t.Errorf("Allow = %q, want to contain GET", allow)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("unmatched path status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

// brokenWriter accepts the status line and fails every body write.
type brokenWriter struct {
	header       http.Header
	headerWrites int
}

func (w *brokenWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *brokenWriter) WriteHeader(int) { w.headerWrites++ }

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestTemplateSet_Render_WriteFailure(t *testing.T) {
	ts := newSet(t)
	w := &brokenWriter{}

	err := ts.Render(w, http.StatusOK, "base.html", homeView, "x")
	if !errors.Is(err, web.ErrWrite) {
		t.Fatalf("Render() error = %v, want ErrWrite", err)
	}
	if w.headerWrites != 1 {
		t.Errorf("WriteHeader called %d times, want 1", w.headerWrites)
	}
}

func TestTemplateSet_ErrorHandler_WriteFailure(t *testing.T) {
	ts := newSet(t)
	w := &brokenWriter{}

	ts.ErrorHandler("base.html", notFoundView, http.StatusNotFound, "page")(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.headerWrites != 1 {
		t.Errorf("WriteHeader called %d times, want 1", w.headerWrites)
	}
}
