package module

import (
	"net/http"
	"path"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment and
// falls back to a native ServeMux for everything else.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a ServeMux pattern served outside any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount attaches a module at its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m
}

// ServeHTTP routes the request to the owning module, or to the native mux when no module
// claims the path's first segment. Module paths with dot-segments or repeated slashes are
// redirected to their cleaned form, so a module never receives an unclean path.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	p := normalizePath(req.URL.Path)
	clean := cleanPath(req.URL.Path)

	if m, ok := r.modules[extractPrefix(clean)]; ok {
		if clean != p {
			u := *req.URL
			u.Path = clean
			u.RawPath = ""
			http.Redirect(w, req, u.String(), http.StatusMovedPermanently)
			return
		}
		if p != req.URL.Path {
			req = req.Clone(req.Context())
			req.URL.Path = p
			req.URL.RawPath = ""
		}
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func normalizePath(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return strings.TrimSuffix(p, "/")
	}
	return p
}

// cleanPath resolves dot-segments and repeated slashes. The result has no trailing slash
// except for the root.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}

func extractPrefix(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	rest := path[1:]
	if i := strings.Index(rest, "/"); i >= 0 {
		return "/" + rest[:i]
	}
	return path
}
