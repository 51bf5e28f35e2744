package web

import "net/http"

// Router is a ServeMux with a replaceable not-found handler.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates a router that answers unmatched requests with http.NotFound.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback replaces the handler used when no pattern matches the path.
// Paths registered under other methods still get the mux's 405 response.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil && !r.matchesPath(req) {
		r.fallback(w, req)
		return
	}
	r.mux.ServeHTTP(w, req)
}

var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// matchesPath reports whether any registered pattern matches the request path,
// regardless of the request method.
func (r *Router) matchesPath(req *http.Request) bool {
	if _, pattern := r.mux.Handler(req); pattern != "" {
		return true
	}
	for _, m := range knownMethods {
		if m == req.Method {
			continue
		}
		alt := req.Clone(req.Context())
		alt.Method = m
		if _, pattern := r.mux.Handler(alt); pattern != "" {
			return true
		}
	}
	return false
}
