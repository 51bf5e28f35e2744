package urls

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/JaimeStill/mysite/pkg/module"
)

// Table is the resolved URL configuration. It is safe for concurrent use and never
// changes after New returns.
type Table struct {
	routes  []Route
	names   map[string]int
	handler http.Handler
}

// New validates routes and builds the table and its HTTP router.
// The input slice is copied; later changes to it have no effect.
func New(routes ...Route) (*Table, error) {
	t := &Table{
		routes: slices.Clone(routes),
		names:  make(map[string]int, len(routes)),
	}

	for i, r := range t.routes {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}

		if r.Name != "" {
			if prev, ok := t.names[r.Name]; ok {
				return nil, fmt.Errorf("%w: %q used by routes %d and %d", ErrDuplicateName, r.Name, prev, i)
			}
			t.names[r.Name] = i
		}

		for j := range i {
			if overlaps(t.routes[j], r) {
				return nil, fmt.Errorf("%w: %s %q overlaps %s %q",
					ErrAmbiguousRoute, r.Kind, r.Pattern, t.routes[j].Kind, t.routes[j].Pattern)
			}
		}
	}

	t.handler = t.build()
	return t, nil
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	return slices.Clone(t.routes)
}

// Resolve returns the first route, in declaration order, matching path.
func (t *Table) Resolve(path string) (Route, bool) {
	for _, r := range t.routes {
		if r.matches(path) {
			return r, true
		}
	}
	return Route{}, false
}

// Reverse returns the URL of the route registered under name.
func (t *Table) Reverse(name string) (string, error) {
	i, ok := t.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoReverseMatch, name)
	}
	return t.routes[i].URL(), nil
}

// Handler returns the router built from the table.
func (t *Table) Handler() http.Handler {
	return t.handler
}

func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t.handler.ServeHTTP(w, r)
}

// build maps includes onto module mounts and exact routes onto anchored native
// patterns. Because New rejects overlapping routes, the router's prefix-then-native
// dispatch selects the same route Resolve would.
func (t *Table) build() http.Handler {
	router := module.NewRouter()

	for _, r := range t.routes {
		switch r.Kind {
		case KindInclude:
			router.Mount(r.Module)
		case KindExact:
			router.HandleNative(nativePattern(r.URL()), r.Handler.ServeHTTP)
		}
	}

	return router
}

// nativePattern anchors paths ending in a slash so ServeMux does not treat them as subtrees.
func nativePattern(url string) string {
	if url[len(url)-1] == '/' {
		return url + "{$}"
	}
	return url
}
