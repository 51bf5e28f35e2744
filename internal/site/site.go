// Package site declares the project's URL patterns and its root view.
package site

import (
	"net/http"

	"github.com/JaimeStill/mysite/internal/urls"
	"github.com/JaimeStill/mysite/pkg/handlers"
	"github.com/JaimeStill/mysite/pkg/module"
)

// IndexBody is the literal served at the site root. It is product-facing; keep it verbatim.
const IndexBody = "OK: Django is running"

// IndexName is the route name of the site root.
const IndexName = "index"

// Index answers every request with 200 and IndexBody.
func Index(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, IndexBody)
}

// URLPatterns returns the site's routes in resolution order.
func URLPatterns(admin *module.Module) []urls.Route {
	return []urls.Route{
		urls.Include("admin/", admin),
		urls.Path("", http.HandlerFunc(Index), IndexName),
	}
}
