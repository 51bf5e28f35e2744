package main

import (
	"net/http"

	"github.com/JaimeStill/mysite/internal/infrastructure"
	"github.com/JaimeStill/mysite/internal/site"
	"github.com/JaimeStill/mysite/internal/urls"
	"github.com/JaimeStill/mysite/pkg/handlers"
	"github.com/JaimeStill/mysite/pkg/lifecycle"
)

// buildTable declares the site routes followed by the operational endpoints.
func buildTable(infra *infrastructure.Infrastructure, modules *Modules) (*urls.Table, error) {
	routes := site.URLPatterns(modules.Admin)

	routes = append(routes, urls.Path("readyz", readinessHandler(infra.Lifecycle), "readyz"))

	if infra.Metrics != nil {
		routes = append(routes, urls.Path("metrics", infra.Metrics.Handler(), "metrics"))
	}

	return urls.New(routes...)
}

func readinessHandler(ready lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			handlers.RespondText(w, http.StatusServiceUnavailable, "NOT READY")
			return
		}
		handlers.RespondText(w, http.StatusOK, "READY")
	}
}
