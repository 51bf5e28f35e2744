package main

import (
	"net/http"

	"github.com/JaimeStill/mysite/internal/config"
	"github.com/JaimeStill/mysite/internal/infrastructure"
	"github.com/JaimeStill/mysite/internal/urls"
	"github.com/JaimeStill/mysite/pkg/middleware"
)

// buildMiddleware creates the global middleware stack. Metrics label requests by route name
// so unmatched paths share one series.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config, table *urls.Table) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(middleware.Logger(infra.Logger))
	sys.Use(middleware.CORS(&cfg.CORS))

	if infra.Metrics != nil {
		sys.Use(infra.Metrics.Middleware(func(r *http.Request) string {
			if route, ok := table.Resolve(r.URL.Path); ok && route.Name != "" {
				return route.Name
			}
			return "unmatched"
		}))
	}

	return sys
}
