package main

import (
	"fmt"

	"github.com/JaimeStill/mysite/internal/admin"
	"github.com/JaimeStill/mysite/internal/config"
	"github.com/JaimeStill/mysite/internal/infrastructure"
	"github.com/JaimeStill/mysite/pkg/logging"
	"github.com/JaimeStill/mysite/pkg/module"
	adminweb "github.com/JaimeStill/mysite/web/admin"
)

// Modules holds the mountable sub-applications of the site.
type Modules struct {
	Admin *module.Module
}

// defaultApps are registered with the admin site at startup.
var defaultApps = []admin.App{
	{
		Label: "auth",
		Name:  "Authentication and Authorization",
		Models: []admin.Model{
			{Name: "Group"},
			{Name: "User"},
		},
	},
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	site := admin.NewSite(&cfg.Admin)
	for _, app := range defaultApps {
		if err := site.Register(app); err != nil {
			return nil, fmt.Errorf("register admin app: %w", err)
		}
	}

	adminModule, err := adminweb.NewModule("/admin", adminweb.Deps{
		Site:          site,
		Log:           infra.LogStore(),
		RecentActions: cfg.Admin.RecentActionsLimit(),
		Logger:        logging.ForModule(infra.Logger, "admin"),
	})
	if err != nil {
		return nil, fmt.Errorf("admin module: %w", err)
	}

	return &Modules{Admin: adminModule}, nil
}
