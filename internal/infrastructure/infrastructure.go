// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, metrics) that modules require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/mysite/internal/admin"
	"github.com/JaimeStill/mysite/internal/config"
	"github.com/JaimeStill/mysite/pkg/database"
	"github.com/JaimeStill/mysite/pkg/lifecycle"
	"github.com/JaimeStill/mysite/pkg/logging"
	"github.com/JaimeStill/mysite/pkg/metrics"
)

// Infrastructure holds the core systems shared by all modules.
// Database is nil when disabled; Metrics is nil when metrics are off.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Metrics   *metrics.Recorder

	dsn string
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, logging.New(&cfg.Logging))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
	}

	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
		infra.dsn = cfg.Database.Dsn()
	}

	if cfg.Metrics.IsEnabled() {
		infra.Metrics = metrics.New(&cfg.Metrics)
	}

	return infra, nil
}

// Start connects the database, applies admin migrations, and registers shutdown hooks.
func (i *Infrastructure) Start() error {
	if i.Database == nil {
		i.Logger.Info("database disabled, admin log kept in memory")
		return nil
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := admin.Migrate(i.dsn, i.Logger); err != nil {
		return fmt.Errorf("admin migrations failed: %w", err)
	}
	return nil
}

// LogStore returns the admin log store backing the configured database.
func (i *Infrastructure) LogStore() admin.LogStore {
	if i.Database == nil {
		return admin.NewMemoryStore()
	}
	return admin.NewPostgresStore(i.Database.Pool())
}
