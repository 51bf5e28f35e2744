// Package database manages the PostgreSQL connection pool.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/mysite/pkg/lifecycle"
	"github.com/jackc/pgx/v5/pgxpool"
)

// System exposes the pool and its lifecycle.
type System interface {
	Pool() *pgxpool.Pool
	Ping(ctx context.Context) error
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	pool   *pgxpool.Pool
	cfg    *Config
	logger *slog.Logger
}

// New builds a lazily-connecting pool from cfg. No connection is made until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetimeDuration()
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnTimeoutDuration()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &database{
		pool:   pool,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Pool() *pgxpool.Pool {
	return d.pool
}

func (d *database) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// Start verifies connectivity within conn_timeout and closes the pool on shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s:%d/%s: %w", d.cfg.Host, d.cfg.Port, d.cfg.Name, err)
	}
	d.logger.Info("database connected", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.pool.Close()
		d.logger.Info("database pool closed")
	})

	return nil
}
