package main

import (
	"net/http"
	"time"

	"github.com/JaimeStill/mysite/internal/config"
	"github.com/JaimeStill/mysite/internal/infrastructure"
	"github.com/JaimeStill/mysite/internal/server"
	"github.com/JaimeStill/mysite/internal/urls"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	table   *urls.Table
	handler http.Handler
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	return newServer(cfg, infra)
}

func newServer(cfg *config.Config, infra *infrastructure.Infrastructure) (*Server, error) {
	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	table, err := buildTable(infra, modules)
	if err != nil {
		return nil, err
	}

	handler := buildMiddleware(infra, cfg, table).Apply(table)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"routes", len(table.Routes()),
	)

	return &Server{
		infra:   infra,
		table:   table,
		handler: handler,
		http:    server.New(&cfg.Server, cfg.ShutdownTimeoutDuration(), handler, infra.Logger),
	}, nil
}

// Start begins all subsystems and returns once the listener is bound.
// Readiness flips when every startup hook has completed.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
