package database_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/mysite/pkg/database"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &database.Config{Enabled: true, Name: "mysite", User: "mysite"}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want %q", cfg.Host, "localhost")
	}
	if cfg.Port != 5432 {
		t.Errorf("Port = %d, want %d", cfg.Port, 5432)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want %q", cfg.SSLMode, "disable")
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("ConnTimeoutDuration() = %v, want 5s", cfg.ConnTimeoutDuration())
	}
}

func TestConfig_Finalize_DisabledSkipsValidation(t *testing.T) {
	cfg := &database.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v, want nil for disabled database", err)
	}
}

func TestConfig_Finalize_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     database.Config
		wantErr string
	}{
		{"missing name", database.Config{Enabled: true, User: "u"}, "name required"},
		{"missing user", database.Config{Enabled: true, Name: "n"}, "user required"},
		{"bad lifetime", database.Config{Enabled: true, Name: "n", User: "u", ConnMaxLifetime: "forever"}, "conn_max_lifetime"},
		{"idle exceeds open", database.Config{Enabled: true, Name: "n", User: "u", MaxOpenConns: 2, MaxIdleConns: 4}, "max_idle_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Finalize() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_ENABLED", "true")
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6543")
	t.Setenv("TEST_DB_NAME", "site")
	t.Setenv("TEST_DB_USER", "admin")

	cfg := &database.Config{}
	env := &database.Env{
		Enabled: "TEST_DB_ENABLED",
		Host:    "TEST_DB_HOST",
		Port:    "TEST_DB_PORT",
		Name:    "TEST_DB_NAME",
		User:    "TEST_DB_USER",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled || cfg.Host != "db.internal" || cfg.Port != 6543 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}

	dsn := cfg.Dsn()
	for _, want := range []string{"postgres://", "@db.internal:6543/site", "admin", "sslmode=disable"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("Dsn() = %q missing %q", dsn, want)
		}
	}
}

func TestConfig_Dsn_EscapesValues(t *testing.T) {
	cfg := &database.Config{
		Host:     "db.internal",
		Port:     5432,
		Name:     "my site",
		User:     "site user",
		Password: "p@ss word'/?#=",
		SSLMode:  "require",
	}

	parsed, err := pgconn.ParseConfig(cfg.Dsn())
	if err != nil {
		t.Fatalf("ParseConfig(%q) error = %v", cfg.Dsn(), err)
	}

	if parsed.Host != cfg.Host || parsed.Port != uint16(cfg.Port) {
		t.Errorf("host = %s:%d, want %s:%d", parsed.Host, parsed.Port, cfg.Host, cfg.Port)
	}
	if parsed.Database != cfg.Name {
		t.Errorf("Database = %q, want %q", parsed.Database, cfg.Name)
	}
	if parsed.User != cfg.User {
		t.Errorf("User = %q, want %q", parsed.User, cfg.User)
	}
	if parsed.Password != cfg.Password {
		t.Errorf("Password = %q, want %q", parsed.Password, cfg.Password)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &database.Config{Host: "localhost", Port: 5432, Name: "base"}
	base.Merge(&database.Config{Enabled: true, Port: 5433})

	if !base.Enabled {
		t.Error("Enabled should merge")
	}
	if base.Port != 5433 {
		t.Errorf("Port = %d, want 5433", base.Port)
	}
	if base.Name != "base" {
		t.Errorf("Name = %q, want %q (should not change)", base.Name, "base")
	}
}
