package config

import (
	"github.com/JaimeStill/mysite/pkg/database"
	"github.com/JaimeStill/mysite/pkg/logging"
	"github.com/JaimeStill/mysite/pkg/metrics"
	"github.com/JaimeStill/mysite/pkg/middleware"
)

var databaseEnv = &database.Env{
	Enabled:         "DATABASE_ENABLED",
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	SSLMode:         "DATABASE_SSL_MODE",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}

var metricsEnv = &metrics.Env{
	Enabled:   "METRICS_ENABLED",
	Namespace: "METRICS_NAMESPACE",
}
