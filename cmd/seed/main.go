package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JaimeStill/mysite/internal/admin"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection string")
		all     = flag.Bool("all", false, "Run all seeders")
		name    = flag.String("seeder", "", "Run a single seeder by name")
		file    = flag.String("file", "", "External seed file for -seeder admin-log (overrides embedded)")
		list    = flag.Bool("list", false, "List available seeders")
		migrate = flag.Bool("migrate", true, "Apply admin schema migrations before seeding")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	var run []Seeder
	switch {
	case *all:
		run = listSeeders()
	case *name != "":
		s, ok := getSeeder(*name)
		if !ok {
			log.Fatalf("seeder not found: %s", *name)
		}
		if *file != "" {
			if fs, ok := s.(interface{ SetFile(string) }); ok {
				fs.SetFile(*file)
			}
		}
		run = []Seeder{s}
	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-seeder <name>] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	ctx := context.Background()

	if *migrate {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := admin.Migrate(*dsn, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	pool, err := pgxpool.New(ctx, *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := runSeeders(ctx, pool, run); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Println("seeding completed successfully")
}
