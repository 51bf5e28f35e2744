package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/JaimeStill/mysite/internal/admin"
)

//go:embed data/admin_log.json
var adminLogSeed []byte

func init() {
	registerSeeder(&AdminLogSeeder{})
}

// AdminLogSeedData is the JSON layout of admin log seed files.
type AdminLogSeedData struct {
	Entries []admin.LogEntry `json:"entries"`
}

// AdminLogSeeder records admin log entries from the embedded seed file or an external one.
type AdminLogSeeder struct {
	file string
}

func (s *AdminLogSeeder) Name() string {
	return "admin-log"
}

func (s *AdminLogSeeder) Description() string {
	return "Seeds the admin recent actions log"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *AdminLogSeeder) SetFile(path string) {
	s.file = path
}

// Seed records every entry. Entries with fixed IDs are skipped when already present.
func (s *AdminLogSeeder) Seed(ctx context.Context, tx pgx.Tx) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	store := admin.NewPostgresStore(tx)
	for i, entry := range data.Entries {
		if _, err := store.Record(ctx, entry); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entry.ObjectRepr, err)
		}
	}

	fmt.Printf("  admin-log: %d entries\n", len(data.Entries))
	return nil
}

func (s *AdminLogSeeder) load() (*AdminLogSeedData, error) {
	raw := adminLogSeed
	if s.file != "" {
		b, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var data AdminLogSeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
