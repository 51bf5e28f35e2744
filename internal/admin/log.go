package admin

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Action is the kind of change an admin log entry records.
type Action int16

const (
	ActionAddition Action = 1
	ActionChange   Action = 2
	ActionDeletion Action = 3
)

func (a Action) String() string {
	switch a {
	case ActionAddition:
		return "addition"
	case ActionChange:
		return "change"
	case ActionDeletion:
		return "deletion"
	}
	return fmt.Sprintf("action(%d)", int16(a))
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	return a >= ActionAddition && a <= ActionDeletion
}

// LogEntry is one recorded admin action.
type LogEntry struct {
	ID          uuid.UUID `db:"id"`
	ActionTime  time.Time `db:"action_time"`
	User        string    `db:"user_name"`
	ContentType string    `db:"content_type"`
	ObjectRepr  string    `db:"object_repr"`
	Action      Action    `db:"action"`
	Message     string    `db:"message"`
}

// LogStore persists and lists admin actions.
type LogStore interface {
	Recent(ctx context.Context, limit int) ([]LogEntry, error)
	Record(ctx context.Context, entry LogEntry) (LogEntry, error)
}

func prepare(entry LogEntry) (LogEntry, error) {
	if !entry.Action.Valid() {
		return LogEntry{}, fmt.Errorf("invalid action: %d", entry.Action)
	}
	if entry.ObjectRepr == "" {
		return LogEntry{}, fmt.Errorf("object_repr required")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.ActionTime.IsZero() {
		entry.ActionTime = time.Now().UTC()
	}
	return entry, nil
}

type memoryStore struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// NewMemoryStore returns a process-local LogStore, used when no database is configured.
func NewMemoryStore() LogStore {
	return &memoryStore{}
}

func (s *memoryStore) Recent(ctx context.Context, limit int) ([]LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.entries)
	slices.SortStableFunc(out, func(a, b LogEntry) int {
		return b.ActionTime.Compare(a.ActionTime)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) Record(ctx context.Context, entry LogEntry) (LogEntry, error) {
	entry, err := prepare(entry)
	if err != nil {
		return LogEntry{}, err
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return entry, nil
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresStore struct {
	db Querier
}

// NewPostgresStore returns a LogStore backed by the admin_log table.
// Recording an entry whose ID already exists is a no-op.
func NewPostgresStore(db Querier) LogStore {
	return &postgresStore{db: db}
}

const recentQuery = `
SELECT id, action_time, user_name, content_type, object_repr, action, message
FROM admin_log
ORDER BY action_time DESC
LIMIT $1`

const recordQuery = `
INSERT INTO admin_log (id, action_time, user_name, content_type, object_repr, action, message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

func (s *postgresStore) Recent(ctx context.Context, limit int) ([]LogEntry, error) {
	rows, err := s.db.Query(ctx, recentQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query admin log: %w", err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[LogEntry])
	if err != nil {
		return nil, fmt.Errorf("scan admin log: %w", err)
	}
	return entries, nil
}

func (s *postgresStore) Record(ctx context.Context, entry LogEntry) (LogEntry, error) {
	entry, err := prepare(entry)
	if err != nil {
		return LogEntry{}, err
	}

	_, err = s.db.Exec(ctx, recordQuery,
		entry.ID,
		entry.ActionTime,
		entry.User,
		entry.ContentType,
		entry.ObjectRepr,
		int16(entry.Action),
		entry.Message,
	)
	if err != nil {
		return LogEntry{}, fmt.Errorf("insert admin log: %w", err)
	}
	return entry, nil
}
