// Package sqlite provides the SQLite-backed ports.ActorStore, one row per
// actor with the condition list stored as JSON text.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/store/sqlite/migrations"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

var (
	_ ports.ActorStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store persists actors in a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadAll returns every stored actor ordered by creation sequence.
func (s *Store) LoadAll(ctx context.Context) ([]actor.Actor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, initiative, active, selected, conditions, seq
		 FROM actors
		 ORDER BY seq, id`)
	if err != nil {
		return nil, classify(fmt.Errorf("query actors: %w", err))
	}
	defer rows.Close()

	var out []actor.Actor
	for rows.Next() {
		var (
			a          actor.Actor
			conditions string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Order, &a.Active, &a.Selected, &conditions, &a.Seq); err != nil {
			return nil, fmt.Errorf("scan actor: %w", err)
		}
		if err := json.Unmarshal([]byte(conditions), &a.Conditions); err != nil {
			return nil, fmt.Errorf("decode conditions of actor %s: %w", a.ID, err)
		}
		if a.Conditions == nil {
			a.Conditions = actor.Conditions{}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(fmt.Errorf("iterate actors: %w", err))
	}
	return out, nil
}

// Save inserts or replaces the record for a.ID.
func (s *Store) Save(ctx context.Context, a actor.Actor) error {
	if strings.TrimSpace(a.ID) == "" {
		return domain.NewValidationError("id", domain.MsgRequired)
	}

	conditions := a.Conditions
	if conditions == nil {
		conditions = actor.Conditions{}
	}
	encoded, err := json.Marshal(conditions)
	if err != nil {
		return fmt.Errorf("encode conditions of actor %s: %w", a.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO actors (id, title, initiative, active, selected, conditions, seq, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   initiative = excluded.initiative,
		   active = excluded.active,
		   selected = excluded.selected,
		   conditions = excluded.conditions,
		   seq = excluded.seq,
		   updated_at = excluded.updated_at`,
		a.ID, a.Title, a.Order, a.Active, a.Selected, string(encoded), a.Seq,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return classify(fmt.Errorf("save actor %s: %w", a.ID, err))
	}
	return nil
}

// Destroy deletes the record for id. Deleting an absent record succeeds.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM actors WHERE id = ?`, id); err != nil {
		return classify(fmt.Errorf("delete actor %s: %w", id, err))
	}
	return nil
}

// Name identifies the store in readiness output.
func (s *Store) Name() string {
	return "actor-store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// classify marks lock contention as domain.ErrUnavailable so callers can
// treat it as transient.
func classify(err error) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
	}
	return err
}
