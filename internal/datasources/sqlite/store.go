// Package sqlite persists the preference profile in an embedded database:
// one JSON document per installation under a fixed storage key.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	_ "modernc.org/sqlite"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
)

var _ datasources.PreferenceStore = (*Store)(nil)

const storageKey = "userPrefs"

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	storage_key TEXT PRIMARY KEY,
	document    TEXT NOT NULL,
	updated_at  TIMESTAMP NOT NULL
)`

type Store struct {
	db *sql.DB
}

func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preferences DB: %w", err)
	}

	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent Save/Learn.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("checking preferences DB connection: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("creating preferences table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted profile, or the default profile when nothing
// has been saved yet.
func (s *Store) Load(ctx context.Context) (domain.UserPreferences, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("document").From("preferences")
	sb.Where(sb.Equal("storage_key", storageKey))

	query, args := sb.Build()

	var document string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("loading preferences: %w", err)
	}

	var profile domain.UserPreferences
	if err := json.Unmarshal([]byte(document), &profile); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("decoding stored preferences: %w", err)
	}

	return profile, nil
}

// Save overwrites the stored profile. A single UPSERT keeps the write atomic
// from the caller's perspective.
func (s *Store) Save(ctx context.Context, profile domain.UserPreferences) error {
	document, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	ib := sqlbuilder.SQLite.NewInsertBuilder()
	ib.InsertInto("preferences")
	ib.Cols("storage_key", "document", "updated_at")
	ib.Values(storageKey, string(document), time.Now().UTC())
	ib.SQL("ON CONFLICT(storage_key) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at")

	query, args := ib.Build()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}

	return nil
}
