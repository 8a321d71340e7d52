// Package sqlite provides a SQLite-backed save store. Snapshots are
// serialized as JSON blobs; the schema only lifts out the columns the
// save list needs.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/touchline/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/touchline/internal/storage"
	"github.com/louisbranch/touchline/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists careers in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite save store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put inserts or replaces one saved career.
func (s *Store) Put(ctx context.Context, save storage.Save) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(save.Name)
	if name == "" {
		return fmt.Errorf("save name is required")
	}

	snapshot, err := json.Marshal(save.State)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO saves (name, seed, week, season, scout_name, snapshot, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   seed = excluded.seed,
		   week = excluded.week,
		   season = excluded.season,
		   scout_name = excluded.scout_name,
		   snapshot = excluded.snapshot,
		   updated_at = excluded.updated_at`,
		name,
		save.Seed,
		save.State.Week,
		save.State.Season,
		save.State.Scout.Name,
		snapshot,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put save %s: %w", name, err)
	}
	return nil
}

// Get loads one saved career by name.
func (s *Store) Get(ctx context.Context, name string) (storage.Save, error) {
	if err := ctx.Err(); err != nil {
		return storage.Save{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Save{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT seed, snapshot FROM saves WHERE name = ?",
		strings.TrimSpace(name),
	)
	var (
		seed     int64
		snapshot []byte
	)
	if err := row.Scan(&seed, &snapshot); err != nil {
		if err == sql.ErrNoRows {
			return storage.Save{}, storage.ErrNotFound
		}
		return storage.Save{}, fmt.Errorf("get save %s: %w", name, err)
	}

	save := storage.Save{Name: strings.TrimSpace(name), Seed: seed}
	if err := json.Unmarshal(snapshot, &save.State); err != nil {
		return storage.Save{}, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return save, nil
}

// List returns metadata for every saved career, most recent first.
func (s *Store) List(ctx context.Context) ([]storage.SaveMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT name, seed, week, season, scout_name, updated_at FROM saves ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var metas []storage.SaveMeta
	for rows.Next() {
		var (
			meta      storage.SaveMeta
			updatedAt int64
		)
		if err := rows.Scan(&meta.Name, &meta.Seed, &meta.Week, &meta.Season, &meta.ScoutName, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan save row: %w", err)
		}
		meta.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		metas = append(metas, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate save rows: %w", err)
	}
	return metas, nil
}

// Delete removes one saved career. Deleting an unknown save returns
// ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	res, err := s.sqlDB.ExecContext(ctx, "DELETE FROM saves WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete save %s: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete save %s: %w", name, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

var _ storage.SaveStore = (*Store)(nil)
