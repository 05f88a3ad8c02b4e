// Package presets persists named filter-state snapshots in SQLite and
// exchanges them with the flat JSON preset files.
package presets

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"corpusdash/internal/filter"
	"corpusdash/internal/services"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Preset is a stored snapshot with its bookkeeping columns.
type Preset struct {
	Name      string
	Corpus    string
	State     filter.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store manages preset persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the preset database and applies
// migrations. The parent directory is created as needed.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure preset directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open preset db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) applyMigrations(ctx context.Context) error {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	sort.Strings(versions)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)"); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, name := range versions {
		version := strings.TrimSuffix(name, ".sql")
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = ?", version).Scan(&count); err != nil {
			return fmt.Errorf("scan migration version: %w", err)
		}
		if count > 0 {
			continue
		}
		data, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("record migration %s: %w", version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}
	return nil
}

// Save inserts or replaces a named preset.
func (s *Store) Save(ctx context.Context, name string, state filter.State) (*Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, services.Wrap(services.ErrValidation, "presets", "save", "preset name is required", nil)
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal filter state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO presets (name, corpus, state_json, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET
             corpus = excluded.corpus,
             state_json = excluded.state_json,
             updated_at = excluded.updated_at`,
		name, state.Corpus, string(payload), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("save preset %s: %w", name, err)
	}
	return s.Get(ctx, name)
}

// Get returns a preset by name.
func (s *Store) Get(ctx context.Context, name string) (*Preset, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT name, corpus, state_json, created_at, updated_at FROM presets WHERE name = ?", name)
	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "presets", "get",
			fmt.Sprintf("preset %q does not exist", name), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset %s: %w", name, err)
	}
	return preset, nil
}

// List returns all presets ordered by name.
func (s *Store) List(ctx context.Context) ([]*Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, corpus, state_json, created_at, updated_at FROM presets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []*Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}
	return presets, nil
}

// Delete removes a preset by name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete preset %s: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete preset %s: %w", name, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "presets", "delete",
			fmt.Sprintf("preset %q does not exist", name), nil)
	}
	return nil
}

// Export writes a stored preset to a flat JSON snapshot file, the same
// shape the filter save command produces.
func (s *Store) Export(ctx context.Context, name, path string) error {
	preset, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	return preset.State.SaveFile(path)
}

// Import stores a JSON snapshot file under the given name.
func (s *Store) Import(ctx context.Context, name, path string) (*Preset, error) {
	state, err := filter.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Save(ctx, name, state)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*Preset, error) {
	var (
		preset    Preset
		stateJSON string
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&preset.Name, &preset.Corpus, &stateJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(stateJSON), &preset.State); err != nil {
		return nil, fmt.Errorf("decode stored state: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		preset.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		preset.UpdatedAt = t
	}
	return &preset, nil
}
