// Package prefs stores durable user preferences in a SQLite key-value
// table. The only preference currently written is the UI theme flag.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// themeKey is the fixed key the theme flag is stored under.
const themeKey = "theme"

// Store is a SQLite-backed key-value store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the preferences database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// Get returns the value for key, reporting whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read pref %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes or replaces the value for key.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("write pref %q: %w", key, err)
	}
	return nil
}

// Theme returns the saved theme, defaulting to light.
func (s *Store) Theme() (string, error) {
	v, ok, err := s.Get(themeKey)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return ThemeLight, nil
	}
	return v, nil
}

// SetTheme saves the theme flag. Only light and dark are accepted.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme %q (use light or dark)", theme)
	}
	return s.Set(themeKey, theme)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
