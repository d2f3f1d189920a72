// Package session persists sidebar state in SQLite.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	domain "github.com/tesso57/flank/internal/domain/session"
	_ "modernc.org/sqlite"
)

// Store saves panel state per profile.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("creating state dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load returns the saved state for profile. found is false when nothing
// was saved yet.
func (s *Store) Load(profile string) (domain.PanelState, bool, error) {
	st := domain.PanelState{Profile: profile}
	var left, right int
	var ts string
	err := s.db.QueryRow(`
		SELECT left_active, right_active, updated_at
		FROM panel_state
		WHERE profile = ?`, profile).Scan(&left, &right, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return st, false, nil
	}
	if err != nil {
		return st, false, fmt.Errorf("loading panel state: %w", err)
	}
	st.LeftActive = left != 0
	st.RightActive = right != 0
	st.UpdatedAt, _ = time.Parse(time.RFC3339Nano, ts)
	return st, true, nil
}

// Save upserts the state for st.Profile.
func (s *Store) Save(st domain.PanelState) error {
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO panel_state (profile, left_active, right_active, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET
			left_active = excluded.left_active,
			right_active = excluded.right_active,
			updated_at = excluded.updated_at`,
		st.Profile, boolToInt(st.LeftActive), boolToInt(st.RightActive),
		st.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving panel state: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
