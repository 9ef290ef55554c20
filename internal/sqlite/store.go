// Package sqlite implements the SQLite persistence backend for the Rolodex
// address book. The database file is the source of truth between runs; the
// address book lives fully in memory during a session and is written back
// whole on Save.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside the data directory.
const dbFileName = "rolodex.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store persists an AddressBook in a SQLite database.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open validates the config, creates the data directory if needed, opens
// the database file, and applies the schema. A missing database file is the
// expected first-run case: it is created empty.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Load rehydrates the full address book. A freshly created database yields
// an empty book, never an error.
func (s *Store) Load() (*types.AddressBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	snaps := make(map[string]*types.ContactSnapshot)

	rows, err := s.db.Query("SELECT contact_id, name, birthday FROM contacts")
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		var birthday sql.NullString
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		snap := &types.ContactSnapshot{Name: name}
		if birthday.Valid {
			snap.Birthday = birthday.String
		}
		snaps[id] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	phoneRows, err := s.db.Query("SELECT contact_id, number FROM phones ORDER BY contact_id, position")
	if err != nil {
		return nil, fmt.Errorf("query phones: %w", err)
	}
	defer phoneRows.Close()

	for phoneRows.Next() {
		var id, number string
		if err := phoneRows.Scan(&id, &number); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		if snap, ok := snaps[id]; ok {
			snap.Phones = append(snap.Phones, number)
		}
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate phones: %w", err)
	}

	all := make([]types.ContactSnapshot, 0, len(snaps))
	for _, snap := range snaps {
		all = append(all, *snap)
	}

	book, err := types.BookFromSnapshots(all)
	if err != nil {
		return nil, fmt.Errorf("rebuild address book: %w", err)
	}
	return book, nil
}

// Save persists the full address book in a single transaction, replacing
// any prior state. Contact IDs stay stable across saves for contacts whose
// name survives.
func (s *Store) Save(book *types.AddressBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}

	existing, err := s.contactIDsByName()
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}

	for _, snap := range book.Snapshot() {
		id, ok := existing[snap.Name]
		if !ok {
			id = newContactID()
		}

		var birthday any
		if snap.Birthday != "" {
			birthday = snap.Birthday
		}
		if _, err := tx.Exec(
			"INSERT INTO contacts (contact_id, name, birthday) VALUES (?, ?, ?)",
			id, snap.Name, birthday,
		); err != nil {
			return fmt.Errorf("insert contact %q: %w", snap.Name, err)
		}

		for pos, number := range snap.Phones {
			if _, err := tx.Exec(
				"INSERT INTO phones (contact_id, position, number) VALUES (?, ?, ?)",
				id, pos, number,
			); err != nil {
				return fmt.Errorf("insert phone for %q: %w", snap.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close releases the database handle. Idempotent; after Close, Load and
// Save return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		s.db = nil
	}
	return nil
}

// contactIDsByName returns the stored name-to-ID mapping. The caller must
// hold s.mu.
func (s *Store) contactIDsByName() (map[string]string, error) {
	rows, err := s.db.Query("SELECT name, contact_id FROM contacts")
	if err != nil {
		return nil, fmt.Errorf("query contact IDs: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]string)
	for rows.Next() {
		var name, id string
		if err := rows.Scan(&name, &id); err != nil {
			return nil, fmt.Errorf("scan contact ID: %w", err)
		}
		ids[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact IDs: %w", err)
	}
	return ids, nil
}

// newContactID generates a UUID v7 contact ID, falling back to v4 if v7
// generation fails.
func newContactID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
