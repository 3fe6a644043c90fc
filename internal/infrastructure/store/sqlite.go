package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// SQLiteHistoryStore persists history in a SQLite database instead of the
// JSON array. The contract is identical; responses are stored as a JSON
// column so candidate order and empty strings survive round-trips. When the
// database cannot be opened the store degrades to the JSON file next to it.
type SQLiteHistoryStore struct {
	db       *sql.DB
	path     string
	fallback *HistoryStore
	mu       sync.Mutex
}

// NewSQLiteHistoryStore creates (or opens) the per-user history.db database.
func NewSQLiteHistoryStore() *SQLiteHistoryStore {
	return NewSQLiteHistoryStoreAt(filepath.Join(Dir(), "history.db"))
}

// NewSQLiteHistoryStoreAt creates a store at an explicit path.
func NewSQLiteHistoryStoreAt(path string) *SQLiteHistoryStore {
	store := &SQLiteHistoryStore{
		path:     path,
		fallback: NewHistoryStoreAt(path + ".json"),
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return store
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		store.db = nil
	}
	return store
}

func (s *SQLiteHistoryStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prompt TEXT NOT NULL,
		responses TEXT NOT NULL
	);`)
	return err
}

// Entries returns all entries in append order.
func (s *SQLiteHistoryStore) Entries() []domain.HistoryEntry {
	if s.db == nil {
		return s.fallback.Entries()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT prompt, responses FROM history ORDER BY id ASC`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var encoded string
		if err := rows.Scan(&entry.Prompt, &encoded); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(encoded), &entry.Responses); err != nil {
			entry.Responses = nil
		}
		entries = append(entries, entry)
	}
	return entries
}

// Append inserts one entry.
func (s *SQLiteHistoryStore) Append(entry domain.HistoryEntry) error {
	if s.db == nil {
		return s.fallback.Append(entry)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.Marshal(entry.Responses)
	if err != nil {
		return &domain.PersistenceError{Path: s.path, Err: err}
	}
	if _, err := s.db.Exec(`INSERT INTO history (prompt, responses) VALUES (?, ?)`,
		entry.Prompt, string(encoded)); err != nil {
		return &domain.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Clear deletes all entries.
func (s *SQLiteHistoryStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM history`); err != nil {
		return &domain.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Path returns the database path.
func (s *SQLiteHistoryStore) Path() string {
	return s.path
}

var _ ports.HistoryStore = (*SQLiteHistoryStore)(nil)
