package store

import (
	"path/filepath"
	"sync"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// HistoryStore keeps the append-only history.json array, most-recent-last
// on disk. Append is load-all, append, save-all; read-after-write is
// guaranteed within one process only.
type HistoryStore struct {
	path string
	mu   sync.Mutex
}

// NewHistoryStore creates a store at the fixed per-user location.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{path: filepath.Join(Dir(), "history.json")}
}

// NewHistoryStoreAt creates a store at an explicit path.
func NewHistoryStoreAt(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Entries returns all history entries in append order. Missing or corrupt
// files yield an empty sequence.
func (s *HistoryStore) Entries() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Append adds one entry and rewrites the whole array.
func (s *HistoryStore) Append(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.load(), entry)
	if err := writeJSON(s.path, entries); err != nil {
		return &domain.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Clear removes all entries.
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, []domain.HistoryEntry{}); err != nil {
		return &domain.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Path returns the backing file path.
func (s *HistoryStore) Path() string {
	return s.path
}

func (s *HistoryStore) load() []domain.HistoryEntry {
	var entries []domain.HistoryEntry
	readJSON(s.path, &entries)
	return entries
}

var _ ports.HistoryStore = (*HistoryStore)(nil)
