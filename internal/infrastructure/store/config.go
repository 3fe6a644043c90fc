package store

import (
	"path/filepath"
	"sync"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// ConfigStore is the single writer of the config.json document.
type ConfigStore struct {
	path string
	mu   sync.Mutex
}

// NewConfigStore creates a store at the fixed per-user location.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{path: filepath.Join(Dir(), "config.json")}
}

// NewConfigStoreAt creates a store at an explicit path.
func NewConfigStoreAt(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Load returns the on-disk document, or the default document when the file
// is missing or unreadable.
func (s *ConfigStore) Load() domain.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := domain.DefaultConfig()
	var doc domain.Config
	if readJSON(s.path, &doc) {
		cfg = doc
		if cfg.Model == "" {
			cfg.Model = domain.DefaultConfig().Model
		}
	}
	return cfg
}

// Save rewrites the whole document.
func (s *ConfigStore) Save(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, cfg); err != nil {
		return &domain.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Path returns the backing file path.
func (s *ConfigStore) Path() string {
	return s.path
}

var _ ports.ConfigStore = (*ConfigStore)(nil)
