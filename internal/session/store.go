// Package session persists the prototype's single piece of durable state:
// a boolean authentication flag stored as one key-value pair, mirroring a
// browser-local storage entry. Any stored value other than the "1" sentinel,
// including absence or unreadable storage, reads as not authenticated.
package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	// SessionKey is the key under which the flag is persisted
	SessionKey = "session_key"

	authenticatedSentinel    = "1"
	notAuthenticatedSentinel = "0"
)

var ErrStorageUnavailable = errors.New("session storage unavailable")

// Store reads and writes the persisted authentication flag
type Store interface {
	IsAuthenticated() bool
	SetAuthenticated(authenticated bool) error
	Clear() error
}

// FileStore persists the flag to a small JSON file. Writes are atomic
// (temp file + rename) so a crash mid-write never corrupts the stored flag.
// If the file cannot be written the store degrades to in-memory-only state
// for the rest of the process lifetime.
type FileStore struct {
	mu       sync.RWMutex
	path     string
	cached   bool
	degraded bool
	logger   *slog.Logger
}

// NewFileStore creates a file-backed session store, reading any previously
// persisted flag at startup
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &FileStore{path: path, logger: logger}
	s.cached = s.readFlag()
	return s
}

// IsAuthenticated reports the session flag
func (s *FileStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

// SetAuthenticated writes the sentinel value for the given state
func (s *FileStore) SetAuthenticated(authenticated bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = authenticated
	if s.degraded {
		return nil
	}

	if err := s.writeFlag(authenticated); err != nil {
		s.degraded = true
		s.logger.Warn("session storage unavailable, falling back to in-memory session",
			"path", s.path,
			"error", err.Error(),
		)
		return nil
	}

	return nil
}

// Degraded reports whether the store has fallen back to in-memory-only state
func (s *FileStore) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Clear removes the persisted flag entirely; a cleared flag reads as false
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = false
	if s.degraded {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// readFlag loads the stored sentinel, treating every failure as "not authenticated"
func (s *FileStore) readFlag() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}

	var kv map[string]string
	if err := json.Unmarshal(data, &kv); err != nil {
		// Malformed stored state is conservatively treated as logged out
		return false
	}

	return kv[SessionKey] == authenticatedSentinel
}

// writeFlag persists the sentinel atomically: write a temp file, then rename
// it over the real one
func (s *FileStore) writeFlag(authenticated bool) error {
	value := notAuthenticatedSentinel
	if authenticated {
		value = authenticatedSentinel
	}

	data, err := json.MarshalIndent(map[string]string{SessionKey: value}, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// MemoryStore keeps the flag in process memory only. Used in tests and as
// the explicit degraded mode when no storage path is configured.
type MemoryStore struct {
	mu            sync.RWMutex
	authenticated bool
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// IsAuthenticated reports the session flag
func (s *MemoryStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetAuthenticated stores the flag
func (s *MemoryStore) SetAuthenticated(authenticated bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = authenticated
	return nil
}

// Clear resets the flag to not authenticated
func (s *MemoryStore) Clear() error {
	return s.SetAuthenticated(false)
}
