// Package state is the workspace-local key/value store backing sessions and
// record collections. It mirrors the storage contract of the browser
// front-end it replaced: namespaced keys, JSON values, synchronous
// last-write-wins semantics, and corrupt data treated as absent.
package state

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Namespaced keys. Key names are kept from the original deployment so an
// exported workspace file stays readable.
const (
	KeySession    = "zarbiti_user"
	KeyRedirect   = "post_login_redirect"
	KeyOrders     = "zarbiti_orders"
	KeyProduction = "zarbiti_production"
	KeyParcels    = "zarbiti_parcels"
	KeyPayments   = "zarbiti_payments"
)

// Store is the minimal key/value surface the session and record layers use.
type Store interface {
	// Get returns the raw JSON value for key, or ok=false if absent.
	Get(key string) (raw []byte, ok bool)
	// Set replaces the value for key.
	Set(key string, raw []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}

// FileStore persists the whole keyspace as one JSON file. Writers within
// the process are serialized; concurrent processes race with
// last-write-wins, which matches the accepted single-user model.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

// Open loads (or initializes) the store at path. A missing file starts
// empty; an unreadable or malformed file is logged and treated as empty
// rather than failing startup.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		slog.Warn("state file unreadable, starting empty", "path", path, "error", err)
		return s, nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		slog.Warn("state file corrupt, starting empty", "path", path, "error", err)
		s.values = make(map[string]json.RawMessage)
	}
	return s, nil
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.values[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

func (s *FileStore) Set(key string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = json.RawMessage(append([]byte(nil), raw...))
	return s.persistLocked()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.persistLocked()
}

func (s *FileStore) persistLocked() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// NewMemStore returns a memory-only store, used by tests.
func NewMemStore() *FileStore {
	return &FileStore{values: make(map[string]json.RawMessage)}
}
