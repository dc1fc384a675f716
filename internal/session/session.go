// Package session persists the single authenticated workspace session.
package session

import (
	"encoding/json"
	"log/slog"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

// Session is the matched directory entry of the signed-in user.
type Session struct {
	Username string         `json:"username"`
	Name     string         `json:"name"`
	Role     directory.Role `json:"role"`
}

// Repository owns the session and pending-redirect keys. At most one
// session exists per workspace.
type Repository struct {
	store state.Store
}

func NewRepository(store state.Store) *Repository {
	return &Repository{store: store}
}

// Get returns the current session, or nil if absent or corrupt. A malformed
// stored value is logged and treated as "not signed in", never surfaced.
func (r *Repository) Get() *Session {
	raw, ok := r.store.Get(state.KeySession)
	if !ok {
		return nil
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		slog.Warn("stored session corrupt, treating as absent", "error", err)
		return nil
	}
	if s.Username == "" {
		return nil
	}
	return &s
}

func (r *Repository) Set(s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.store.Set(state.KeySession, raw)
}

// Clear removes the session and any pending post-login redirect.
func (r *Repository) Clear() {
	if err := r.store.Delete(state.KeySession); err != nil {
		slog.Warn("failed to clear session", "error", err)
	}
	if err := r.store.Delete(state.KeyRedirect); err != nil {
		slog.Warn("failed to clear pending redirect", "error", err)
	}
}

// PendingRedirect returns the stored post-login target, or "".
func (r *Repository) PendingRedirect() string {
	raw, ok := r.store.Get(state.KeyRedirect)
	if !ok {
		return ""
	}
	var target string
	if err := json.Unmarshal(raw, &target); err != nil {
		return ""
	}
	return target
}

func (r *Repository) SetPendingRedirect(target string) {
	raw, _ := json.Marshal(target)
	if err := r.store.Set(state.KeyRedirect, raw); err != nil {
		slog.Warn("failed to store pending redirect", "target", target, "error", err)
	}
}

func (r *Repository) ClearPendingRedirect() {
	if err := r.store.Delete(state.KeyRedirect); err != nil {
		slog.Warn("failed to clear pending redirect", "error", err)
	}
}
