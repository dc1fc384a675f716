// Package records persists each module's collection as one serialized list
// in the workspace state store, newest record first.
package records

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zarbiti/zarbiti-backend/internal/state"
)

// Base carries the fields every record shares. Both are assigned once at
// creation and never change.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"`
}

// Load deserializes the collection under key. Absent, unparseable or
// non-list values degrade to a copy of fallback with a warning; Load never
// fails the caller.
func Load[T any](store state.Store, key string, fallback []T) []T {
	raw, ok := store.Get(key)
	if !ok {
		return append([]T(nil), fallback...)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Warn("stored collection corrupt, using fallback", "key", key, "error", err)
		return append([]T(nil), fallback...)
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// Save serializes the full collection under key, replacing any prior value.
func Save[T any](store state.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", key, err)
	}
	return store.Set(key, raw)
}

// Prepend inserts item at the head so the default display order stays
// most-recent-first.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// GenerateID returns an opaque unique id: millisecond timestamp prefix for
// rough ordering plus a UUID fragment against collisions.
func GenerateID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Now returns the creation timestamp in the stored ISO-8601 form.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
