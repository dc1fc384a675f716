package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	_, ok := s.Get("k")
	assert.False(t, ok)

	require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
	raw, ok := s.Get("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	require.NoError(t, s.Delete("k"))
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	s := NewMemStore()
	assert.NoError(t, s.Delete("missing"))
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyOrders, []byte(`[{"id":"x"}]`)))

	reopened, err := Open(path)
	require.NoError(t, err)
	raw, ok := reopened.Get(KeyOrders)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"x"}]`, string(raw))
}

func TestOpenCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	require.NoError(t, os.WriteFile(path, []byte("definitely not json"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	_, ok := s.Get(KeyOrders)
	assert.False(t, ok)
}
