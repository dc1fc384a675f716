package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func TestGetAbsent(t *testing.T) {
	repo := NewRepository(state.NewMemStore())
	assert.Nil(t, repo.Get())
}

func TestGetCorruptTreatedAsAbsent(t *testing.T) {
	store := state.NewMemStore()
	require.NoError(t, store.Set(state.KeySession, []byte("{{{")))

	repo := NewRepository(store)
	assert.Nil(t, repo.Get())
}

func TestSetGetRoundTrip(t *testing.T) {
	repo := NewRepository(state.NewMemStore())
	require.NoError(t, repo.Set(Session{Username: "usine", Name: "Production", Role: directory.RoleProduction}))

	got := repo.Get()
	require.NotNil(t, got)
	assert.Equal(t, "usine", got.Username)
	assert.Equal(t, directory.RoleProduction, got.Role)
}

func TestClearRemovesSessionAndRedirect(t *testing.T) {
	repo := NewRepository(state.NewMemStore())
	require.NoError(t, repo.Set(Session{Username: "admin", Role: directory.RoleAdmin}))
	repo.SetPendingRedirect("/orders")

	repo.Clear()
	assert.Nil(t, repo.Get())
	assert.Equal(t, "", repo.PendingRedirect())
}
