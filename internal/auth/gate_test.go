package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/session"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func newGate() (*Gate, *session.Repository) {
	sessions := session.NewRepository(state.NewMemStore())
	return NewGate(directory.NewRegistry(directory.DefaultUsers), sessions), sessions
}

func TestLoginSuccess(t *testing.T) {
	gate, sessions := newGate()

	sess, err := gate.Login("admin", "1234")
	require.NoError(t, err)
	assert.Equal(t, directory.RoleAdmin, sess.Role)

	stored := sessions.Get()
	require.NotNil(t, stored)
	assert.Equal(t, "admin", stored.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	gate, sessions := newGate()

	_, err := gate.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, sessions.Get())
}

func TestLoginUnknownUser(t *testing.T) {
	gate, _ := newGate()

	_, err := gate.Login("nobody", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequireAuthAnyRole(t *testing.T) {
	gate, _ := newGate()
	_, err := gate.Login("vente", "1234")
	require.NoError(t, err)

	sess, redirect := gate.RequireAuth("/orders")
	require.Nil(t, redirect)
	assert.Equal(t, directory.RoleSales, sess.Role)
}

func TestRequireAuthRoleMismatchRedirects(t *testing.T) {
	gate, sessions := newGate()
	_, err := gate.Login("vente", "1234")
	require.NoError(t, err)

	sess, redirect := gate.RequireAuth("/users", directory.RoleAdmin)
	assert.Nil(t, sess)
	require.NotNil(t, redirect)
	assert.Equal(t, "/login?redirect=%2Fusers", redirect.To)
	assert.Equal(t, "/users", sessions.PendingRedirect())
}

func TestRequireAuthNoSessionRedirects(t *testing.T) {
	gate, sessions := newGate()

	sess, redirect := gate.RequireAuth("/orders")
	assert.Nil(t, sess)
	require.NotNil(t, redirect)
	assert.Equal(t, "/orders", sessions.PendingRedirect())
}

func TestResolvePostLoginRedirectPrefersStored(t *testing.T) {
	gate, sessions := newGate()
	sessions.SetPendingRedirect("/production")

	assert.Equal(t, "/production", gate.ResolvePostLoginRedirect("/orders"))
	// Consumed exactly once: the second resolution sees only the query
	// parameter.
	assert.Equal(t, "/orders", gate.ResolvePostLoginRedirect("/orders"))
}

func TestResolvePostLoginRedirectNone(t *testing.T) {
	gate, _ := newGate()
	assert.Equal(t, "", gate.ResolvePostLoginRedirect(""))
}

func TestLogoutClearsEverything(t *testing.T) {
	gate, sessions := newGate()
	_, err := gate.Login("admin", "1234")
	require.NoError(t, err)
	sessions.SetPendingRedirect("/orders")

	redirect := gate.Logout()
	assert.Equal(t, LoginPage, redirect.To)
	assert.Nil(t, sessions.Get())
	assert.Equal(t, "", sessions.PendingRedirect())
}
