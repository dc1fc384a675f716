// Package auth gates workspace pages on a valid session and role.
package auth

import (
	"errors"
	"net/url"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/session"
)

// ErrInvalidCredentials is returned on any login mismatch. It deliberately
// does not say which field was wrong.
var ErrInvalidCredentials = errors.New("identifiant ou mot de passe incorrect")

// LoginPage is the entry point unauthenticated visitors are sent to.
const LoginPage = "/login"

// Redirect is a navigation instruction. The gate never performs page
// transitions itself; handlers translate this into an HTTP redirect.
type Redirect struct {
	To string
}

// Gate validates credentials against the fixed directory and enforces
// role-based access on protected pages.
type Gate struct {
	users    *directory.Registry
	sessions *session.Repository
}

func NewGate(users *directory.Registry, sessions *session.Repository) *Gate {
	return &Gate{users: users, sessions: sessions}
}

// Login matches (username, password) exactly against the directory. On
// success the session is established and returned.
func (g *Gate) Login(username, password string) (*session.Session, error) {
	u, ok := g.users.Lookup(username, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	s := session.Session{Username: u.Username, Name: u.Name, Role: u.Role}
	if err := g.sessions.Set(s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Session returns the current session without any side effects, nil when
// not signed in.
func (g *Gate) Session() *session.Session {
	return g.sessions.Get()
}

// RequireAuth returns the current session when it exists and its role is in
// allowedRoles (an empty set admits any authenticated role). Otherwise it
// records page as the pending post-login target and returns a redirect to
// the login page carrying that target.
func (g *Gate) RequireAuth(page string, allowedRoles ...directory.Role) (*session.Session, *Redirect) {
	s := g.sessions.Get()
	if s != nil && roleAllowed(s.Role, allowedRoles) {
		return s, nil
	}
	g.sessions.SetPendingRedirect(page)
	return nil, &Redirect{To: LoginPage + "?redirect=" + url.QueryEscape(page)}
}

// ResolvePostLoginRedirect picks the page to land on after login. A stored
// pending target wins over the query parameter and is consumed on use.
func (g *Gate) ResolvePostLoginRedirect(queryTarget string) string {
	target := g.sessions.PendingRedirect()
	if target == "" {
		target = queryTarget
	}
	if target != "" {
		g.sessions.ClearPendingRedirect()
	}
	return target
}

// Logout clears the session and pending redirect and points the caller back
// at the entry page.
func (g *Gate) Logout() *Redirect {
	g.sessions.Clear()
	return &Redirect{To: LoginPage}
}

func roleAllowed(role directory.Role, allowed []directory.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
