package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Role is the closed set of access levels. Wire values keep the French
// names used by the deployed application.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleSales        Role = "vente"
	RoleConfirmation Role = "confirmation"
	RoleProduction   Role = "usine"
	RoleDelivery     Role = "livraison"
	RoleAccounting   Role = "compta"
)

// AllRoles lists every valid role, in display order.
var AllRoles = []Role{
	RoleAdmin,
	RoleSales,
	RoleConfirmation,
	RoleProduction,
	RoleDelivery,
	RoleAccounting,
}

func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// User is a directory entry. The plaintext password is a demo/seed fixture
// only; the remote API stores bcrypt hashes (see services.AuthService).
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

type usersFile struct {
	Users []User `json:"users"`
}

// Registry holds the fixed user directory. Entries are seeded at startup
// and never created or edited at runtime.
type Registry struct {
	mu    sync.RWMutex
	users []User
}

// DefaultUsers is the embedded demo directory (password "1234" for all).
var DefaultUsers = []User{
	{Username: "admin", Password: "1234", Name: "Administrateur", Role: RoleAdmin},
	{Username: "vente", Password: "1234", Name: "Vente", Role: RoleSales},
	{Username: "confirmation", Password: "1234", Name: "Confirmation", Role: RoleConfirmation},
	{Username: "usine", Password: "1234", Name: "Production", Role: RoleProduction},
	{Username: "livraison", Password: "1234", Name: "Livraison", Role: RoleDelivery},
	{Username: "compta", Password: "1234", Name: "Comptabilité", Role: RoleAccounting},
}

func NewRegistry(users []User) *Registry {
	r := &Registry{users: make([]User, len(users))}
	copy(r.users, users)
	return r
}

// LoadFromFile reads a directory override file. An empty path returns the
// embedded defaults.
func LoadFromFile(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(DefaultUsers), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users config: %w", err)
	}

	var file usersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse users config: %w", err)
	}
	if len(file.Users) == 0 {
		return nil, fmt.Errorf("users config %s contains no users", path)
	}
	for _, u := range file.Users {
		if !u.Role.Valid() {
			return nil, fmt.Errorf("users config: unknown role %q for %q", u.Role, u.Username)
		}
	}

	return NewRegistry(file.Users), nil
}

// Lookup returns the entry matching both username and password exactly
// (case-sensitive). The boolean is false on any mismatch; callers must not
// reveal which field was wrong.
func (r *Registry) Lookup(username, password string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}

func (r *Registry) All() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}
