// Package nav builds the role-filtered navigation menu.
package nav

import (
	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/session"
)

type Entry struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

var home = Entry{Target: "/", Label: "Accueil"}

// roleEntries maps every role to its menu. Admin sees all feature pages
// plus user management; each other role exactly one page.
var roleEntries = map[directory.Role][]Entry{
	directory.RoleAdmin: {
		{Target: "/orders", Label: "Commandes"},
		{Target: "/production", Label: "Production"},
		{Target: "/parcels", Label: "Livraisons/Colis"},
		{Target: "/payments", Label: "Paiements & Crédits"},
		{Target: "/users", Label: "Utilisateurs"},
	},
	directory.RoleSales:        {{Target: "/orders", Label: "Commandes"}},
	directory.RoleConfirmation: {{Target: "/orders", Label: "Commandes"}},
	directory.RoleProduction:   {{Target: "/production", Label: "Production"}},
	directory.RoleDelivery:     {{Target: "/parcels", Label: "Livraisons/Colis"}},
	directory.RoleAccounting:   {{Target: "/payments", Label: "Paiements & Crédits"}},
}

// Render returns Home followed by the role's configured entries. A nil
// session or unknown role yields Home only.
func Render(s *session.Session) []Entry {
	entries := []Entry{home}
	if s == nil {
		return entries
	}
	return append(entries, roleEntries[s.Role]...)
}
