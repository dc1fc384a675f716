// Package modules defines the page-module contract shared by the four CRUD
// views (orders, production, parcels, payments).
package modules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zarbiti/zarbiti-backend/internal/auth"
	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

// Deps is what every page module gets wired with.
type Deps struct {
	Store    state.Store
	Gate     *auth.Gate
	Currency string
}

// Module is a role-gated page backed by one record collection.
type Module interface {
	// ID returns the module identifier, also its page path segment.
	ID() string

	// AllowedRoles lists the roles admitted to the page besides admin.
	AllowedRoles() []directory.Role

	// RegisterPages mounts the module's page routes on the given router.
	RegisterPages(router fiber.Router, deps *Deps)
}

// Cell is one rendered table cell: display text plus an optional status
// badge.
type Cell struct {
	Text  string       `json:"text"`
	Badge format.Badge `json:"badge,omitempty"`
}

// Table is the rendered list view. Empty carries the "no data" placeholder
// shown instead of rows.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
	Empty   string   `json:"empty,omitempty"`
}

func TextCell(text string) Cell {
	return Cell{Text: text}
}

func StatusCell(status string) Cell {
	return Cell{Text: status, Badge: format.ClassifyStatus(status)}
}
