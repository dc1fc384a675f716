package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zarbiti/zarbiti-backend/internal/auth"
	"github.com/zarbiti/zarbiti-backend/internal/dashboard"
	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/dto"
	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/nav"
	"github.com/zarbiti/zarbiti-backend/internal/session"
)

// WorkspaceHandler serves the non-module pages: login, logout, home
// dashboard and the admin user directory.
type WorkspaceHandler struct {
	gate       *auth.Gate
	users      *directory.Registry
	aggregator *dashboard.Aggregator
	currency   string
}

func NewWorkspaceHandler(gate *auth.Gate, users *directory.Registry, aggregator *dashboard.Aggregator, currency string) *WorkspaceHandler {
	return &WorkspaceHandler{gate: gate, users: users, aggregator: aggregator, currency: currency}
}

type loginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type loginView struct {
	User *session.Session `json:"user,omitempty"`
	Nav  []nav.Entry      `json:"nav,omitempty"`
}

// LoginPage shows the entry page. An already signed-in visitor with a
// pending redirect is sent straight through.
func (h *WorkspaceHandler) LoginPage(c *fiber.Ctx) error {
	sess := h.gate.Session()
	if sess == nil {
		return c.JSON(loginView{})
	}
	if target := h.gate.ResolvePostLoginRedirect(c.Query("redirect")); target != "" {
		return c.Redirect(target, fiber.StatusFound)
	}
	return c.JSON(loginView{User: sess, Nav: nav.Render(sess)})
}

// Login validates credentials and consumes the post-login redirect target
// (stored target wins over the query parameter) exactly once.
func (h *WorkspaceHandler) Login(c *fiber.Ctx) error {
	var form loginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	_, err := h.gate.Login(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	target := h.gate.ResolvePostLoginRedirect(c.Query("redirect"))
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *WorkspaceHandler) Logout(c *fiber.Ctx) error {
	redirect := h.gate.Logout()
	return c.Redirect(redirect.To, fiber.StatusSeeOther)
}

type homeView struct {
	User         *session.Session  `json:"user"`
	Nav          []nav.Entry       `json:"nav"`
	Summary      dashboard.Summary `json:"summary"`
	TotalDisplay string            `json:"total_display"`
}

// Home is the dashboard, open to any authenticated role.
func (h *WorkspaceHandler) Home(c *fiber.Ctx) error {
	sess, redirect := h.gate.RequireAuth("/")
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	summary := h.aggregator.Summarize()
	return c.JSON(homeView{
		User:         sess,
		Nav:          nav.Render(sess),
		Summary:      summary,
		TotalDisplay: format.FormatCurrency(summary.TotalPayments, h.currency),
	})
}

type directoryEntry struct {
	Username string         `json:"username"`
	Name     string         `json:"name"`
	Role     directory.Role `json:"role"`
}

// Users is the admin-only directory page. Passwords never leave the
// registry.
func (h *WorkspaceHandler) Users(c *fiber.Ctx) error {
	sess, redirect := h.gate.RequireAuth("/users", directory.RoleAdmin)
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	entries := make([]directoryEntry, 0)
	for _, u := range h.users.All() {
		entries = append(entries, directoryEntry{Username: u.Username, Name: u.Name, Role: u.Role})
	}
	return c.JSON(fiber.Map{
		"user":  sess,
		"nav":   nav.Render(sess),
		"users": entries,
	})
}
