// Package payments is the payments & credits page.
package payments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/nav"
	"github.com/zarbiti/zarbiti-backend/internal/records"
	"github.com/zarbiti/zarbiti-backend/internal/session"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

const (
	pagePath = "/payments"

	DefaultStatus = "En attente"
)

type Payment struct {
	records.Base
	Customer string          `json:"customer"`
	Method   string          `json:"method"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

type FormInput struct {
	Customer string `json:"customer" form:"customer"`
	Method   string `json:"method" form:"method"`
	Amount   string `json:"amount" form:"amount"`
	Status   string `json:"status" form:"status"`
	Notes    string `json:"notes" form:"notes"`
}

type Stats struct {
	Total     int             `json:"total"`
	Amount    decimal.Decimal `json:"amount"`
	Collected decimal.Decimal `json:"collected"`
}

type Service struct {
	store state.Store
}

func NewService(store state.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() []Payment {
	return records.Load(s.store, state.KeyPayments, []Payment{})
}

func (s *Service) Create(form FormInput) (Payment, error) {
	payment := Payment{
		Base: records.Base{
			ID:        records.GenerateID(),
			CreatedAt: records.Now(),
			Status:    modules.OrDefault(form.Status, DefaultStatus),
		},
		Customer: form.Customer,
		Method:   form.Method,
		Amount:   modules.ParseAmount(form.Amount),
		Notes:    form.Notes,
	}

	updated := records.Prepend(s.List(), payment)
	if err := records.Save(s.store, state.KeyPayments, updated); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (s *Service) Clear(confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := records.Save(s.store, state.KeyPayments, []Payment{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Stats() Stats {
	stats := Stats{Amount: decimal.Zero, Collected: decimal.Zero}
	for _, p := range s.List() {
		stats.Total++
		stats.Amount = stats.Amount.Add(p.Amount)
		if format.ClassifyStatus(p.Status) == format.BadgeSuccess {
			stats.Collected = stats.Collected.Add(p.Amount)
		}
	}
	return stats
}

type PaymentsModule struct{}

func New() *PaymentsModule {
	return &PaymentsModule{}
}

func (m *PaymentsModule) ID() string { return "payments" }

func (m *PaymentsModule) AllowedRoles() []directory.Role {
	return []directory.Role{directory.RoleAdmin, directory.RoleAccounting}
}

func (m *PaymentsModule) RegisterPages(router fiber.Router, deps *modules.Deps) {
	h := &handler{deps: deps, service: NewService(deps.Store)}
	router.Get(pagePath, h.page)
	router.Post(pagePath, h.create)
	router.Post(pagePath+"/clear", h.clear)
}

type handler struct {
	deps    *modules.Deps
	service *Service
}

type PageView struct {
	User  *session.Session `json:"user"`
	Nav   []nav.Entry      `json:"nav"`
	Stats Stats            `json:"stats"`
	Table modules.Table    `json:"table"`
}

func (h *handler) page(c *fiber.Ctx) error {
	sess, redirect := h.deps.Gate.RequireAuth(pagePath, (&PaymentsModule{}).AllowedRoles()...)
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	return c.JSON(PageView{
		User:  sess,
		Nav:   nav.Render(sess),
		Stats: h.service.Stats(),
		Table: h.renderTable(h.service.List()),
	})
}

func (h *handler) create(c *fiber.Ctx) error {
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&PaymentsModule{}).AllowedRoles()...)
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	var form FormInput
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if _, err := h.service.Create(form); err != nil {
		return err
	}
	return c.Redirect(pagePath, fiber.StatusSeeOther)
}

func (h *handler) clear(c *fiber.Ctx) error {
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&PaymentsModule{}).AllowedRoles()...)
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	var req modules.ClearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if _, err := h.service.Clear(req.Confirmed); err != nil {
		return err
	}
	return c.Redirect(pagePath, fiber.StatusSeeOther)
}

func (h *handler) renderTable(payments []Payment) modules.Table {
	table := modules.Table{
		Columns: []string{"Date", "Client", "Méthode", "Montant", "Statut", "Notes"},
	}
	if len(payments) == 0 {
		table.Empty = "Aucun paiement"
		return table
	}
	for _, p := range payments {
		table.Rows = append(table.Rows, []modules.Cell{
			modules.TextCell(format.FormatDateTime(p.CreatedAt)),
			modules.TextCell(p.Customer),
			modules.TextCell(p.Method),
			modules.TextCell(format.FormatCurrency(p.Amount, h.deps.Currency)),
			modules.StatusCell(p.Status),
			modules.TextCell(p.Notes),
		})
	}
	return table
}
