// Package production is the production-lot planning page. Besides its own
// collection it reads the orders collection read-only for the pipeline
// summary; it never writes orders.
package production

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/modules/orders"
	"github.com/zarbiti/zarbiti-backend/internal/nav"
	"github.com/zarbiti/zarbiti-backend/internal/records"
	"github.com/zarbiti/zarbiti-backend/internal/session"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

const (
	pagePath = "/production"

	// DefaultStatus is used for blank status fields; the field itself is
	// free-form.
	DefaultStatus = "Planifié"
)

// Lot is a production batch.
type Lot struct {
	records.Base
	Reference string `json:"reference"`
	Product   string `json:"product"`
	Deadline  string `json:"deadline"`
	Notes     string `json:"notes"`
}

type FormInput struct {
	Reference string `json:"reference" form:"reference"`
	Product   string `json:"product" form:"product"`
	Deadline  string `json:"deadline" form:"deadline"`
	Status    string `json:"status" form:"status"`
	Notes     string `json:"notes" form:"notes"`
}

// Stats combines the lot count with the read-only orders pipeline summary.
type Stats struct {
	Lots           int `json:"lots"`
	ActiveOrders   int `json:"active_orders"`
	ActiveQuantity int `json:"active_quantity"`
}

type Service struct {
	store  state.Store
	orders *orders.Service
}

func NewService(store state.Store) *Service {
	return &Service{store: store, orders: orders.NewService(store)}
}

func (s *Service) List() []Lot {
	return records.Load(s.store, state.KeyProduction, []Lot{})
}

func (s *Service) Create(form FormInput) (Lot, error) {
	lot := Lot{
		Base: records.Base{
			ID:        records.GenerateID(),
			CreatedAt: records.Now(),
			Status:    modules.OrDefault(form.Status, DefaultStatus),
		},
		Reference: form.Reference,
		Product:   form.Product,
		Deadline:  form.Deadline,
		Notes:     form.Notes,
	}

	updated := records.Prepend(s.List(), lot)
	if err := records.Save(s.store, state.KeyProduction, updated); err != nil {
		return Lot{}, err
	}
	return lot, nil
}

func (s *Service) Clear(confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := records.Save(s.store, state.KeyProduction, []Lot{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Stats() Stats {
	count, quantity := s.orders.ActivePipeline()
	return Stats{
		Lots:           len(s.List()),
		ActiveOrders:   count,
		ActiveQuantity: quantity,
	}
}

type ProductionModule struct{}

func New() *ProductionModule {
	return &ProductionModule{}
}

func (m *ProductionModule) ID() string { return "production" }

func (m *ProductionModule) AllowedRoles() []directory.Role {
	return []directory.Role{directory.RoleAdmin, directory.RoleProduction}
}

func (m *ProductionModule) RegisterPages(router fiber.Router, deps *modules.Deps) {
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
	sess, redirect := h.deps.Gate.RequireAuth(pagePath, (&ProductionModule{}).AllowedRoles()...)
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	return c.JSON(PageView{
		User:  sess,
		Nav:   nav.Render(sess),
		Stats: h.service.Stats(),
		Table: renderTable(h.service.List()),
	})
}

func (h *handler) create(c *fiber.Ctx) error {
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&ProductionModule{}).AllowedRoles()...)
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
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&ProductionModule{}).AllowedRoles()...)
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

func renderTable(lots []Lot) modules.Table {
	table := modules.Table{
		Columns: []string{"Date", "Référence", "Produit", "Échéance", "Statut", "Notes"},
	}
	if len(lots) == 0 {
		table.Empty = "Aucun lot de production"
		return table
	}
	for _, lot := range lots {
		table.Rows = append(table.Rows, []modules.Cell{
			modules.TextCell(format.FormatDateTime(lot.CreatedAt)),
			modules.TextCell(lot.Reference),
			modules.TextCell(lot.Product),
			modules.TextCell(format.FormatDate(lot.Deadline)),
			modules.StatusCell(lot.Status),
			modules.TextCell(lot.Notes),
		})
	}
	return table
}
