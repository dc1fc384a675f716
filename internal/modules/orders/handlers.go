package orders

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/nav"
	"github.com/zarbiti/zarbiti-backend/internal/session"
)

const pagePath = "/orders"

type OrdersModule struct{}

func New() *OrdersModule {
	return &OrdersModule{}
}

func (m *OrdersModule) ID() string { return "orders" }

func (m *OrdersModule) AllowedRoles() []directory.Role {
	return []directory.Role{directory.RoleAdmin, directory.RoleSales, directory.RoleConfirmation}
}

func (m *OrdersModule) RegisterPages(router fiber.Router, deps *Deps) {
	h := newHandler(deps)
	router.Get(pagePath, h.page)
	router.Post(pagePath, h.create)
	router.Post(pagePath+"/clear", h.clear)
}

// Deps aliases the shared module dependencies.
type Deps = modules.Deps

type handler struct {
	deps    *Deps
	service *Service
}

func newHandler(deps *Deps) *handler {
	return &handler{deps: deps, service: NewService(deps.Store)}
}

// PageView is the rendered orders page.
type PageView struct {
	User     *session.Session `json:"user"`
	Nav      []nav.Entry      `json:"nav"`
	Statuses []string         `json:"statuses"`
	Filter   string           `json:"filter,omitempty"`
	Stats    Stats            `json:"stats"`
	Table    modules.Table    `json:"table"`
}

func (h *handler) page(c *fiber.Ctx) error {
	sess, redirect := h.deps.Gate.RequireAuth(pagePath, (&OrdersModule{}).AllowedRoles()...)
	if redirect != nil {
		return c.Redirect(redirect.To, fiber.StatusFound)
	}

	filter := c.Query("status")
	visible := h.service.Filter(filter)

	return c.JSON(PageView{
		User:     sess,
		Nav:      nav.Render(sess),
		Statuses: Statuses,
		Filter:   filter,
		Stats:    h.service.Stats(h.service.List()),
		Table:    h.renderTable(visible),
	})
}

func (h *handler) create(c *fiber.Ctx) error {
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&OrdersModule{}).AllowedRoles()...)
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
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&OrdersModule{}).AllowedRoles()...)
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

func (h *handler) renderTable(visible []Order) modules.Table {
	table := modules.Table{
		Columns: []string{"Date", "Source", "Client", "Téléphone", "Ville", "Produit", "Dimension", "Qté", "Prix", "Statut", "Notes"},
	}
	if len(visible) == 0 {
		table.Empty = "Aucune commande"
		return table
	}
	for _, o := range visible {
		table.Rows = append(table.Rows, []modules.Cell{
			modules.TextCell(format.FormatDateTime(o.CreatedAt)),
			modules.TextCell(o.Source),
			modules.TextCell(o.Client),
			modules.TextCell(o.Phone),
			modules.TextCell(o.City),
			modules.TextCell(o.Product),
			modules.TextCell(o.Dimension),
			modules.TextCell(strconv.Itoa(o.Quantity)),
			modules.TextCell(format.FormatCurrency(o.Price, h.deps.Currency)),
			modules.StatusCell(o.Status),
			modules.TextCell(o.Notes),
		})
	}
	return table
}
