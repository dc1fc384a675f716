// Package parcels is the delivery/parcel tracking page.
package parcels

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/nav"
	"github.com/zarbiti/zarbiti-backend/internal/records"
	"github.com/zarbiti/zarbiti-backend/internal/session"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

const (
	pagePath = "/parcels"

	DefaultStatus = "Préparé"
)

// Parcel links back to an order by reference only; there is no referential
// integrity between collections.
type Parcel struct {
	records.Base
	OrderRef string `json:"orderRef"`
	Carrier  string `json:"carrier"`
	City     string `json:"city"`
	Tracking string `json:"tracking"`
}

type FormInput struct {
	OrderRef string `json:"orderRef" form:"orderRef"`
	Carrier  string `json:"carrier" form:"carrier"`
	City     string `json:"city" form:"city"`
	Tracking string `json:"tracking" form:"tracking"`
	Status   string `json:"status" form:"status"`
}

type Stats struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
}

type Service struct {
	store state.Store
}

func NewService(store state.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() []Parcel {
	return records.Load(s.store, state.KeyParcels, []Parcel{})
}

func (s *Service) Create(form FormInput) (Parcel, error) {
	parcel := Parcel{
		Base: records.Base{
			ID:        records.GenerateID(),
			CreatedAt: records.Now(),
			Status:    modules.OrDefault(form.Status, DefaultStatus),
		},
		OrderRef: form.OrderRef,
		Carrier:  form.Carrier,
		City:     form.City,
		Tracking: form.Tracking,
	}

	updated := records.Prepend(s.List(), parcel)
	if err := records.Save(s.store, state.KeyParcels, updated); err != nil {
		return Parcel{}, err
	}
	return parcel, nil
}

func (s *Service) Clear(confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := records.Save(s.store, state.KeyParcels, []Parcel{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Stats() Stats {
	stats := Stats{}
	for _, p := range s.List() {
		stats.Total++
		if format.ClassifyStatus(p.Status) == format.BadgeSuccess {
			stats.Delivered++
		}
	}
	return stats
}

type ParcelsModule struct{}

func New() *ParcelsModule {
	return &ParcelsModule{}
}

func (m *ParcelsModule) ID() string { return "parcels" }

func (m *ParcelsModule) AllowedRoles() []directory.Role {
	return []directory.Role{directory.RoleAdmin, directory.RoleDelivery}
}

func (m *ParcelsModule) RegisterPages(router fiber.Router, deps *modules.Deps) {
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
	sess, redirect := h.deps.Gate.RequireAuth(pagePath, (&ParcelsModule{}).AllowedRoles()...)
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
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&ParcelsModule{}).AllowedRoles()...)
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
	_, redirect := h.deps.Gate.RequireAuth(pagePath, (&ParcelsModule{}).AllowedRoles()...)
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

func renderTable(parcels []Parcel) modules.Table {
	table := modules.Table{
		Columns: []string{"Date", "Commande", "Transporteur", "Ville", "Suivi", "Statut"},
	}
	if len(parcels) == 0 {
		table.Empty = "Aucun colis"
		return table
	}
	for _, p := range parcels {
		table.Rows = append(table.Rows, []modules.Cell{
			modules.TextCell(format.FormatDateTime(p.CreatedAt)),
			modules.TextCell(p.OrderRef),
			modules.TextCell(p.Carrier),
			modules.TextCell(p.City),
			modules.TextCell(p.Tracking),
			modules.StatusCell(p.Status),
		})
	}
	return table
}
