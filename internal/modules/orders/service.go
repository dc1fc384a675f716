package orders

import (
	"github.com/shopspring/decimal"

	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/records"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

type Service struct {
	store state.Store
}

func NewService(store state.Store) *Service {
	return &Service{store: store}
}

// List returns the full collection, newest first.
func (s *Service) List() []Order {
	return records.Load(s.store, state.KeyOrders, []Order{})
}

// Filter returns only orders with exactly the given status; empty status
// means no filtering. View-only, the stored collection is untouched.
func (s *Service) Filter(status string) []Order {
	all := s.List()
	if status == "" {
		return all
	}
	out := make([]Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Create builds a record from the form, applying defaults for blank fields,
// inserts it at the head and persists the collection.
func (s *Service) Create(form FormInput) (Order, error) {
	order := Order{
		Base: records.Base{
			ID:        records.GenerateID(),
			CreatedAt: records.Now(),
			Status:    modules.OrDefault(form.Status, StatusNew),
		},
		Source:    form.Source,
		Client:    form.Client,
		Phone:     form.Phone,
		City:      form.City,
		Product:   form.Product,
		Dimension: form.Dimension,
		Quantity:  modules.ParseQuantity(form.Quantity),
		Price:     modules.ParseAmount(form.Price),
		Notes:     form.Notes,
	}

	updated := records.Prepend(s.List(), order)
	if err := records.Save(s.store, state.KeyOrders, updated); err != nil {
		return Order{}, err
	}
	return order, nil
}

// Clear empties the collection when confirmed. Without confirmation it is a
// no-op and reports false.
func (s *Service) Clear(confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := records.Save(s.store, state.KeyOrders, []Order{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Stats(all []Order) Stats {
	stats := Stats{ByStatus: make(map[string]int), Revenue: decimal.Zero}
	for _, o := range all {
		stats.Total++
		stats.ByStatus[o.Status]++
		stats.Revenue = stats.Revenue.Add(o.Price)
	}
	return stats
}

// ActivePipeline reports how many orders sit in the active status subset
// and their combined quantity. Used read-only by the production page.
func (s *Service) ActivePipeline() (count, quantity int) {
	for _, o := range s.List() {
		for _, status := range ActiveStatuses {
			if o.Status == status {
				count++
				quantity += o.Quantity
				break
			}
		}
	}
	return count, quantity
}
