package orders

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/auth"
	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/session"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewService(state.NewMemStore())

	order, err := svc.Create(FormInput{Client: "Aicha", Quantity: "", Price: "abc"})
	require.NoError(t, err)

	assert.Equal(t, 1, order.Quantity)
	assert.True(t, order.Price.Equal(decimal.Zero))
	assert.Equal(t, StatusNew, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.CreatedAt)
}

func TestCreateInsertsAtHead(t *testing.T) {
	svc := NewService(state.NewMemStore())

	first, err := svc.Create(FormInput{Client: "premier"})
	require.NoError(t, err)
	second, err := svc.Create(FormInput{Client: "second"})
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	svc := NewService(state.NewMemStore())

	order, err := svc.Create(FormInput{
		Client:   "Karim",
		Quantity: "3",
		Price:    "249.50",
		Status:   StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, order.Quantity)
	assert.True(t, order.Price.Equal(decimal.RequireFromString("249.50")))
	assert.Equal(t, StatusConfirmed, order.Status)
}

func TestFilterExactMatch(t *testing.T) {
	svc := NewService(state.NewMemStore())
	_, err := svc.Create(FormInput{Client: "a", Status: StatusDelivered})
	require.NoError(t, err)
	_, err = svc.Create(FormInput{Client: "b", Status: StatusNew})
	require.NoError(t, err)

	filtered := svc.Filter(StatusDelivered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Client)

	// Filtering is view-only.
	assert.Len(t, svc.List(), 2)
	assert.Len(t, svc.Filter(""), 2)
}

func TestClearRequiresConfirmation(t *testing.T) {
	svc := NewService(state.NewMemStore())
	_, err := svc.Create(FormInput{Client: "x"})
	require.NoError(t, err)

	done, err := svc.Clear(false)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Len(t, svc.List(), 1)

	done, err = svc.Clear(true)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, svc.List())
}

func TestStats(t *testing.T) {
	svc := NewService(state.NewMemStore())
	_, err := svc.Create(FormInput{Client: "a", Price: "100", Status: StatusDelivered})
	require.NoError(t, err)
	_, err = svc.Create(FormInput{Client: "b", Price: "50.25", Status: StatusDelivered})
	require.NoError(t, err)

	stats := svc.Stats(svc.List())
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[StatusDelivered])
	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("150.25")))
}

func TestLoadSurvivesCorruptCollection(t *testing.T) {
	store := state.NewMemStore()
	require.NoError(t, store.Set(state.KeyOrders, []byte("not json at all")))

	svc := NewService(store)
	assert.Empty(t, svc.List())
}

func newTestApp(store *state.FileStore) *fiber.App {
	sessions := session.NewRepository(store)
	gate := auth.NewGate(directory.NewRegistry(directory.DefaultUsers), sessions)
	deps := &modules.Deps{Store: store, Gate: gate, Currency: "MAD"}

	app := fiber.New()
	New().RegisterPages(app, deps)
	return app
}

func TestPageRedirectsWhenUnauthenticated(t *testing.T) {
	store := state.NewMemStore()
	app := newTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?redirect=%2Forders", resp.Header.Get("Location"))
}

func TestPageRendersForSalesRole(t *testing.T) {
	store := state.NewMemStore()
	sessions := session.NewRepository(store)
	require.NoError(t, sessions.Set(session.Session{Username: "vente", Name: "Vente", Role: directory.RoleSales}))
	app := newTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPageRejectsDeliveryRole(t *testing.T) {
	store := state.NewMemStore()
	sessions := session.NewRepository(store)
	require.NoError(t, sessions.Set(session.Session{Username: "livraison", Role: directory.RoleDelivery}))
	app := newTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}
