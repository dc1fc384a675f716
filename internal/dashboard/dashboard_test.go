package dashboard

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/modules/orders"
	"github.com/zarbiti/zarbiti-backend/internal/modules/parcels"
	"github.com/zarbiti/zarbiti-backend/internal/modules/payments"
	"github.com/zarbiti/zarbiti-backend/internal/modules/production"
	"github.com/zarbiti/zarbiti-backend/internal/records"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func stamp(hour int) string {
	return fmt.Sprintf("2026-03-15T%02d:00:00Z", hour)
}

func seed(t *testing.T, store state.Store) {
	t.Helper()

	orderList := []orders.Order{
		{Base: records.Base{ID: "o3", CreatedAt: stamp(23), Status: "Livrée"}, Client: "c3"},
		{Base: records.Base{ID: "o2", CreatedAt: stamp(20), Status: "Nouvelle"}, Client: "c2"},
		{Base: records.Base{ID: "o1", CreatedAt: stamp(17), Status: "Annulée"}, Client: "c1"},
	}
	require.NoError(t, records.Save(store, state.KeyOrders, orderList))

	lotList := []production.Lot{
		{Base: records.Base{ID: "l2", CreatedAt: stamp(22), Status: "Planifié"}, Reference: "LOT-2"},
		{Base: records.Base{ID: "l1", CreatedAt: stamp(16), Status: "Terminé"}, Reference: "LOT-1"},
	}
	require.NoError(t, records.Save(store, state.KeyProduction, lotList))

	parcelList := []parcels.Parcel{
		{Base: records.Base{ID: "p2", CreatedAt: stamp(21), Status: "Livré"}, OrderRef: "o1"},
		{Base: records.Base{ID: "p1", CreatedAt: stamp(15), Status: "Préparé"}, OrderRef: "o2"},
	}
	require.NoError(t, records.Save(store, state.KeyParcels, parcelList))

	paymentList := []payments.Payment{
		{Base: records.Base{ID: "m2", CreatedAt: stamp(19), Status: "Payé"}, Customer: "c1", Amount: decimal.NewFromInt(120)},
		{Base: records.Base{ID: "m1", CreatedAt: stamp(18), Status: "En attente"}, Customer: "c2", Amount: decimal.NewFromInt(80)},
	}
	require.NoError(t, records.Save(store, state.KeyPayments, paymentList))
}

func TestSummarizeCountsAndTotals(t *testing.T) {
	store := state.NewMemStore()
	seed(t, store)

	summary := NewAggregator(store).Summarize()
	assert.Equal(t, 3, summary.Counts.Orders)
	assert.Equal(t, 2, summary.Counts.Production)
	assert.Equal(t, 2, summary.Counts.Parcels)
	assert.Equal(t, 2, summary.Counts.Payments)
	assert.True(t, summary.TotalPayments.Equal(decimal.NewFromInt(200)))
}

func TestFeedSortedDescendingCappedAtSix(t *testing.T) {
	store := state.NewMemStore()
	seed(t, store)

	summary := NewAggregator(store).Summarize()
	// 9 qualifying records, capped at 6.
	require.Len(t, summary.Feed, 6)
	assert.Empty(t, summary.FeedEmpty)

	for i := 1; i < len(summary.Feed); i++ {
		assert.Greater(t, summary.Feed[i-1].Timestamp, summary.Feed[i].Timestamp)
	}
	// Newest overall entry is the 23:00 order.
	assert.Equal(t, stamp(23), summary.Feed[0].Timestamp)
	// Oldest surviving entry is the 6th newest (18:00 payment).
	assert.Equal(t, stamp(18), summary.Feed[5].Timestamp)
}

func TestFeedBadgeFromTrailingStatus(t *testing.T) {
	store := state.NewMemStore()
	seed(t, store)

	summary := NewAggregator(store).Summarize()
	assert.Equal(t, format.BadgeSuccess, summary.Feed[0].Badge)
	assert.Contains(t, summary.Feed[0].Label, "Livrée")
}

func TestEmptyFeedPlaceholder(t *testing.T) {
	summary := NewAggregator(state.NewMemStore()).Summarize()
	assert.Empty(t, summary.Feed)
	assert.NotEmpty(t, summary.FeedEmpty)
	assert.True(t, summary.TotalPayments.Equal(decimal.Zero))
}
