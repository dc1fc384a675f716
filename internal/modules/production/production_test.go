package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/modules/orders"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func TestCreateDefaultStatus(t *testing.T) {
	svc := NewService(state.NewMemStore())

	lot, err := svc.Create(FormInput{Reference: "LOT-1", Product: "Table"})
	require.NoError(t, err)
	assert.Equal(t, DefaultStatus, lot.Status)
}

func TestStatsReadsOrdersPipeline(t *testing.T) {
	store := state.NewMemStore()
	orderSvc := orders.NewService(store)
	_, err := orderSvc.Create(orders.FormInput{Client: "a", Quantity: "2", Status: orders.StatusConfirmed})
	require.NoError(t, err)
	_, err = orderSvc.Create(orders.FormInput{Client: "b", Quantity: "5", Status: orders.StatusInProduction})
	require.NoError(t, err)
	_, err = orderSvc.Create(orders.FormInput{Client: "c", Quantity: "9", Status: orders.StatusDelivered})
	require.NoError(t, err)

	svc := NewService(store)
	_, err = svc.Create(FormInput{Reference: "LOT-1"})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.Lots)
	assert.Equal(t, 2, stats.ActiveOrders)
	assert.Equal(t, 7, stats.ActiveQuantity)

	// The cross-read never mutates the orders collection.
	assert.Len(t, orderSvc.List(), 3)
}
