package parcels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func TestCreateAppliesDefaultStatus(t *testing.T) {
	svc := NewService(state.NewMemStore())

	p, err := svc.Create(FormInput{OrderRef: "CMD-1", Carrier: "CTM", City: "Fès"})
	require.NoError(t, err)
	assert.Equal(t, DefaultStatus, p.Status)
	assert.NotEmpty(t, p.ID)
}

func TestCreatePrependsNewest(t *testing.T) {
	svc := NewService(state.NewMemStore())

	_, err := svc.Create(FormInput{OrderRef: "CMD-1"})
	require.NoError(t, err)
	_, err = svc.Create(FormInput{OrderRef: "CMD-2"})
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "CMD-2", list[0].OrderRef)
}

func TestStatsCountsDelivered(t *testing.T) {
	svc := NewService(state.NewMemStore())

	_, err := svc.Create(FormInput{OrderRef: "CMD-1", Status: "Livré"})
	require.NoError(t, err)
	_, err = svc.Create(FormInput{OrderRef: "CMD-2", Status: "En route"})
	require.NoError(t, err)
	_, err = svc.Create(FormInput{OrderRef: "CMD-3"})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Delivered)
}

func TestClearNeedsConfirmation(t *testing.T) {
	svc := NewService(state.NewMemStore())
	_, err := svc.Create(FormInput{OrderRef: "CMD-1"})
	require.NoError(t, err)

	cleared, err := svc.Clear(false)
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Len(t, svc.List(), 1)

	cleared, err = svc.Clear(true)
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, svc.List())
}
