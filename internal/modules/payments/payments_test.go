package payments

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func TestCreateDefaults(t *testing.T) {
	svc := NewService(state.NewMemStore())

	p, err := svc.Create(FormInput{Customer: "Hassan", Amount: "n/a"})
	require.NoError(t, err)

	assert.Equal(t, DefaultStatus, p.Status)
	assert.True(t, p.Amount.Equal(decimal.Zero))
}

func TestCreateNegativeAmountCoercedToZero(t *testing.T) {
	svc := NewService(state.NewMemStore())

	p, err := svc.Create(FormInput{Customer: "Hassan", Amount: "-50"})
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.Zero))
}

func TestStatsSplitsCollected(t *testing.T) {
	svc := NewService(state.NewMemStore())
	_, err := svc.Create(FormInput{Customer: "a", Amount: "200", Status: "Payé"})
	require.NoError(t, err)
	_, err = svc.Create(FormInput{Customer: "b", Amount: "100"})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.True(t, stats.Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, stats.Collected.Equal(decimal.NewFromInt(200)))
}

func TestClearConfirmedPersistsEmpty(t *testing.T) {
	store := state.NewMemStore()
	svc := NewService(store)
	_, err := svc.Create(FormInput{Customer: "a", Amount: "10"})
	require.NoError(t, err)

	done, err := svc.Clear(true)
	require.NoError(t, err)
	assert.True(t, done)

	// A fresh service over the same store sees the persisted empty list.
	assert.Empty(t, NewService(store).List())
}
