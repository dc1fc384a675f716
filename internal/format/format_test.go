package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatusCaseInsensitive(t *testing.T) {
	assert.Equal(t, BadgeSuccess, ClassifyStatus("Livré"))
	assert.Equal(t, BadgeSuccess, ClassifyStatus("livré"))
	assert.Equal(t, BadgeSuccess, ClassifyStatus("LIVRÉE"))
}

func TestClassifyStatusCategories(t *testing.T) {
	assert.Equal(t, BadgeSuccess, ClassifyStatus("Payé partiellement"))
	assert.Equal(t, BadgeDanger, ClassifyStatus("Annulée"))
	assert.Equal(t, BadgeDanger, ClassifyStatus("Retournée"))
	assert.Equal(t, BadgeWarning, ClassifyStatus("En attente"))
	assert.Equal(t, BadgeWarning, ClassifyStatus("À confirmer"))
	assert.Equal(t, BadgeInfo, ClassifyStatus("Planifié"))
}

func TestClassifyStatusEmptyIsDefault(t *testing.T) {
	assert.Equal(t, BadgeInfo, ClassifyStatus(""))
}

func TestClassifyStatusCheckOrder(t *testing.T) {
	// A text matching both Success and Danger keywords classifies as
	// Success because Success is checked first.
	assert.Equal(t, BadgeSuccess, ClassifyStatus("Livré puis retour"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(""))
	assert.Equal(t, "15/03/2026", FormatDate("2026-03-15T10:30:00Z"))
	assert.Equal(t, "15/03/2026", FormatDate("2026-03-15"))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "-", FormatDateTime(""))
	assert.Equal(t, "15/03/2026 10:30", FormatDateTime("2026-03-15T10:30:00Z"))
}

func TestFormatDateUnparseablePassesThrough(t *testing.T) {
	assert.Equal(t, "pas une date", FormatDate("pas une date"))
}

func TestFormatCurrencyUnknownCodeFallsBack(t *testing.T) {
	// Invalid ISO code falls back to plain French numeric rendering.
	assert.Equal(t, "0,00", FormatCurrency(decimal.Zero, "???"))
}

func TestFormatCurrencyKnownCode(t *testing.T) {
	out := FormatCurrency(decimal.NewFromInt(1500), "MAD")
	assert.Contains(t, out, "MAD")
}
