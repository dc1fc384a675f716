package orders

import (
	"github.com/shopspring/decimal"

	"github.com/zarbiti/zarbiti-backend/internal/records"
)

// Order lifecycle statuses, in order. The first value is the default for a
// blank form field.
const (
	StatusNew          = "Nouvelle"
	StatusToConfirm    = "À confirmer"
	StatusConfirmed    = "Confirmée"
	StatusInProduction = "En production"
	StatusReady        = "Prête"
	StatusInDelivery   = "En livraison"
	StatusDelivered    = "Livrée"
	StatusReturned     = "Retournée"
	StatusCancelled    = "Annulée"
)

var Statuses = []string{
	StatusNew,
	StatusToConfirm,
	StatusConfirmed,
	StatusInProduction,
	StatusReady,
	StatusInDelivery,
	StatusDelivered,
	StatusReturned,
	StatusCancelled,
}

// ActiveStatuses is the subset the production page counts as work in the
// pipeline.
var ActiveStatuses = []string{StatusConfirmed, StatusInProduction, StatusReady}

// Order is a workspace order record.
type Order struct {
	records.Base
	Source    string          `json:"source"`
	Client    string          `json:"client"`
	Phone     string          `json:"phone"`
	City      string          `json:"city"`
	Product   string          `json:"product"`
	Dimension string          `json:"dimension"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Notes     string          `json:"notes"`
}

// FormInput is the raw creation form. Everything arrives as text; blank or
// malformed fields coerce to defaults rather than failing the submit.
type FormInput struct {
	Source    string `json:"source" form:"source"`
	Client    string `json:"client" form:"client"`
	Phone     string `json:"phone" form:"phone"`
	City      string `json:"city" form:"city"`
	Product   string `json:"product" form:"product"`
	Dimension string `json:"dimension" form:"dimension"`
	Quantity  string `json:"quantity" form:"quantity"`
	Price     string `json:"price" form:"price"`
	Status    string `json:"status" form:"status"`
	Notes     string `json:"notes" form:"notes"`
}

// Stats is the orders page summary.
type Stats struct {
	Total    int             `json:"total"`
	ByStatus map[string]int  `json:"by_status"`
	Revenue  decimal.Decimal `json:"revenue"`
}
