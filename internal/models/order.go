package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Remote API order statuses, in lifecycle order. The first value is the
// default for new orders.
const (
	OrderStatusNew          = "Nouvelle"
	OrderStatusToConfirm    = "À confirmer"
	OrderStatusConfirmed    = "Confirmée"
	OrderStatusInProduction = "En production"
	OrderStatusReady        = "Prête"
	OrderStatusInDelivery   = "En livraison"
	OrderStatusDelivered    = "Livrée"
	OrderStatusReturned     = "Retournée"
	OrderStatusCancelled    = "Annulée"
)

var OrderStatuses = []string{
	OrderStatusNew,
	OrderStatusToConfirm,
	OrderStatusConfirmed,
	OrderStatusInProduction,
	OrderStatusReady,
	OrderStatusInDelivery,
	OrderStatusDelivered,
	OrderStatusReturned,
	OrderStatusCancelled,
}

func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is the ORM-backed order of the remote API.
type Order struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Source    string          `gorm:"size:100" json:"source"`
	Client    string          `gorm:"size:255;not null" json:"client"`
	Phone     string          `gorm:"size:50" json:"phone"`
	City      string          `gorm:"size:100" json:"city"`
	Product   string          `gorm:"size:255" json:"product"`
	Dimension string          `gorm:"size:100" json:"dimension"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Status    string          `gorm:"size:50;not null;default:'Nouvelle';index" json:"status"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}
