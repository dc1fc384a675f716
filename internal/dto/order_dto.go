package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	Source    string `json:"source"`
	Client    string `json:"client"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Product   string `json:"product"`
	Dimension string `json:"dimension"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type UpdateOrderRequest struct {
	Source    *string `json:"source"`
	Client    *string `json:"client"`
	Phone     *string `json:"phone"`
	City      *string `json:"city"`
	Product   *string `json:"product"`
	Dimension *string `json:"dimension"`
	Quantity  *int    `json:"quantity"`
	Price     *string `json:"price"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

type OrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	Source    string          `json:"source"`
	Client    string          `json:"client"`
	Phone     string          `json:"phone"`
	City      string          `json:"city"`
	Product   string          `json:"product"`
	Dimension string          `json:"dimension"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type OrdersListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type OrderStatsResponse struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"by_status"`
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	TotalQuantity int64            `json:"total_quantity"`
}
