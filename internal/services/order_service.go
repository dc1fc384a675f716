package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zarbiti/zarbiti-backend/internal/dto"
	"github.com/zarbiti/zarbiti-backend/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("unknown order status")
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) Create(ownerID uuid.UUID, req *dto.CreateOrderRequest) (*models.Order, error) {
	if req.Client == "" {
		return nil, errors.New("client is required")
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusNew
	}
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price)
		if err == nil && !parsed.IsNegative() {
			price = parsed
		}
	}

	order := models.Order{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Source:    req.Source,
		Client:    req.Client,
		Phone:     req.Phone,
		City:      req.City,
		Product:   req.Product,
		Dimension: req.Dimension,
		Quantity:  quantity,
		Price:     price,
		Status:    status,
		Notes:     req.Notes,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (s *OrderService) List(status string, page, limit int) (*dto.OrdersListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	resp := &dto.OrdersListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	resp.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&o))
	}
	return resp, nil
}

func (s *OrderService) Update(id uuid.UUID, req *dto.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Source != nil {
		updates["source"] = *req.Source
	}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Product != nil {
		updates["product"] = *req.Product
	}
	if req.Dimension != nil {
		updates["dimension"] = *req.Dimension
	}
	if req.Quantity != nil && *req.Quantity >= 1 {
		updates["quantity"] = *req.Quantity
	}
	if req.Price != nil {
		parsed, err := decimal.NewFromString(*req.Price)
		if err != nil || parsed.IsNegative() {
			return nil, errors.New("invalid price")
		}
		updates["price"] = parsed
	}
	if req.Status != nil {
		if !models.ValidOrderStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		return order, nil
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return s.Get(id)
}

func (s *OrderService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) Stats() (*dto.OrderStatsResponse, error) {
	stats := &dto.OrderStatsResponse{
		ByStatus:     make(map[string]int64),
		TotalRevenue: decimal.Zero,
	}

	type statusRow struct {
		Status   string
		Count    int64
		Quantity int64
		Revenue  decimal.Decimal
	}
	var rows []statusRow
	err := s.db.Model(&models.Order{}).
		Select("status, count(*) as count, coalesce(sum(quantity),0) as quantity, coalesce(sum(price),0) as revenue").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute order stats: %w", err)
	}

	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
		stats.TotalQuantity += row.Quantity
		stats.TotalRevenue = stats.TotalRevenue.Add(row.Revenue)
	}
	return stats, nil
}

func toOrderResponse(o *models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        o.ID,
		Source:    o.Source,
		Client:    o.Client,
		Phone:     o.Phone,
		City:      o.City,
		Product:   o.Product,
		Dimension: o.Dimension,
		Quantity:  o.Quantity,
		Price:     o.Price,
		Status:    o.Status,
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
