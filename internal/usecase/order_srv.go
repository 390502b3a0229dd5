package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/internal/dto/request"
	"studio-site/internal/dto/response"
	"studio-site/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetByID(ctx context.Context, orderID string) (*response.OrderResponse, error)
	GetAll(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	Delete(ctx context.Context, orderID string) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		log:       log,
	}
}

// Create records a customer enquiry. This is the one public write endpoint,
// so every order starts out pending regardless of the payload.
func (os *orderService) Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		os.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber:   utils.GenerateOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		Details:       req.Details,
		Amount:        req.Amount,
		Status:        entity.OrderStatusPending,
	}

	if err := os.orderRepo.Create(ctx, order); err != nil {
		os.log.Error("Failed to create order", zap.Error(err), zap.String("email", req.CustomerEmail))
		return nil, fmt.Errorf("failed to create order")
	}

	os.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("service", order.Service))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (os *orderService) GetByID(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID")
	}

	order, err := os.orderRepo.FindByID(ctx, id)
	if err != nil {
		os.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to get order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (os *orderService) GetAll(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = 10
	}

	orders, err := os.orderRepo.FindAll(ctx, status, page.Limit(), page.Offset())
	if err != nil {
		os.log.Error("Failed to get orders", zap.Error(err), zap.String("status", status))
		return nil, fmt.Errorf("failed to get orders")
	}

	total, err := os.orderRepo.CountAll(ctx, status)
	if err != nil {
		os.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("failed to count orders")
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = response.OrderToResponse(order)
	}

	return response.NewPaginatedResponse(orderResponses, page.Page, page.PerPage, total), nil
}

func (os *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		os.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID")
	}

	order, err := os.orderRepo.FindByID(ctx, id)
	if err != nil {
		os.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	status := entity.OrderStatus(req.Status)
	if err := os.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		os.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", req.Status))
		return nil, fmt.Errorf("failed to update order")
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	os.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (os *orderService) Delete(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID")
	}

	if err := os.orderRepo.Delete(ctx, id); err != nil {
		os.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", orderID))
		return fmt.Errorf("order not found")
	}

	os.log.Info("Order deleted", zap.String("order_id", orderID))
	return nil
}
