package response

import (
	"time"

	"studio-site/internal/data/entity"
)

type OrderResponse struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"order_number"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone *string            `json:"customer_phone,omitempty"`
	Service       string             `json:"service"`
	Details       string             `json:"details"`
	Amount        float64            `json:"amount"`
	Status        entity.OrderStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID.String(),
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Service:       order.Service,
		Details:       order.Details,
		Amount:        order.Amount,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
