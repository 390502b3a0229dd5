package request

type CreateOrderRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone *string `json:"customer_phone,omitempty" validate:"omitempty,min=10,max=15"`
	Service       string  `json:"service" validate:"required,min=2,max=100"`
	Details       string  `json:"details" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
