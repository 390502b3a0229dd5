package entity

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	BaseNoDelete
	OrderNumber   string      `db:"order_number"`
	CustomerName  string      `db:"customer_name"`
	CustomerEmail string      `db:"customer_email"`
	CustomerPhone *string     `db:"customer_phone"`
	Service       string      `db:"service"`
	Details       string      `db:"details"`
	Amount        float64     `db:"amount"`
	Status        OrderStatus `db:"status"`
}
