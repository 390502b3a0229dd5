package repository

import (
	"context"
	"fmt"

	"studio-site/internal/data/entity"
	"studio-site/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	MonthlyRevenue(ctx context.Context, year int) ([]*entity.MonthlyRevenue, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, customer_name, customer_email,
		                    customer_phone, service, details, amount, status,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.Service,
		order.Details,
		order.Amount,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
		return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_name, customer_email, customer_phone,
		       service, details, amount, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.Service,
		&order.Details,
		&order.Amount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_name, customer_email, customer_phone,
		       service, details, amount, status, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders", zap.Error(err))
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.CustomerPhone,
			&order.Service,
			&order.Details,
			&order.Amount,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountAll(ctx context.Context, status string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE ($1 = '' OR status = $1)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update status of order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM orders
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

// MonthlyRevenue aggregates completed orders into per-month totals for a
// calendar year. Months with no completed orders do not produce a row.
func (r *orderRepository) MonthlyRevenue(ctx context.Context, year int) ([]*entity.MonthlyRevenue, error) {
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month,
		       COALESCE(SUM(amount), 0) AS total,
		       COUNT(*) AS orders
		FROM orders
		WHERE status = 'completed'
		  AND EXTRACT(YEAR FROM created_at) = $1
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		r.log.Error("Failed to query monthly revenue",
			zap.Error(err),
			zap.Int("year", year),
		)
		return nil, fmt.Errorf("monthly revenue for %d: %w", year, err)
	}
	defer rows.Close()

	var report []*entity.MonthlyRevenue
	for rows.Next() {
		var row entity.MonthlyRevenue
		if err := rows.Scan(&row.Month, &row.Total, &row.Orders); err != nil {
			r.log.Error("Failed to scan revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue rows: %w", err)
	}

	return report, nil
}
