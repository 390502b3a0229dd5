package repository

import (
	"context"
	"testing"
	"time"

	"studio-site/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderRepoCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	now := time.Now()
	phone := "081234567890"
	order := &entity.Order{
		BaseNoDelete:  entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OrderNumber:   "ORD-20260830-120000-0042",
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		CustomerPhone: &phone,
		Service:       "web design",
		Details:       "landing page for product launch",
		Amount:        1500,
		Status:        entity.OrderStatusPending,
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.ID, order.OrderNumber, order.CustomerName, order.CustomerEmail,
			order.CustomerPhone, order.Service, order.Details, order.Amount,
			order.Status, order.CreatedAt, order.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoFindByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoUpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, entity.OrderStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, entity.OrderStatusCompleted))

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, entity.OrderStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.Error(t, repo.UpdateStatus(context.Background(), id, entity.OrderStatusCancelled))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoMonthlyRevenue(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	rows := pgxmock.NewRows([]string{"month", "total", "orders"}).
		AddRow(1, 1500.50, int64(3)).
		AddRow(6, 900.00, int64(2))

	mock.ExpectQuery("SELECT EXTRACT").
		WithArgs(2026).
		WillReturnRows(rows)

	report, err := repo.MonthlyRevenue(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, 1, report[0].Month)
	assert.InDelta(t, 1500.50, report[0].Total, 0.001)
	assert.Equal(t, int64(3), report[0].Orders)
	assert.Equal(t, 6, report[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoMonthlyRevenueEmptyYear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT EXTRACT").
		WithArgs(2001).
		WillReturnRows(pgxmock.NewRows([]string{"month", "total", "orders"}))

	report, err := repo.MonthlyRevenue(context.Background(), 2001)
	require.NoError(t, err)
	assert.Empty(t, report)
	assert.NoError(t, mock.ExpectationsWereMet())
}
