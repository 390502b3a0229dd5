package usecase

import (
	"context"
	"testing"
	"time"

	"studio-site/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOrderRepo struct {
	revenue map[int][]*entity.MonthlyRevenue
}

func (s *stubOrderRepo) Create(context.Context, *entity.Order) error { return nil }
func (s *stubOrderRepo) FindByID(context.Context, uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) FindAll(context.Context, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) CountAll(context.Context, string) (int64, error) { return 0, nil }
func (s *stubOrderRepo) UpdateStatus(context.Context, uuid.UUID, entity.OrderStatus) error {
	return nil
}
func (s *stubOrderRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (s *stubOrderRepo) MonthlyRevenue(_ context.Context, year int) ([]*entity.MonthlyRevenue, error) {
	return s.revenue[year], nil
}

func TestRevenueYearlyReport(t *testing.T) {
	year := time.Now().Year()
	repo := &stubOrderRepo{
		revenue: map[int][]*entity.MonthlyRevenue{
			year: {
				{Month: 1, Total: 1500.50, Orders: 3},
				{Month: 3, Total: 800, Orders: 1},
				{Month: 7, Total: 2400, Orders: 4},
			},
		},
	}
	srv := NewRevenueService(repo, zap.NewNop())

	report, err := srv.YearlyReport(context.Background(), year)
	require.NoError(t, err)

	assert.Equal(t, year, report.Year)
	require.Len(t, report.Months, 3)
	assert.InDelta(t, 4700.50, report.YearTotal, 0.001)
	assert.Equal(t, int64(8), report.TotalOrders)
	assert.Equal(t, 1, report.Months[0].Month)
	assert.Equal(t, 7, report.Months[2].Month)
}

func TestRevenueYearlyReportDefaultsToCurrentYear(t *testing.T) {
	repo := &stubOrderRepo{revenue: map[int][]*entity.MonthlyRevenue{}}
	srv := NewRevenueService(repo, zap.NewNop())

	report, err := srv.YearlyReport(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, time.Now().Year(), report.Year)
	assert.Empty(t, report.Months)
	assert.Zero(t, report.YearTotal)
}

func TestRevenueYearlyReportRejectsBogusYear(t *testing.T) {
	srv := NewRevenueService(&stubOrderRepo{}, zap.NewNop())

	_, err := srv.YearlyReport(context.Background(), 1900)
	assert.Error(t, err)

	_, err = srv.YearlyReport(context.Background(), time.Now().Year()+5)
	assert.Error(t, err)
}
