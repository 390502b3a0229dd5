package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-site/internal/data/repository"
	"studio-site/internal/dto/response"

	"go.uber.org/zap"
)

type RevenueService interface {
	YearlyReport(ctx context.Context, year int) (*response.RevenueReportResponse, error)
}

type revenueService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewRevenueService(orderRepo repository.OrderRepository, log *zap.Logger) RevenueService {
	return &revenueService{
		orderRepo: orderRepo,
		log:       log,
	}
}

// YearlyReport builds the monthly revenue breakdown for a calendar year
// from completed orders. Year zero means the current year.
func (rs *revenueService) YearlyReport(ctx context.Context, year int) (*response.RevenueReportResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if year < 2000 || year > time.Now().Year()+1 {
		return nil, fmt.Errorf("invalid year")
	}

	rows, err := rs.orderRepo.MonthlyRevenue(ctx, year)
	if err != nil {
		rs.log.Error("Failed to build revenue report", zap.Error(err), zap.Int("year", year))
		return nil, fmt.Errorf("failed to build revenue report")
	}

	report := &response.RevenueReportResponse{
		Year:   year,
		Months: make([]response.MonthlyRevenueResponse, 0, len(rows)),
	}

	for _, row := range rows {
		report.Months = append(report.Months, response.MonthlyRevenueResponse{
			Month:  row.Month,
			Total:  row.Total,
			Orders: row.Orders,
		})
		report.YearTotal += row.Total
		report.TotalOrders += row.Orders
	}

	rs.log.Info("Revenue report built",
		zap.Int("year", year),
		zap.Float64("year_total", report.YearTotal),
		zap.Int64("orders", report.TotalOrders))

	return report, nil
}
