package adaptor

import (
	"studio-site/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Portfolio *PortfolioHandler
	Order     *OrderHandler
	Employee  *EmployeeHandler
	Project   *ProjectHandler
	Revenue   *RevenueHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Portfolio: NewPortfolioHandler(service.Portfolio, log),
		Order:     NewOrderHandler(service.Order, log),
		Employee:  NewEmployeeHandler(service.Employee, log),
		Project:   NewProjectHandler(service.Project, log),
		Revenue:   NewRevenueHandler(service.Revenue, log),
	}
}
