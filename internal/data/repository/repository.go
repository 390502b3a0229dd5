package repository

import (
	"studio-site/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	OTP       OTPRepository
	Portfolio PortfolioRepository
	Order     OrderRepository
	Employee  EmployeeRepository
	Project   ProjectRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		OTP:       NewOTPRepository(db, log),
		Portfolio: NewPortfolioRepository(db, log),
		Order:     NewOrderRepository(db, log),
		Employee:  NewEmployeeRepository(db, log),
		Project:   NewProjectRepository(db, log),
	}
}
