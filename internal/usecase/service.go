package usecase

import (
	"studio-site/internal/data/repository"
	"studio-site/pkg/mailer"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	OTP       OTPService
	Auth      AuthService
	User      UserService
	Portfolio PortfolioService
	Order     OrderService
	Employee  EmployeeService
	Project   ProjectService
	Revenue   RevenueService
}

func NewService(
	repo *repository.Repository,
	sender mailer.Sender,
	jwt *utils.JWTUtil,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	otp := NewOTPService(repo.OTP, sender, config, log)

	return &Service{
		OTP:       otp,
		Auth:      NewAuthService(repo, otp, jwt, config, log),
		User:      NewUserService(repo.User, log),
		Portfolio: NewPortfolioService(repo.Portfolio, log),
		Order:     NewOrderService(repo.Order, log),
		Employee:  NewEmployeeService(repo.Employee, log),
		Project:   NewProjectService(repo.Project, log),
		Revenue:   NewRevenueService(repo.Order, log),
	}
}
