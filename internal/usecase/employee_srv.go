package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/internal/dto/request"
	"studio-site/internal/dto/response"
	"studio-site/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EmployeeService interface {
	Create(ctx context.Context, req *request.CreateEmployeeRequest) (*response.EmployeeResponse, error)
	GetByID(ctx context.Context, employeeID string) (*response.EmployeeResponse, error)
	GetAll(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.EmployeeResponse], error)
	Update(ctx context.Context, employeeID string, req *request.UpdateEmployeeRequest) (*response.EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	log          *zap.Logger
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, log *zap.Logger) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		log:          log,
	}
}

func (es *employeeService) Create(ctx context.Context, req *request.CreateEmployeeRequest) (*response.EmployeeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		es.log.Warn("Create employee validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hiredAt, err := time.Parse("2006-01-02", req.HiredAt)
	if err != nil {
		return nil, fmt.Errorf("invalid hired_at date, expected YYYY-MM-DD")
	}

	now := time.Now()
	employee := &entity.Employee{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Salary:   req.Salary,
		HiredAt:  hiredAt,
		IsActive: req.IsActive,
	}

	if err := es.employeeRepo.Create(ctx, employee); err != nil {
		es.log.Error("Failed to create employee", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create employee")
	}

	es.log.Info("Employee created",
		zap.String("employee_id", employee.ID.String()),
		zap.String("position", employee.Position))

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (es *employeeService) GetByID(ctx context.Context, employeeID string) (*response.EmployeeResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee ID")
	}

	employee, err := es.employeeRepo.FindByID(ctx, id)
	if err != nil {
		es.log.Error("Failed to find employee", zap.Error(err), zap.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to get employee")
	}
	if employee == nil {
		return nil, fmt.Errorf("employee not found")
	}

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (es *employeeService) GetAll(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.EmployeeResponse], error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = 10
	}

	employees, err := es.employeeRepo.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		es.log.Error("Failed to get employees", zap.Error(err))
		return nil, fmt.Errorf("failed to get employees")
	}

	total, err := es.employeeRepo.CountAll(ctx)
	if err != nil {
		es.log.Error("Failed to count employees", zap.Error(err))
		return nil, fmt.Errorf("failed to count employees")
	}

	employeeResponses := make([]response.EmployeeResponse, len(employees))
	for i, employee := range employees {
		employeeResponses[i] = response.EmployeeToResponse(employee)
	}

	return response.NewPaginatedResponse(employeeResponses, page.Page, page.PerPage, total), nil
}

func (es *employeeService) Update(ctx context.Context, employeeID string, req *request.UpdateEmployeeRequest) (*response.EmployeeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		es.log.Warn("Update employee validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee ID")
	}

	hiredAt, err := time.Parse("2006-01-02", req.HiredAt)
	if err != nil {
		return nil, fmt.Errorf("invalid hired_at date, expected YYYY-MM-DD")
	}

	employee, err := es.employeeRepo.FindByID(ctx, id)
	if err != nil {
		es.log.Error("Failed to find employee", zap.Error(err), zap.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee")
	}
	if employee == nil {
		return nil, fmt.Errorf("employee not found")
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Position = req.Position
	employee.Salary = req.Salary
	employee.HiredAt = hiredAt
	employee.IsActive = req.IsActive
	employee.UpdatedAt = time.Now()

	if err := es.employeeRepo.Update(ctx, employee); err != nil {
		es.log.Error("Failed to update employee", zap.Error(err), zap.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee")
	}

	es.log.Info("Employee updated", zap.String("employee_id", employeeID))

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (es *employeeService) Delete(ctx context.Context, employeeID string) error {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return fmt.Errorf("invalid employee ID")
	}

	if err := es.employeeRepo.Delete(ctx, id); err != nil {
		es.log.Error("Failed to delete employee", zap.Error(err), zap.String("employee_id", employeeID))
		return fmt.Errorf("employee not found")
	}

	es.log.Info("Employee deleted", zap.String("employee_id", employeeID))
	return nil
}
