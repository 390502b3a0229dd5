package response

import (
	"time"

	"studio-site/internal/data/entity"
)

type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	Salary    float64   `json:"salary"`
	HiredAt   time.Time `json:"hired_at"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func EmployeeToResponse(employee *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID.String(),
		Name:      employee.Name,
		Email:     employee.Email,
		Position:  employee.Position,
		Salary:    employee.Salary,
		HiredAt:   employee.HiredAt,
		IsActive:  employee.IsActive,
		CreatedAt: employee.CreatedAt,
	}
}
