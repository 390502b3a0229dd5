package request

type CreateEmployeeRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Position string  `json:"position" validate:"required,min=2,max=100"`
	Salary   float64 `json:"salary" validate:"gte=0"`
	HiredAt  string  `json:"hired_at" validate:"required"` // YYYY-MM-DD
	IsActive bool    `json:"is_active"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Position string  `json:"position" validate:"required,min=2,max=100"`
	Salary   float64 `json:"salary" validate:"gte=0"`
	HiredAt  string  `json:"hired_at" validate:"required"` // YYYY-MM-DD
	IsActive bool    `json:"is_active"`
}
