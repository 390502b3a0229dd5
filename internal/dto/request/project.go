package request

type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	Client      string  `json:"client" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=planned ongoing completed"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	StartedAt   *string `json:"started_at,omitempty"`  // YYYY-MM-DD
	FinishedAt  *string `json:"finished_at,omitempty"` // YYYY-MM-DD
}

type UpdateProjectRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	Client      string  `json:"client" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=planned ongoing completed"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	StartedAt   *string `json:"started_at,omitempty"`
	FinishedAt  *string `json:"finished_at,omitempty"`
}
