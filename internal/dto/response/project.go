package response

import (
	"time"

	"studio-site/internal/data/entity"
)

type ProjectResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Client      string               `json:"client"`
	Description string               `json:"description"`
	Status      entity.ProjectStatus `json:"status"`
	Budget      float64              `json:"budget"`
	StartedAt   *time.Time           `json:"started_at,omitempty"`
	FinishedAt  *time.Time           `json:"finished_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func ProjectToResponse(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID.String(),
		Title:       project.Title,
		Client:      project.Client,
		Description: project.Description,
		Status:      project.Status,
		Budget:      project.Budget,
		StartedAt:   project.StartedAt,
		FinishedAt:  project.FinishedAt,
		CreatedAt:   project.CreatedAt,
	}
}
