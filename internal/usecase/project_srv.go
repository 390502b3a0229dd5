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

type ProjectService interface {
	Create(ctx context.Context, req *request.CreateProjectRequest) (*response.ProjectResponse, error)
	GetByID(ctx context.Context, projectID string) (*response.ProjectResponse, error)
	GetAll(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ProjectResponse], error)
	Update(ctx context.Context, projectID string, req *request.UpdateProjectRequest) (*response.ProjectResponse, error)
	Delete(ctx context.Context, projectID string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	log         *zap.Logger
}

func NewProjectService(projectRepo repository.ProjectRepository, log *zap.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		log:         log,
	}
}

func (ps *projectService) Create(ctx context.Context, req *request.CreateProjectRequest) (*response.ProjectResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Create project validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startedAt, err := parseOptionalDate(req.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at date, expected YYYY-MM-DD")
	}
	finishedAt, err := parseOptionalDate(req.FinishedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid finished_at date, expected YYYY-MM-DD")
	}

	now := time.Now()
	project := &entity.Project{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Client:      req.Client,
		Description: req.Description,
		Status:      entity.ProjectStatus(req.Status),
		Budget:      req.Budget,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
	}

	if err := ps.projectRepo.Create(ctx, project); err != nil {
		ps.log.Error("Failed to create project", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create project")
	}

	ps.log.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("client", project.Client))

	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (ps *projectService) GetByID(ctx context.Context, projectID string) (*response.ProjectResponse, error) {
	id, err := uuid.Parse(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID")
	}

	project, err := ps.projectRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to find project", zap.Error(err), zap.String("project_id", projectID))
		return nil, fmt.Errorf("failed to get project")
	}
	if project == nil {
		return nil, fmt.Errorf("project not found")
	}

	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (ps *projectService) GetAll(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ProjectResponse], error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = 10
	}

	projects, err := ps.projectRepo.FindAll(ctx, status, page.Limit(), page.Offset())
	if err != nil {
		ps.log.Error("Failed to get projects", zap.Error(err), zap.String("status", status))
		return nil, fmt.Errorf("failed to get projects")
	}

	total, err := ps.projectRepo.CountAll(ctx, status)
	if err != nil {
		ps.log.Error("Failed to count projects", zap.Error(err))
		return nil, fmt.Errorf("failed to count projects")
	}

	projectResponses := make([]response.ProjectResponse, len(projects))
	for i, project := range projects {
		projectResponses[i] = response.ProjectToResponse(project)
	}

	return response.NewPaginatedResponse(projectResponses, page.Page, page.PerPage, total), nil
}

func (ps *projectService) Update(ctx context.Context, projectID string, req *request.UpdateProjectRequest) (*response.ProjectResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update project validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(projectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID")
	}

	startedAt, err := parseOptionalDate(req.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at date, expected YYYY-MM-DD")
	}
	finishedAt, err := parseOptionalDate(req.FinishedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid finished_at date, expected YYYY-MM-DD")
	}

	project, err := ps.projectRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to find project", zap.Error(err), zap.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project")
	}
	if project == nil {
		return nil, fmt.Errorf("project not found")
	}

	project.Title = req.Title
	project.Client = req.Client
	project.Description = req.Description
	project.Status = entity.ProjectStatus(req.Status)
	project.Budget = req.Budget
	project.StartedAt = startedAt
	project.FinishedAt = finishedAt
	project.UpdatedAt = time.Now()

	if err := ps.projectRepo.Update(ctx, project); err != nil {
		ps.log.Error("Failed to update project", zap.Error(err), zap.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project")
	}

	ps.log.Info("Project updated", zap.String("project_id", projectID))

	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (ps *projectService) Delete(ctx context.Context, projectID string) error {
	id, err := uuid.Parse(projectID)
	if err != nil {
		return fmt.Errorf("invalid project ID")
	}

	if err := ps.projectRepo.Delete(ctx, id); err != nil {
		ps.log.Error("Failed to delete project", zap.Error(err), zap.String("project_id", projectID))
		return fmt.Errorf("project not found")
	}

	ps.log.Info("Project deleted", zap.String("project_id", projectID))
	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
