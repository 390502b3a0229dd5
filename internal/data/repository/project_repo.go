package repository

import (
	"context"
	"fmt"

	"studio-site/internal/data/entity"
	"studio-site/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Project, error)
	CountAll(ctx context.Context, status string) (int64, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProjectRepository(db database.PgxIface, log *zap.Logger) ProjectRepository {
	return &projectRepository{
		db:  db,
		log: log.With(zap.String("repository", "project")),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (id, title, client, description, status, budget,
		                      started_at, finished_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Client,
		project.Description,
		project.Status,
		project.Budget,
		project.StartedAt,
		project.FinishedAt,
		project.CreatedAt,
		project.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create project",
			zap.Error(err),
			zap.String("title", project.Title),
		)
		return fmt.Errorf("create project %s: %w", project.Title, err)
	}

	return nil
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	query := `
		SELECT id, title, client, description, status, budget,
		       started_at, finished_at, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var project entity.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Client,
		&project.Description,
		&project.Status,
		&project.Budget,
		&project.StartedAt,
		&project.FinishedAt,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find project",
			zap.Error(err),
			zap.String("project_id", id.String()),
		)
		return nil, fmt.Errorf("find project %s: %w", id.String(), err)
	}

	return &project, nil
}

func (r *projectRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT id, title, client, description, status, budget,
		       started_at, finished_at, created_at, updated_at
		FROM projects
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find projects", zap.Error(err))
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		var project entity.Project
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Client,
			&project.Description,
			&project.Status,
			&project.Budget,
			&project.StartedAt,
			&project.FinishedAt,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to scan project row", zap.Error(err))
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project rows: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) CountAll(ctx context.Context, status string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM projects
		WHERE ($1 = '' OR status = $1)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count projects", zap.Error(err))
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return count, nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET title = $2, client = $3, description = $4, status = $5,
		    budget = $6, started_at = $7, finished_at = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Client,
		project.Description,
		project.Status,
		project.Budget,
		project.StartedAt,
		project.FinishedAt,
		project.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update project",
			zap.Error(err),
			zap.String("project_id", project.ID.String()),
		)
		return fmt.Errorf("update project %s: %w", project.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found", project.ID.String())
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM projects
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete project",
			zap.Error(err),
			zap.String("project_id", id.String()),
		)
		return fmt.Errorf("delete project %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found", id.String())
	}

	return nil
}
