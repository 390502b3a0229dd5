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

type PortfolioRepository interface {
	Create(ctx context.Context, item *entity.PortfolioItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error)
	FindAll(ctx context.Context, category string, publishedOnly bool, limit, offset int) ([]*entity.PortfolioItem, error)
	CountAll(ctx context.Context, category string, publishedOnly bool) (int64, error)
	Update(ctx context.Context, item *entity.PortfolioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type portfolioRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPortfolioRepository(db database.PgxIface, log *zap.Logger) PortfolioRepository {
	return &portfolioRepository{
		db:  db,
		log: log.With(zap.String("repository", "portfolio")),
	}
}

func (r *portfolioRepository) Create(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (id, title, category, description,
		                             image_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Category,
		item.Description,
		item.ImageURL,
		item.Published,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create portfolio item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("create portfolio item %s: %w", item.Title, err)
	}

	return nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error) {
	query := `
		SELECT id, title, category, description, image_url, published,
		       created_at, updated_at
		FROM portfolio_items
		WHERE id = $1
	`

	var item entity.PortfolioItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Category,
		&item.Description,
		&item.ImageURL,
		&item.Published,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find portfolio item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find portfolio item %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *portfolioRepository) FindAll(ctx context.Context, category string, publishedOnly bool, limit, offset int) ([]*entity.PortfolioItem, error) {
	query := `
		SELECT id, title, category, description, image_url, published,
		       created_at, updated_at
		FROM portfolio_items
		WHERE ($1 = '' OR category = $1)
		  AND (NOT $2 OR published = true)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, category, publishedOnly, limit, offset)
	if err != nil {
		r.log.Error("Failed to find portfolio items", zap.Error(err))
		return nil, fmt.Errorf("find portfolio items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PortfolioItem
	for rows.Next() {
		var item entity.PortfolioItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Category,
			&item.Description,
			&item.ImageURL,
			&item.Published,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to scan portfolio row", zap.Error(err))
			return nil, fmt.Errorf("scan portfolio row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portfolio rows: %w", err)
	}

	return items, nil
}

func (r *portfolioRepository) CountAll(ctx context.Context, category string, publishedOnly bool) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM portfolio_items
		WHERE ($1 = '' OR category = $1)
		  AND (NOT $2 OR published = true)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, category, publishedOnly).Scan(&count); err != nil {
		r.log.Error("Failed to count portfolio items", zap.Error(err))
		return 0, fmt.Errorf("count portfolio items: %w", err)
	}

	return count, nil
}

func (r *portfolioRepository) Update(ctx context.Context, item *entity.PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $2, category = $3, description = $4, image_url = $5,
		    published = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Category,
		item.Description,
		item.ImageURL,
		item.Published,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update portfolio item",
			zap.Error(err),
			zap.String("item_id", item.ID.String()),
		)
		return fmt.Errorf("update portfolio item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("portfolio item %s not found", item.ID.String())
	}

	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM portfolio_items
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete portfolio item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return fmt.Errorf("delete portfolio item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("portfolio item %s not found", id.String())
	}

	return nil
}
