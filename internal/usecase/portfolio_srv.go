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

type PortfolioService interface {
	Create(ctx context.Context, req *request.CreatePortfolioRequest) (*response.PortfolioResponse, error)
	GetByID(ctx context.Context, itemID string) (*response.PortfolioResponse, error)
	GetAll(ctx context.Context, category string, publishedOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.PortfolioResponse], error)
	Update(ctx context.Context, itemID string, req *request.UpdatePortfolioRequest) (*response.PortfolioResponse, error)
	Delete(ctx context.Context, itemID string) error
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	log           *zap.Logger
}

func NewPortfolioService(portfolioRepo repository.PortfolioRepository, log *zap.Logger) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		log:           log,
	}
}

func (ps *portfolioService) Create(ctx context.Context, req *request.CreatePortfolioRequest) (*response.PortfolioResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Create portfolio validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	item := &entity.PortfolioItem{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
	}

	if err := ps.portfolioRepo.Create(ctx, item); err != nil {
		ps.log.Error("Failed to create portfolio item", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create portfolio item")
	}

	ps.log.Info("Portfolio item created",
		zap.String("item_id", item.ID.String()),
		zap.String("title", item.Title))

	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (ps *portfolioService) GetByID(ctx context.Context, itemID string) (*response.PortfolioResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio item ID")
	}

	item, err := ps.portfolioRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to find portfolio item", zap.Error(err), zap.String("item_id", itemID))
		return nil, fmt.Errorf("failed to get portfolio item")
	}
	if item == nil {
		return nil, fmt.Errorf("portfolio item not found")
	}

	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (ps *portfolioService) GetAll(ctx context.Context, category string, publishedOnly bool, page *request.PaginatedRequest) (*response.PaginatedResponse[response.PortfolioResponse], error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = 10
	}

	items, err := ps.portfolioRepo.FindAll(ctx, category, publishedOnly, page.Limit(), page.Offset())
	if err != nil {
		ps.log.Error("Failed to get portfolio items", zap.Error(err), zap.String("category", category))
		return nil, fmt.Errorf("failed to get portfolio items")
	}

	total, err := ps.portfolioRepo.CountAll(ctx, category, publishedOnly)
	if err != nil {
		ps.log.Error("Failed to count portfolio items", zap.Error(err))
		return nil, fmt.Errorf("failed to count portfolio items")
	}

	itemResponses := make([]response.PortfolioResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.PortfolioToResponse(item)
	}

	return response.NewPaginatedResponse(itemResponses, page.Page, page.PerPage, total), nil
}

func (ps *portfolioService) Update(ctx context.Context, itemID string, req *request.UpdatePortfolioRequest) (*response.PortfolioResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update portfolio validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio item ID")
	}

	item, err := ps.portfolioRepo.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to find portfolio item", zap.Error(err), zap.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update portfolio item")
	}
	if item == nil {
		return nil, fmt.Errorf("portfolio item not found")
	}

	item.Title = req.Title
	item.Category = req.Category
	item.Description = req.Description
	item.ImageURL = req.ImageURL
	item.Published = req.Published
	item.UpdatedAt = time.Now()

	if err := ps.portfolioRepo.Update(ctx, item); err != nil {
		ps.log.Error("Failed to update portfolio item", zap.Error(err), zap.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update portfolio item")
	}

	ps.log.Info("Portfolio item updated", zap.String("item_id", itemID))

	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (ps *portfolioService) Delete(ctx context.Context, itemID string) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("invalid portfolio item ID")
	}

	if err := ps.portfolioRepo.Delete(ctx, id); err != nil {
		ps.log.Error("Failed to delete portfolio item", zap.Error(err), zap.String("item_id", itemID))
		return fmt.Errorf("portfolio item not found")
	}

	ps.log.Info("Portfolio item deleted", zap.String("item_id", itemID))
	return nil
}
