package response

import (
	"time"

	"studio-site/internal/data/entity"
)

type PortfolioResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func PortfolioToResponse(item *entity.PortfolioItem) PortfolioResponse {
	return PortfolioResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Category:    item.Category,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Published:   item.Published,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
