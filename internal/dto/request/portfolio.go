package request

type CreatePortfolioRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=150"`
	Category    string `json:"category" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Published   bool   `json:"published"`
}

type UpdatePortfolioRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=150"`
	Category    string `json:"category" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Published   bool   `json:"published"`
}
