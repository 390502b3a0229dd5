package entity

type PortfolioItem struct {
	BaseNoDelete
	Title       string `db:"title"`
	Category    string `db:"category"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
	Published   bool   `db:"published"`
}
