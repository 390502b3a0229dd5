package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePortfolio(
	r chi.Router,
	portfolioHandler *adaptor.PortfolioHandler,
	jwtUtil *utils.JWTUtil,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/portfolio - published items only (public showcase)
	r.Get("/api/portfolio", portfolioHandler.GetAll)

	// GET /api/portfolio/{id} - item details (public)
	r.Get("/api/portfolio/{id}", portfolioHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/portfolio", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))
		r.Use(middleware.Admin(log))

		r.Get("/", portfolioHandler.GetAllAdmin)       // GET /api/admin/portfolio (drafts included)
		r.Post("/", portfolioHandler.Create)           // POST /api/admin/portfolio
		r.Put("/{id}", portfolioHandler.Update)        // PUT /api/admin/portfolio/{id}
		r.Delete("/{id}", portfolioHandler.Delete)     // DELETE /api/admin/portfolio/{id}
	})
}
