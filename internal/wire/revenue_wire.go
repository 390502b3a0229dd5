package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRevenue(
	r chi.Router,
	revenueHandler *adaptor.RevenueHandler,
	jwtUtil *utils.JWTUtil,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/revenue", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))
		r.Use(middleware.Admin(log))

		r.Get("/", revenueHandler.YearlyReport) // GET /api/admin/revenue?year=
	})
}
