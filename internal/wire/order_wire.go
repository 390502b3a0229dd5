package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	jwtUtil *utils.JWTUtil,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/orders - customer enquiry form (no auth)
	r.Post("/api/orders", orderHandler.Create)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))
		r.Use(middleware.Admin(log))

		r.Get("/", orderHandler.GetAll)                     // GET /api/admin/orders?status=
		r.Get("/{id}", orderHandler.GetByID)                // GET /api/admin/orders/{id}
		r.Patch("/{id}/status", orderHandler.UpdateStatus)  // PATCH /api/admin/orders/{id}/status
		r.Delete("/{id}", orderHandler.Delete)              // DELETE /api/admin/orders/{id}
	})
}
