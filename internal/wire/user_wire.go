package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	jwtUtil *utils.JWTUtil,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))

		r.Get("/profile", userHandler.GetProfile)
		r.Put("/password", userHandler.ChangePassword)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.GetAllUsers)           // GET /api/admin/users
		r.Delete("/{id}", userHandler.DeactivateUser) // DELETE /api/admin/users/{id}
	})
}
