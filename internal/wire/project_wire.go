package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProject(
	r chi.Router,
	projectHandler *adaptor.ProjectHandler,
	jwtUtil *utils.JWTUtil,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/projects - completed work only (public showcase)
	r.Get("/api/projects", projectHandler.GetCompleted)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/projects", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))
		r.Use(middleware.Admin(log))

		r.Get("/", projectHandler.GetAll)         // GET /api/admin/projects?status=
		r.Get("/{id}", projectHandler.GetByID)    // GET /api/admin/projects/{id}
		r.Post("/", projectHandler.Create)        // POST /api/admin/projects
		r.Put("/{id}", projectHandler.Update)     // PUT /api/admin/projects/{id}
		r.Delete("/{id}", projectHandler.Delete)  // DELETE /api/admin/projects/{id}
	})
}
