package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEmployee(
	r chi.Router,
	employeeHandler *adaptor.EmployeeHandler,
	jwtUtil *utils.JWTUtil,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Employee records are internal, no public surface at all.
	r.Route("/api/admin/employees", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtUtil, log))
		r.Use(middleware.Admin(log))

		r.Get("/", employeeHandler.GetAll)         // GET /api/admin/employees
		r.Get("/{id}", employeeHandler.GetByID)    // GET /api/admin/employees/{id}
		r.Post("/", employeeHandler.Create)        // POST /api/admin/employees
		r.Put("/{id}", employeeHandler.Update)     // PUT /api/admin/employees/{id}
		r.Delete("/{id}", employeeHandler.Delete)  // DELETE /api/admin/employees/{id}
	})
}
