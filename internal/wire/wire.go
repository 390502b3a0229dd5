package wire

import (
	"net/http"

	"studio-site/internal/adaptor"
	"studio-site/internal/data/repository"
	"studio-site/internal/usecase"
	"studio-site/pkg/mailer"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds all dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	jwtUtil := utils.NewJWTUtil(config.JWT)
	sender := mailer.NewSMTPMailer(config.Email, logger)

	// Initialize services and handlers
	service := usecase.NewService(repo, sender, jwtUtil, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, jwtUtil, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	jwtUtil *utils.JWTUtil,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, jwtUtil, logger)
	wirePortfolio(r, handler.Portfolio, jwtUtil, logger)
	wireOrder(r, handler.Order, jwtUtil, logger)
	wireEmployee(r, handler.Employee, jwtUtil, logger)
	wireProject(r, handler.Project, jwtUtil, logger)
	wireRevenue(r, handler.Revenue, jwtUtil, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
