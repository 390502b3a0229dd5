package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"studio-site/internal/data/entity"
	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	service usecase.ProjectService
	log     *zap.Logger
}

func NewProjectHandler(service usecase.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		log:     log,
	}
}

// GetCompleted handles GET /api/projects. The public site only shows
// finished work, so the status filter is fixed here.
func (h *ProjectHandler) GetCompleted(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	projects, err := h.service.GetAll(r.Context(), string(entity.ProjectStatusCompleted), page)
	if err != nil {
		h.handleServiceError(w, err, "get projects")
		return
	}

	utils.ResponseSuccess(w, "Projects retrieved successfully", projects)
}

// GetAll handles GET /api/admin/projects (admin only)
func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	projects, err := h.service.GetAll(r.Context(), query.Get("status"), page)
	if err != nil {
		h.handleServiceError(w, err, "get projects")
		return
	}

	utils.ResponseSuccess(w, "Projects retrieved successfully", projects)
}

// GetByID handles GET /api/admin/projects/{id} (admin only)
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		utils.ResponseBadRequest(w, "Project ID is required", nil)
		return
	}

	project, err := h.service.GetByID(r.Context(), projectID)
	if err != nil {
		h.handleServiceError(w, err, "get project")
		return
	}

	utils.ResponseSuccess(w, "Project retrieved successfully", project)
}

// Create handles POST /api/admin/projects (admin only)
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create project")
		return
	}

	utils.ResponseCreated(w, "Project created successfully", project)
}

// Update handles PUT /api/admin/projects/{id} (admin only)
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		utils.ResponseBadRequest(w, "Project ID is required", nil)
		return
	}

	var req request.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	project, err := h.service.Update(r.Context(), projectID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update project")
		return
	}

	utils.ResponseSuccess(w, "Project updated successfully", project)
}

// Delete handles DELETE /api/admin/projects/{id} (admin only)
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		utils.ResponseBadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), projectID); err != nil {
		h.handleServiceError(w, err, "delete project")
		return
	}

	utils.ResponseSuccess(w, "Project deleted successfully", nil)
}

// handleServiceError handles errors for project operations
func (h *ProjectHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
