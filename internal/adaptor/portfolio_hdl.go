package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PortfolioHandler struct {
	service usecase.PortfolioService
	log     *zap.Logger
}

func NewPortfolioHandler(service usecase.PortfolioService, log *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
		log:     log,
	}
}

// GetAll handles GET /api/portfolio (public, published items only)
func (h *PortfolioHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	items, err := h.service.GetAll(r.Context(), query.Get("category"), true, page)
	if err != nil {
		h.handleServiceError(w, err, "get portfolio")
		return
	}

	utils.ResponseSuccess(w, "Portfolio retrieved successfully", items)
}

// GetAllAdmin handles GET /api/admin/portfolio (admin, includes drafts)
func (h *PortfolioHandler) GetAllAdmin(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	items, err := h.service.GetAll(r.Context(), query.Get("category"), false, page)
	if err != nil {
		h.handleServiceError(w, err, "get portfolio")
		return
	}

	utils.ResponseSuccess(w, "Portfolio retrieved successfully", items)
}

// GetByID handles GET /api/portfolio/{id}
func (h *PortfolioHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Portfolio item ID is required", nil)
		return
	}

	item, err := h.service.GetByID(r.Context(), itemID)
	if err != nil {
		h.handleServiceError(w, err, "get portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item retrieved successfully", item)
}

// Create handles POST /api/admin/portfolio (admin only)
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create portfolio item")
		return
	}

	utils.ResponseCreated(w, "Portfolio item created successfully", item)
}

// Update handles PUT /api/admin/portfolio/{id} (admin only)
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Portfolio item ID is required", nil)
		return
	}

	var req request.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.Update(r.Context(), itemID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item updated successfully", item)
}

// Delete handles DELETE /api/admin/portfolio/{id} (admin only)
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Portfolio item ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), itemID); err != nil {
		h.handleServiceError(w, err, "delete portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item deleted successfully", nil)
}

// handleServiceError handles errors for portfolio operations
func (h *PortfolioHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
