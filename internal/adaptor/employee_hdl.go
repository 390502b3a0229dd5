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

type EmployeeHandler struct {
	service usecase.EmployeeService
	log     *zap.Logger
}

func NewEmployeeHandler(service usecase.EmployeeService, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/employees (admin only)
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	employee, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create employee")
		return
	}

	utils.ResponseCreated(w, "Employee created successfully", employee)
}

// GetAll handles GET /api/admin/employees (admin only)
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	employees, err := h.service.GetAll(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, err, "get employees")
		return
	}

	utils.ResponseSuccess(w, "Employees retrieved successfully", employees)
}

// GetByID handles GET /api/admin/employees/{id} (admin only)
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		utils.ResponseBadRequest(w, "Employee ID is required", nil)
		return
	}

	employee, err := h.service.GetByID(r.Context(), employeeID)
	if err != nil {
		h.handleServiceError(w, err, "get employee")
		return
	}

	utils.ResponseSuccess(w, "Employee retrieved successfully", employee)
}

// Update handles PUT /api/admin/employees/{id} (admin only)
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		utils.ResponseBadRequest(w, "Employee ID is required", nil)
		return
	}

	var req request.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	employee, err := h.service.Update(r.Context(), employeeID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update employee")
		return
	}

	utils.ResponseSuccess(w, "Employee updated successfully", employee)
}

// Delete handles DELETE /api/admin/employees/{id} (admin only)
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		utils.ResponseBadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), employeeID); err != nil {
		h.handleServiceError(w, err, "delete employee")
		return
	}

	utils.ResponseSuccess(w, "Employee deleted successfully", nil)
}

// handleServiceError handles errors for employee operations
func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
