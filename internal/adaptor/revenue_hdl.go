package adaptor

import (
	"net/http"
	"strings"

	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type RevenueHandler struct {
	service usecase.RevenueService
	log     *zap.Logger
}

func NewRevenueHandler(service usecase.RevenueService, log *zap.Logger) *RevenueHandler {
	return &RevenueHandler{
		service: service,
		log:     log,
	}
}

// YearlyReport handles GET /api/admin/revenue?year=2026 (admin only).
// Omitting the year defaults to the current one.
func (h *RevenueHandler) YearlyReport(w http.ResponseWriter, r *http.Request) {
	year := utils.ParseInt(r.URL.Query().Get("year"), 0)

	report, err := h.service.YearlyReport(r.Context(), year)
	if err != nil {
		if strings.Contains(err.Error(), "invalid") {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to build revenue report", zap.Error(err), zap.Int("year", year))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Revenue report retrieved successfully", report)
}
