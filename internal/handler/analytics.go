package handler

import (
	"net/http"

	"github.com/stayai/facility-desk/internal/service"
)

// AnalyticsHandler handles the read-only aggregate views.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Analytics handles GET /api/v1/analytics
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analytics.Analytics())
}

// Dashboard handles GET /api/v1/dashboard
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analytics.DashboardStats())
}
