package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	counters, err := h.dashboardService.GetSummaryCounters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counters)
}

func (h *DashboardHandler) GetWeeklyActivity(w http.ResponseWriter, r *http.Request) {
	dense := r.URL.Query().Get("dense") == "true"
	series, err := h.dashboardService.GetWeeklyActivitySeries(r.Context(), dense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (h *DashboardHandler) GetSkillComparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.dashboardService.GetSkillLevelComparison(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

func (h *DashboardHandler) GetPlayerPlanView(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerId"))
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}

	view, err := h.dashboardService.GetPlayerPlanView(r.Context(), playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
