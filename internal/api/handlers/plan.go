package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/mpb/coaching-dashboard/internal/websocket"
	"github.com/rs/zerolog/log"
)

type PlanHandler struct {
	planService *service.PlanService
	hub         *websocket.Hub
}

func NewPlanHandler(planService *service.PlanService, hub *websocket.Hub) *PlanHandler {
	return &PlanHandler{planService: planService, hub: hub}
}

type CreatePlanRequest struct {
	PlayerID  string     `json:"playerId"`
	CoachID   string     `json:"coachId"`
	Content   string     `json:"content"`
	Goals     []string   `json:"goals"`
	StartDate *time.Time `json:"startDate"`
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}
	coachID, err := uuid.Parse(req.CoachID)
	if err != nil {
		http.Error(w, "invalid coach id", http.StatusBadRequest)
		return
	}

	plan, err := h.planService.CreateOrReplacePlan(r.Context(), service.CreatePlanInput{
		PlayerID:  playerID,
		CoachID:   coachID,
		Content:   req.Content,
		Goals:     req.Goals,
		StartDate: req.StartDate,
	})
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		// healed concurrent create: the result is valid, the race is logged
		log.Warn().Err(err).Msg("plan creation conflict healed")
	} else if err != nil {
		writeError(w, err)
		return
	}

	h.hub.NotifyRefresh(websocket.ScopePlans)
	writeJSON(w, http.StatusCreated, plan)
}

type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

func (h *PlanHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid plan id", http.StatusBadRequest)
		return
	}

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := h.planService.UpdateProgress(r.Context(), planID, req.Progress)
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.NotifyRefresh(websocket.ScopePlans)
	writeJSON(w, http.StatusOK, plan)
}

func (h *PlanHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerId"))
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}

	plan, err := h.planService.GetActivePlan(r.Context(), playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if plan == nil {
		http.Error(w, "no active plan", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *PlanHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerId"))
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}

	history, err := h.planService.GetPlanHistory(r.Context(), playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
