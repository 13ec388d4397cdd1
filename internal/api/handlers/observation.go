package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/mpb/coaching-dashboard/internal/websocket"
)

type ObservationHandler struct {
	observationService *service.ObservationService
	hub                *websocket.Hub
}

func NewObservationHandler(observationService *service.ObservationService, hub *websocket.Hub) *ObservationHandler {
	return &ObservationHandler{observationService: observationService, hub: hub}
}

type CreateObservationRequest struct {
	PlayerID        string     `json:"playerId"`
	CoachID         string     `json:"coachId"`
	Content         string     `json:"content"`
	ObservationDate *time.Time `json:"observationDate"`
	Rating          *float64   `json:"rating"`
}

func (h *ObservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateObservationRequest
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

	obs, err := h.observationService.CreateObservation(r.Context(), service.CreateObservationInput{
		PlayerID:        playerID,
		CoachID:         coachID,
		Content:         req.Content,
		ObservationDate: req.ObservationDate,
		Rating:          req.Rating,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.NotifyRefresh(websocket.ScopeObservations)
	writeJSON(w, http.StatusCreated, obs)
}

func (h *ObservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid observation id", http.StatusBadRequest)
		return
	}

	obs, err := h.observationService.GetObservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}
