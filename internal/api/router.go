package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mpb/coaching-dashboard/internal/api/handlers"
	"github.com/mpb/coaching-dashboard/internal/api/middleware"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/mpb/coaching-dashboard/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
	planHandler := handlers.NewPlanHandler(services.Plan, hub)
	observationHandler := handlers.NewObservationHandler(services.Observation, hub)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", dashboardHandler.GetSummary)
			r.Get("/activity", dashboardHandler.GetWeeklyActivity)
			r.Get("/skill-comparison", dashboardHandler.GetSkillComparison)
			r.Get("/players/{playerId}", dashboardHandler.GetPlayerPlanView)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", planHandler.Create)
			r.Put("/{id}/progress", planHandler.UpdateProgress)
		})

		r.Route("/players/{playerId}/plans", func(r chi.Router) {
			r.Get("/active", planHandler.GetActive)
			r.Get("/history", planHandler.GetHistory)
		})

		r.Route("/observations", func(r chi.Router) {
			r.Post("/", observationHandler.Create)
			r.Get("/{id}", observationHandler.Get)
		})
	})

	// Dashboard refresh stream
	r.Get("/ws", wsHandler.Subscribe)

	return r
}
