package service

import (
	"github.com/jonboulle/clockwork"
	"github.com/mpb/coaching-dashboard/internal/repository"
)

type Services struct {
	Plan        *PlanService
	Observation *ObservationService
	Dashboard   *DashboardService
}

func NewServices(repos *repository.Repositories, clock clockwork.Clock) *Services {
	planService := NewPlanService(repos.Plan, repos.Player, repos.Coach, clock)
	return &Services{
		Plan:        planService,
		Observation: NewObservationService(repos.Observation, repos.Player, repos.Coach, clock),
		Dashboard:   NewDashboardService(repos, planService, clock),
	}
}
