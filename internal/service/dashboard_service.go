package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
)

// DashboardService composes the lifecycle manager and the metric
// reductions into the read operations the presentation layer calls. It
// owns fetch-then-reduce ordering and nothing else.
type DashboardService struct {
	repos       *repository.Repositories
	planService *PlanService
	clock       clockwork.Clock
}

func NewDashboardService(repos *repository.Repositories, planService *PlanService, clock clockwork.Clock) *DashboardService {
	return &DashboardService{
		repos:       repos,
		planService: planService,
		clock:       clock,
	}
}

type SummaryCounters struct {
	PlayerCount          int `json:"playerCount"`
	ObservationsThisWeek int `json:"observationsThisWeek"`
	ActivePlanCount      int `json:"activePlanCount"`
	HighPerformerCount   int `json:"highPerformerCount"`
}

func (s *DashboardService) GetSummaryCounters(ctx context.Context) (*SummaryCounters, error) {
	players, err := s.repos.Player.GetAll(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: "get players", Err: err}
	}
	plans, err := s.repos.Plan.GetAll(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: "get plans", Err: err}
	}

	now := s.clock.Now()
	weekObservations, err := s.repos.Observation.GetInDateRange(ctx, domain.WeekStart(now), domain.WeekEnd(now))
	if err != nil {
		return nil, &domain.StoreError{Op: "get observations", Err: err}
	}

	return &SummaryCounters{
		PlayerCount:          len(players),
		ObservationsThisWeek: len(weekObservations),
		ActivePlanCount:      CountActivePlans(plans),
		HighPerformerCount:   CountHighPerformers(players, domain.HighPerformerThreshold),
	}, nil
}

// GetWeeklyActivitySeries returns observation counts bucketed by calendar
// week, oldest first. With dense set, empty weeks between the first and
// the current week are zero-filled for charting continuity.
func (s *DashboardService) GetWeeklyActivitySeries(ctx context.Context, dense bool) ([]WeekBucket, error) {
	observations, err := s.repos.Observation.GetAll(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: "get observations", Err: err}
	}

	if !dense || len(observations) == 0 {
		return GroupObservationsByCalendarWeek(observations), nil
	}
	// GetAll is date-ascending, so the first record anchors the range.
	return DenseWeeklySeries(observations, observations[0].ObservationDate, s.clock.Now()), nil
}

// PeriodComparison holds the period-over-period average of a player metric
// for the dashboard's performance delta: players last observed in the past
// 30 days against those last observed in the 30 days before that.
type PeriodComparison struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

func (s *DashboardService) GetSkillLevelComparison(ctx context.Context) (*PeriodComparison, error) {
	players, err := s.repos.Player.GetAll(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: "get players", Err: err}
	}

	now := s.clock.Now()
	skill := func(p *domain.Player) float64 { return p.SkillLevel }
	return &PeriodComparison{
		Current:  ComputePeriodAverages(players, skill, LastObservedSince(domain.DaysAgo(now, 30))),
		Previous: ComputePeriodAverages(players, skill, LastObservedBetween(domain.DaysAgo(now, 60), domain.DaysAgo(now, 30))),
	}, nil
}

// PlanViewObservation pairs an observation with the plan period it falls
// in. PlanID is nil for observations that predate the player's first plan.
type PlanViewObservation struct {
	Observation *domain.Observation `json:"observation"`
	PlanID      *uuid.UUID          `json:"planId"`
	RatingLabel domain.RatingLabel  `json:"ratingLabel,omitempty"`
}

type PlayerPlanView struct {
	Player       *domain.Player            `json:"player"`
	ActivePlan   *domain.DevelopmentPlan   `json:"activePlan"`
	History      []*domain.DevelopmentPlan `json:"history"`
	Observations []PlanViewObservation     `json:"observations"`
}

// GetPlayerPlanView assembles a player's active plan, archived history and
// observations, each observation attributed to the plan period that was
// active when it was recorded.
func (s *DashboardService) GetPlayerPlanView(ctx context.Context, playerID uuid.UUID) (*PlayerPlanView, error) {
	player, err := s.repos.Player.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("playerId", "unknown player")
		}
		return nil, &domain.StoreError{Op: "get player", Err: err}
	}

	history, err := s.planService.GetPlanHistory(ctx, playerID)
	if err != nil {
		return nil, err
	}
	active, err := s.planService.GetActivePlan(ctx, playerID)
	if err != nil {
		return nil, err
	}

	observations, err := s.repos.Observation.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, &domain.StoreError{Op: "get observations", Err: err}
	}

	now := s.clock.Now()
	assigned := make([]PlanViewObservation, 0, len(observations))
	for _, obs := range observations {
		pvo := PlanViewObservation{Observation: obs}
		if plan := AssignToPlanPeriod(obs, history, now); plan != nil {
			id := plan.ID
			pvo.PlanID = &id
		}
		if obs.Rating != nil {
			pvo.RatingLabel = domain.ClassifyRating(*obs.Rating)
		}
		assigned = append(assigned, pvo)
	}

	return &PlayerPlanView{
		Player:       player,
		ActivePlan:   active,
		History:      history,
		Observations: assigned,
	}, nil
}
