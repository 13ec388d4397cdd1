package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// PlanService owns the development-plan lifecycle. The central invariant:
// a player has at most one active plan at any time.
type PlanService struct {
	planRepo   repository.PlanRepository
	playerRepo repository.PlayerRepository
	coachRepo  repository.CoachRepository
	clock      clockwork.Clock
}

func NewPlanService(planRepo repository.PlanRepository, playerRepo repository.PlayerRepository, coachRepo repository.CoachRepository, clock clockwork.Clock) *PlanService {
	return &PlanService{
		planRepo:   planRepo,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		clock:      clock,
	}
}

type CreatePlanInput struct {
	PlayerID  uuid.UUID
	CoachID   uuid.UUID
	Content   string
	Goals     []string
	StartDate *time.Time // defaults to now
}

// CreateOrReplacePlan archives the player's current active plan (if any)
// and creates a new active one. The archived plan's endDate is stamped
// with "now" rather than the new plan's startDate, so a backdated start
// can never produce endDate < startDate on the old record.
//
// The store offers no multi-row transaction, so the active set is re-read
// immediately before the create and again after it. If the post-create
// read finds more than one active plan (two concurrent calls both passed
// the first read), all but the most recently created plan are archived
// and the surviving plan is returned together with a non-nil
// *domain.ConflictError. The result is valid; the error exists so the
// caller can log the healed race.
func (s *PlanService) CreateOrReplacePlan(ctx context.Context, input CreatePlanInput) (*domain.DevelopmentPlan, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.NewValidationError("content", "plan content is required")
	}

	if _, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("playerId", "unknown player")
		}
		return nil, &domain.StoreError{Op: "get player", Err: err}
	}
	if _, err := s.coachRepo.GetByID(ctx, input.CoachID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("coachId", "unknown coach")
		}
		return nil, &domain.StoreError{Op: "get coach", Err: err}
	}

	now := s.clock.Now()
	startDate := now
	if input.StartDate != nil {
		startDate = *input.StartDate
	}

	// Re-read the active set immediately before the create write.
	actives, err := s.planRepo.GetActiveByPlayerID(ctx, input.PlayerID)
	if err != nil {
		return nil, &domain.StoreError{Op: "get active plans", Err: err}
	}
	for _, prev := range actives {
		if err := s.archive(ctx, prev, now); err != nil {
			return nil, err
		}
	}

	goals, err := marshalGoals(input.Goals)
	if err != nil {
		return nil, domain.NewValidationError("goals", err.Error())
	}

	plan := &domain.DevelopmentPlan{
		ID:        uuid.New(),
		PlayerID:  input.PlayerID,
		CoachID:   input.CoachID,
		Content:   strings.TrimSpace(input.Content),
		Goals:     goals,
		StartDate: startDate,
		Active:    true,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		// The archive write may already have landed; surface the failure so
		// the caller never assumes a new active plan exists.
		return nil, &domain.StoreError{Op: "create plan", Err: err}
	}

	return s.healActiveSet(ctx, input.PlayerID, plan)
}

// healActiveSet re-reads the active plans after a create and archives all
// but the most recently created one when a concurrent create slipped in.
func (s *PlanService) healActiveSet(ctx context.Context, playerID uuid.UUID, created *domain.DevelopmentPlan) (*domain.DevelopmentPlan, error) {
	actives, err := s.planRepo.GetActiveByPlayerID(ctx, playerID)
	if err != nil {
		return nil, &domain.StoreError{Op: "re-read active plans", Err: err}
	}
	if len(actives) <= 1 {
		return created, nil
	}

	// actives is ordered newest creation first
	survivor := actives[0]
	now := s.clock.Now()
	for _, loser := range actives[1:] {
		if err := s.archive(ctx, loser, now); err != nil {
			return nil, err
		}
	}

	log.Warn().
		Str("playerId", playerID.String()).
		Int("activePlans", len(actives)).
		Str("survivingPlanId", survivor.ID.String()).
		Msg("concurrent plan creation healed")

	return survivor, &domain.ConflictError{
		Message: fmt.Sprintf("found %d active plans for player %s, kept %s", len(actives), playerID, survivor.ID),
	}
}

func (s *PlanService) archive(ctx context.Context, plan *domain.DevelopmentPlan, now time.Time) error {
	endDate := now
	plan.Active = false
	plan.EndDate = &endDate
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return &domain.StoreError{Op: "archive plan", Err: err}
	}
	return nil
}

// GetActivePlan returns the player's single active plan, or nil. Finding
// more than one on a plain read is a structural impossibility and is
// surfaced as an InvariantViolation, never silently resolved.
func (s *PlanService) GetActivePlan(ctx context.Context, playerID uuid.UUID) (*domain.DevelopmentPlan, error) {
	actives, err := s.planRepo.GetActiveByPlayerID(ctx, playerID)
	if err != nil {
		return nil, &domain.StoreError{Op: "get active plans", Err: err}
	}
	switch len(actives) {
	case 0:
		return nil, nil
	case 1:
		return actives[0], nil
	default:
		log.Error().
			Str("playerId", playerID.String()).
			Int("activePlans", len(actives)).
			Msg("multiple active plans found on read")
		return nil, &domain.InvariantViolation{
			Message: fmt.Sprintf("player %s has %d active plans", playerID, len(actives)),
		}
	}
}

// GetPlanHistory returns the player's plans with the active plan (if any)
// first regardless of date, then archived plans newest start date first.
func (s *PlanService) GetPlanHistory(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error) {
	plans, err := s.planRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, &domain.StoreError{Op: "get plans", Err: err}
	}
	return plans, nil
}

// UpdateProgress sets an active plan's progress percentage. Archived plans
// are history and stay immutable.
func (s *PlanService) UpdateProgress(ctx context.Context, planID uuid.UUID, progress int) (*domain.DevelopmentPlan, error) {
	if progress < 0 || progress > 100 {
		return nil, domain.NewValidationError("progress", "progress must be between 0 and 100")
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("planId", "unknown plan")
		}
		return nil, &domain.StoreError{Op: "get plan", Err: err}
	}
	if !plan.Active {
		return nil, domain.NewValidationError("planId", "plan is archived")
	}

	plan.Progress = progress
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, &domain.StoreError{Op: "update plan", Err: err}
	}
	return plan, nil
}

func marshalGoals(goals []string) (datatypes.JSON, error) {
	if goals == nil {
		goals = []string{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
