package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"github.com/rs/zerolog/log"
)

type ObservationService struct {
	obsRepo    repository.ObservationRepository
	playerRepo repository.PlayerRepository
	coachRepo  repository.CoachRepository
	clock      clockwork.Clock
}

func NewObservationService(obsRepo repository.ObservationRepository, playerRepo repository.PlayerRepository, coachRepo repository.CoachRepository, clock clockwork.Clock) *ObservationService {
	return &ObservationService{
		obsRepo:    obsRepo,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		clock:      clock,
	}
}

type CreateObservationInput struct {
	PlayerID        uuid.UUID
	CoachID         uuid.UUID
	Content         string
	ObservationDate *time.Time // defaults to now
	Rating          *float64
}

// CreateObservation records a coach's observation of a player and advances
// the player's lastObservationDate when this observation is the newest.
// The coach id is an explicit parameter on every write; there is no
// implicit "current user".
func (s *ObservationService) CreateObservation(ctx context.Context, input CreateObservationInput) (*domain.Observation, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.NewValidationError("content", "observation content is required")
	}
	if input.Rating != nil && (*input.Rating < domain.MinSkillLevel || *input.Rating > domain.MaxSkillLevel) {
		return nil, domain.NewValidationError("rating", "rating must be between 0 and 10")
	}

	player, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
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
	observationDate := now
	if input.ObservationDate != nil {
		observationDate = *input.ObservationDate
	}
	// Soft validation only: a future date is accepted but flagged.
	if observationDate.After(now) {
		log.Warn().
			Str("playerId", input.PlayerID.String()).
			Time("observationDate", observationDate).
			Msg("observation dated in the future")
	}

	obs := &domain.Observation{
		ID:              uuid.New(),
		PlayerID:        input.PlayerID,
		CoachID:         input.CoachID,
		ObservationDate: observationDate,
		Content:         strings.TrimSpace(input.Content),
		Rating:          input.Rating,
	}
	if err := s.obsRepo.Create(ctx, obs); err != nil {
		return nil, &domain.StoreError{Op: "create observation", Err: err}
	}

	if player.LastObservationDate == nil || observationDate.After(*player.LastObservationDate) {
		player.LastObservationDate = &observationDate
		if err := s.playerRepo.Update(ctx, player); err != nil {
			return nil, &domain.StoreError{Op: "update player", Err: err}
		}
	}

	return obs, nil
}

func (s *ObservationService) GetObservation(ctx context.Context, id uuid.UUID) (*domain.Observation, error) {
	obs, err := s.obsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("id", "unknown observation")
		}
		return nil, &domain.StoreError{Op: "get observation", Err: err}
	}
	return obs, nil
}
