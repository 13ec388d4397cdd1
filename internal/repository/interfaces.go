package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
)

// ErrNotFound is returned by all implementations when a lookup matches no
// record, so callers never depend on a driver-specific sentinel.
var ErrNotFound = errors.New("record not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetAll(ctx context.Context) ([]*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
}

type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error)
	GetAll(ctx context.Context) ([]*domain.Coach, error)
}

type ObservationRepository interface {
	Create(ctx context.Context, obs *domain.Observation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Observation, error)
	// GetAll returns observations ordered by observation date, ascending.
	GetAll(ctx context.Context) ([]*domain.Observation, error)
	// GetByPlayerID returns a player's observations, newest first.
	GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.Observation, error)
	// GetInDateRange returns observations with start <= observationDate <= end,
	// ordered ascending.
	GetInDateRange(ctx context.Context, start, end time.Time) ([]*domain.Observation, error)
}

type PlanRepository interface {
	Create(ctx context.Context, plan *domain.DevelopmentPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DevelopmentPlan, error)
	GetAll(ctx context.Context) ([]*domain.DevelopmentPlan, error)
	// GetActiveByPlayerID returns every plan for the player with active=true.
	// The invariant says at most one; the slice return lets the lifecycle
	// manager detect and heal violations instead of masking them.
	GetActiveByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error)
	// GetByPlayerID returns a player's plans ordered active first, then by
	// start date descending.
	GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error)
	Update(ctx context.Context, plan *domain.DevelopmentPlan) error
}

type Repositories struct {
	Player      PlayerRepository
	Coach       CoachRepository
	Observation ObservationRepository
	Plan        PlanRepository
}
