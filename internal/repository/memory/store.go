// Package memory holds a mutex-guarded in-memory implementation of the
// repository interfaces. It backs service unit tests and the seeder's
// dry-run mode; ordering semantics mirror the postgres implementation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
)

type Store struct {
	mu           sync.RWMutex
	players      map[uuid.UUID]domain.Player
	coaches      map[uuid.UUID]domain.Coach
	observations map[uuid.UUID]domain.Observation
	plans        map[uuid.UUID]domain.DevelopmentPlan
}

func NewStore() *Store {
	return &Store{
		players:      map[uuid.UUID]domain.Player{},
		coaches:      map[uuid.UUID]domain.Coach{},
		observations: map[uuid.UUID]domain.Observation{},
		plans:        map[uuid.UUID]domain.DevelopmentPlan{},
	}
}

// Repositories exposes the store through the shared interface bundle.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Player:      (*playerRepo)(s),
		Coach:       (*coachRepo)(s),
		Observation: (*observationRepo)(s),
		Plan:        (*planRepo)(s),
	}
}

func (s *Store) stamp(id *uuid.UUID, createdAt *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}

type playerRepo Store

func (r *playerRepo) Create(ctx context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	(*Store)(r).stamp(&player.ID, &player.CreatedAt)
	player.UpdatedAt = player.CreatedAt
	r.players[player.ID] = *player
	return nil
}

func (r *playerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	player, ok := r.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &player, nil
}

func (r *playerRepo) GetAll(ctx context.Context) ([]*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	players := make([]*domain.Player, 0, len(r.players))
	for id := range r.players {
		player := r.players[id]
		players = append(players, &player)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].DisplayName < players[j].DisplayName
	})
	return players, nil
}

func (r *playerRepo) Update(ctx context.Context, player *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[player.ID]; !ok {
		return repository.ErrNotFound
	}
	player.UpdatedAt = time.Now()
	r.players[player.ID] = *player
	return nil
}

type coachRepo Store

func (r *coachRepo) Create(ctx context.Context, coach *domain.Coach) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	(*Store)(r).stamp(&coach.ID, &coach.CreatedAt)
	coach.UpdatedAt = coach.CreatedAt
	r.coaches[coach.ID] = *coach
	return nil
}

func (r *coachRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	coach, ok := r.coaches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &coach, nil
}

func (r *coachRepo) GetAll(ctx context.Context) ([]*domain.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	coaches := make([]*domain.Coach, 0, len(r.coaches))
	for id := range r.coaches {
		coach := r.coaches[id]
		coaches = append(coaches, &coach)
	}
	sort.Slice(coaches, func(i, j int) bool {
		return coaches[i].DisplayName < coaches[j].DisplayName
	})
	return coaches, nil
}

type observationRepo Store

func (r *observationRepo) Create(ctx context.Context, obs *domain.Observation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	(*Store)(r).stamp(&obs.ID, &obs.CreatedAt)
	obs.UpdatedAt = obs.CreatedAt
	r.observations[obs.ID] = *obs
	return nil
}

func (r *observationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Observation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obs, ok := r.observations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &obs, nil
}

func (r *observationRepo) GetAll(ctx context.Context) ([]*domain.Observation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o *domain.Observation) bool { return true }, true), nil
}

func (r *observationRepo) GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.Observation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o *domain.Observation) bool { return o.PlayerID == playerID }, false), nil
}

func (r *observationRepo) GetInDateRange(ctx context.Context, start, end time.Time) ([]*domain.Observation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o *domain.Observation) bool {
		return domain.InWindow(o.ObservationDate, start, end)
	}, true), nil
}

// collect filters and orders by observation date; callers hold the lock.
func (r *observationRepo) collect(keep func(*domain.Observation) bool, asc bool) []*domain.Observation {
	var observations []*domain.Observation
	for id := range r.observations {
		obs := r.observations[id]
		if keep(&obs) {
			observations = append(observations, &obs)
		}
	}
	sort.Slice(observations, func(i, j int) bool {
		if asc {
			return observations[i].ObservationDate.Before(observations[j].ObservationDate)
		}
		return observations[i].ObservationDate.After(observations[j].ObservationDate)
	})
	return observations
}

type planRepo Store

func (r *planRepo) Create(ctx context.Context, plan *domain.DevelopmentPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	(*Store)(r).stamp(&plan.ID, &plan.CreatedAt)
	plan.UpdatedAt = plan.CreatedAt
	r.plans[plan.ID] = *plan
	return nil
}

func (r *planRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DevelopmentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &plan, nil
}

func (r *planRepo) GetAll(ctx context.Context) ([]*domain.DevelopmentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := r.filter(func(p *domain.DevelopmentPlan) bool { return true })
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].StartDate.After(plans[j].StartDate)
	})
	return plans, nil
}

func (r *planRepo) GetActiveByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := r.filter(func(p *domain.DevelopmentPlan) bool {
		return p.PlayerID == playerID && p.Active
	})
	// newest creation first, id as a deterministic tie-break
	sort.Slice(plans, func(i, j int) bool {
		if !plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].CreatedAt.After(plans[j].CreatedAt)
		}
		return plans[i].ID.String() > plans[j].ID.String()
	})
	return plans, nil
}

func (r *planRepo) GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := r.filter(func(p *domain.DevelopmentPlan) bool { return p.PlayerID == playerID })
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Active != plans[j].Active {
			return plans[i].Active
		}
		return plans[i].StartDate.After(plans[j].StartDate)
	})
	return plans, nil
}

func (r *planRepo) Update(ctx context.Context, plan *domain.DevelopmentPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	plan.UpdatedAt = time.Now()
	r.plans[plan.ID] = *plan
	return nil
}

func (r *planRepo) filter(keep func(*domain.DevelopmentPlan) bool) []*domain.DevelopmentPlan {
	var plans []*domain.DevelopmentPlan
	for id := range r.plans {
		plan := r.plans[id]
		if keep(&plan) {
			plans = append(plans, &plan)
		}
	}
	return plans
}
