package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"gorm.io/gorm"
)

type observationRepository struct {
	db *gorm.DB
}

func NewObservationRepository(db *gorm.DB) *observationRepository {
	return &observationRepository{db: db}
}

func (r *observationRepository) Create(ctx context.Context, obs *domain.Observation) error {
	return r.db.WithContext(ctx).Create(obs).Error
}

func (r *observationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Observation, error) {
	var obs domain.Observation
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Coach").
		First(&obs, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *observationRepository) GetAll(ctx context.Context) ([]*domain.Observation, error) {
	var observations []*domain.Observation
	err := r.db.WithContext(ctx).
		Order("observation_date ASC").
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

func (r *observationRepository) GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.Observation, error) {
	var observations []*domain.Observation
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("observation_date DESC").
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

func (r *observationRepository) GetInDateRange(ctx context.Context, start, end time.Time) ([]*domain.Observation, error) {
	var observations []*domain.Observation
	err := r.db.WithContext(ctx).
		Where("observation_date >= ? AND observation_date <= ?", start, end).
		Order("observation_date ASC").
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}
