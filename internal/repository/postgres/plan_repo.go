package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"gorm.io/gorm"
)

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *planRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *domain.DevelopmentPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DevelopmentPlan, error) {
	var plan domain.DevelopmentPlan
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Coach").
		First(&plan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetAll(ctx context.Context) ([]*domain.DevelopmentPlan, error) {
	var plans []*domain.DevelopmentPlan
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) GetActiveByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error) {
	var plans []*domain.DevelopmentPlan
	err := r.db.WithContext(ctx).
		Where("player_id = ? AND active = ?", playerID, true).
		Order("created_at DESC, id DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DevelopmentPlan, error) {
	var plans []*domain.DevelopmentPlan
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("active DESC, start_date DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *domain.DevelopmentPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}
