package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"gorm.io/gorm"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAll(ctx context.Context) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Order("display_name ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Update(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Save(player).Error
}

type coachRepository struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *coachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *domain.Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *coachRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	var coach domain.Coach
	err := r.db.WithContext(ctx).First(&coach, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) GetAll(ctx context.Context) ([]*domain.Coach, error) {
	var coaches []*domain.Coach
	err := r.db.WithContext(ctx).
		Order("display_name ASC").
		Find(&coaches).Error
	if err != nil {
		return nil, err
	}
	return coaches, nil
}
