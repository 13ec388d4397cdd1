package postgres

import (
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Player{},
		&domain.Coach{},
		&domain.Observation{},
		&domain.DevelopmentPlan{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Player:      NewPlayerRepository(db),
		Coach:       NewCoachRepository(db),
		Observation: NewObservationRepository(db),
		Plan:        NewPlanRepository(db),
	}
}
