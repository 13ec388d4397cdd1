package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"gorm.io/gorm"
)

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	displayName string
	position    string
	skillLevel  float64
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		displayName: fmt.Sprintf("testplayer_%s", uuid.New().String()[:8]),
		position:    "Guard",
		skillLevel:  6,
	}
}

func (b *PlayerBuilder) WithDisplayName(name string) *PlayerBuilder {
	b.displayName = name
	return b
}

func (b *PlayerBuilder) WithPosition(position string) *PlayerBuilder {
	b.position = position
	return b
}

func (b *PlayerBuilder) WithSkillLevel(skillLevel float64) *PlayerBuilder {
	b.skillLevel = skillLevel
	return b
}

// Build creates the player in the database
func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()

	player := &domain.Player{
		ID:          uuid.New(),
		DisplayName: b.displayName,
		Position:    b.position,
		SkillLevel:  b.skillLevel,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return player
}

// CoachBuilder creates test coaches with a builder pattern
type CoachBuilder struct {
	displayName string
}

func NewCoachBuilder() *CoachBuilder {
	return &CoachBuilder{
		displayName: fmt.Sprintf("testcoach_%s", uuid.New().String()[:8]),
	}
}

func (b *CoachBuilder) WithDisplayName(name string) *CoachBuilder {
	b.displayName = name
	return b
}

func (b *CoachBuilder) Build(t *testing.T, db *gorm.DB) *domain.Coach {
	t.Helper()

	coach := &domain.Coach{
		ID:          uuid.New(),
		DisplayName: b.displayName,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(coach).Error; err != nil {
		t.Fatalf("failed to create coach: %v", err)
	}

	return coach
}

// ObservationBuilder creates test observations with a builder pattern
type ObservationBuilder struct {
	player          *domain.Player
	coach           *domain.Coach
	observationDate time.Time
	content         string
	rating          *float64
}

func NewObservationBuilder(player *domain.Player, coach *domain.Coach) *ObservationBuilder {
	return &ObservationBuilder{
		player:          player,
		coach:           coach,
		observationDate: time.Now(),
		content:         "test observation content",
	}
}

func (b *ObservationBuilder) WithObservationDate(date time.Time) *ObservationBuilder {
	b.observationDate = date
	return b
}

func (b *ObservationBuilder) WithContent(content string) *ObservationBuilder {
	b.content = content
	return b
}

func (b *ObservationBuilder) WithRating(rating float64) *ObservationBuilder {
	b.rating = &rating
	return b
}

func (b *ObservationBuilder) Build(t *testing.T, db *gorm.DB) *domain.Observation {
	t.Helper()

	obs := &domain.Observation{
		ID:              uuid.New(),
		PlayerID:        b.player.ID,
		CoachID:         b.coach.ID,
		ObservationDate: b.observationDate,
		Content:         b.content,
		Rating:          b.rating,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := db.Create(obs).Error; err != nil {
		t.Fatalf("failed to create observation: %v", err)
	}

	return obs
}

// PlanBuilder creates development plans directly in the database, bypassing
// the lifecycle manager, for repository-level tests.
type PlanBuilder struct {
	player    *domain.Player
	coach     *domain.Coach
	content   string
	startDate time.Time
	endDate   *time.Time
	active    bool
}

func NewPlanBuilder(player *domain.Player, coach *domain.Coach) *PlanBuilder {
	return &PlanBuilder{
		player:    player,
		coach:     coach,
		content:   "test plan content",
		startDate: time.Now().AddDate(0, 0, -7),
		active:    true,
	}
}

func (b *PlanBuilder) WithContent(content string) *PlanBuilder {
	b.content = content
	return b
}

func (b *PlanBuilder) WithStartDate(startDate time.Time) *PlanBuilder {
	b.startDate = startDate
	return b
}

// Archived marks the plan inactive with the given end date.
func (b *PlanBuilder) Archived(endDate time.Time) *PlanBuilder {
	b.active = false
	b.endDate = &endDate
	return b
}

func (b *PlanBuilder) Build(t *testing.T, db *gorm.DB) *domain.DevelopmentPlan {
	t.Helper()

	plan := &domain.DevelopmentPlan{
		ID:        uuid.New(),
		PlayerID:  b.player.ID,
		CoachID:   b.coach.ID,
		Content:   b.content,
		Goals:     []byte("[]"),
		StartDate: b.startDate,
		EndDate:   b.endDate,
		Active:    b.active,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}

	return plan
}
