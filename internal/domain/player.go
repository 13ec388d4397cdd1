package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SkillLevel is rated on a 0-10 scale.
	MinSkillLevel = 0.0
	MaxSkillLevel = 10.0

	// Players at or above this skill level count as high performers.
	HighPerformerThreshold = 8.0
)

type Player struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DisplayName         string     `json:"displayName" gorm:"not null"`
	Position            string     `json:"position"`
	SkillLevel          float64    `json:"skillLevel" gorm:"not null;default:0"`
	LastObservationDate *time.Time `json:"lastObservationDate"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// IsHighPerformer reports whether the player meets the high-performer bar.
func (p *Player) IsHighPerformer() bool {
	return p.SkillLevel >= HighPerformerThreshold
}

type Coach struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DisplayName string    `json:"displayName" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
