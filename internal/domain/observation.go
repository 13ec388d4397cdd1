package domain

import (
	"time"

	"github.com/google/uuid"
)

type Observation struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID        uuid.UUID `json:"playerId" gorm:"type:uuid;not null;index"`
	CoachID         uuid.UUID `json:"coachId" gorm:"type:uuid;not null"`
	ObservationDate time.Time `json:"observationDate" gorm:"not null;index"`
	Content         string    `json:"content" gorm:"not null"`
	Rating          *float64  `json:"rating"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	Coach  *Coach  `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
}
