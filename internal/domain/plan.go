package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DevelopmentPlan is a time-boxed set of goals assigned to a player by a
// coach. A player has at most one active plan; creating a new plan archives
// the previous one. Archived plans are never re-activated.
type DevelopmentPlan struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID  uuid.UUID      `json:"playerId" gorm:"type:uuid;not null;index"`
	CoachID   uuid.UUID      `json:"coachId" gorm:"type:uuid;not null"`
	Content   string         `json:"content" gorm:"not null"`
	Goals     datatypes.JSON `json:"goals" gorm:"type:jsonb;default:'[]'"`
	StartDate time.Time      `json:"startDate" gorm:"not null;index"`
	EndDate   *time.Time     `json:"endDate"`
	Active    bool           `json:"active" gorm:"not null;default:true;index"`
	Progress  int            `json:"progress" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	Coach  *Coach  `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
}

// PeriodContains reports whether t falls inside the plan's period, the
// half-open interval [StartDate, EndDate). An active plan has no end date
// and is treated as open-ended up to now.
func (p *DevelopmentPlan) PeriodContains(t, now time.Time) bool {
	if t.Before(p.StartDate) {
		return false
	}
	end := now
	if p.EndDate != nil {
		end = *p.EndDate
	}
	return t.Before(end)
}
