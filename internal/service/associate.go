package service

import (
	"time"

	"github.com/mpb/coaching-dashboard/internal/domain"
)

// AssignToPlanPeriod finds the plan in a player's history whose period
// contains the observation's date. Periods are half-open
// [startDate, endDate-or-now); when periods touch (a plan archived at the
// same instant its successor started) the newer plan wins. Returns nil
// when no period contains the date: an observation that predates the
// player's first plan is a valid, unassigned observation, not an error.
func AssignToPlanPeriod(obs *domain.Observation, planHistory []*domain.DevelopmentPlan, now time.Time) *domain.DevelopmentPlan {
	var assigned *domain.DevelopmentPlan
	for _, plan := range planHistory {
		if !plan.PeriodContains(obs.ObservationDate, now) {
			continue
		}
		if assigned == nil || plan.StartDate.After(assigned.StartDate) {
			assigned = plan
		}
	}
	return assigned
}
