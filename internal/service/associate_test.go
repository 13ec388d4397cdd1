package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planAt(start time.Time, end *time.Time) *domain.DevelopmentPlan {
	return &domain.DevelopmentPlan{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   end,
		Active:    end == nil,
	}
}

func obsAt(date time.Time) *domain.Observation {
	return &domain.Observation{ObservationDate: date}
}

func TestAssignToPlanPeriod(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	cut := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	older := planAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), &cut)
	newer := planAt(cut, nil)
	history := []*domain.DevelopmentPlan{newer, older}

	t.Run("inside archived period", func(t *testing.T) {
		got := service.AssignToPlanPeriod(obsAt(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)), history, now)
		require.NotNil(t, got)
		assert.Equal(t, older.ID, got.ID)
	})

	t.Run("inside active period", func(t *testing.T) {
		got := service.AssignToPlanPeriod(obsAt(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)), history, now)
		require.NotNil(t, got)
		assert.Equal(t, newer.ID, got.ID)
	})

	t.Run("boundary instant goes to the newer plan", func(t *testing.T) {
		// the old plan's end and the new plan's start coincide at cut
		got := service.AssignToPlanPeriod(obsAt(cut), history, now)
		require.NotNil(t, got)
		assert.Equal(t, newer.ID, got.ID)
	})

	t.Run("predates all plans", func(t *testing.T) {
		got := service.AssignToPlanPeriod(obsAt(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)), history, now)
		assert.Nil(t, got)
	})

	t.Run("no plans at all", func(t *testing.T) {
		got := service.AssignToPlanPeriod(obsAt(cut), nil, now)
		assert.Nil(t, got)
	})

	t.Run("deterministic over repeated calls", func(t *testing.T) {
		obs := obsAt(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
		first := service.AssignToPlanPeriod(obs, history, now)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, service.AssignToPlanPeriod(obs, history, now))
		}
	})
}

func TestAssignToPlanPeriod_OverlappingPlansPreferNewer(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	// archived late: its period overlaps the successor's
	lateEnd := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	older := planAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), &lateEnd)
	newer := planAt(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), nil)

	got := service.AssignToPlanPeriod(obsAt(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)), []*domain.DevelopmentPlan{older, newer}, now)
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)
}
