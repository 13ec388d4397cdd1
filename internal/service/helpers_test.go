package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"github.com/mpb/coaching-dashboard/internal/repository/memory"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/stretchr/testify/require"
)

// All service tests pin the clock to a known Wednesday so week windows and
// period math are deterministic.
var testNow = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) (*service.Services, *repository.Repositories, *clockwork.FakeClock) {
	t.Helper()
	repos := memory.NewStore().Repositories()
	clock := clockwork.NewFakeClockAt(testNow)
	return service.NewServices(repos, clock), repos, clock
}

func createPlayer(t *testing.T, repos *repository.Repositories, name string, skillLevel float64) *domain.Player {
	t.Helper()
	player := &domain.Player{DisplayName: name, Position: "Guard", SkillLevel: skillLevel}
	require.NoError(t, repos.Player.Create(context.Background(), player))
	return player
}

func createCoach(t *testing.T, repos *repository.Repositories, name string) *domain.Coach {
	t.Helper()
	coach := &domain.Coach{DisplayName: name}
	require.NoError(t, repos.Coach.Create(context.Background(), coach))
	return coach
}

func createObservation(t *testing.T, repos *repository.Repositories, player *domain.Player, coach *domain.Coach, date time.Time) *domain.Observation {
	t.Helper()
	obs := &domain.Observation{
		PlayerID:        player.ID,
		CoachID:         coach.ID,
		ObservationDate: date,
		Content:         "observed during practice",
	}
	require.NoError(t, repos.Observation.Create(context.Background(), obs))
	return obs
}
