package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateObservation(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Ivy", 6)
	coach := createCoach(t, repos, "Coach Dane")

	rating := 7.5
	obs, err := services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "  Strong court vision today.  ",
		Rating:   &rating,
	})
	require.NoError(t, err)

	assert.Equal(t, "Strong court vision today.", obs.Content)
	assert.Equal(t, testNow, obs.ObservationDate, "date defaults to now")

	updated, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastObservationDate)
	assert.Equal(t, testNow, *updated.LastObservationDate)
}

func TestCreateObservation_BackdatedKeepsNewerLastObservation(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Jon", 6)
	coach := createCoach(t, repos, "Coach Dane")

	_, err := services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "today's session",
	})
	require.NoError(t, err)

	lastWeek := testNow.AddDate(0, 0, -7)
	_, err = services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID:        player.ID,
		CoachID:         coach.ID,
		Content:         "backfilled notes",
		ObservationDate: &lastWeek,
	})
	require.NoError(t, err)

	updated, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastObservationDate)
	assert.Equal(t, testNow, *updated.LastObservationDate, "backfill must not rewind lastObservationDate")
}

func TestCreateObservation_FutureDateAccepted(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Kai", 6)
	coach := createCoach(t, repos, "Coach Dane")

	tomorrow := testNow.AddDate(0, 0, 1)
	obs, err := services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID:        player.ID,
		CoachID:         coach.ID,
		Content:         "scheduled scrimmage notes",
		ObservationDate: &tomorrow,
	})
	// soft validation: flagged in the log, not rejected
	require.NoError(t, err)
	assert.Equal(t, tomorrow, obs.ObservationDate)
}

func TestCreateObservation_Validation(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Lea", 6)
	coach := createCoach(t, repos, "Coach Dane")

	var validationErr *domain.ValidationError

	_, err := services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Field)

	bad := 10.5
	_, err = services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "rated too high",
		Rating:   &bad,
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "rating", validationErr.Field)

	_, err = services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID: uuid.New(),
		CoachID:  coach.ID,
		Content:  "nobody home",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "playerId", validationErr.Field)
}

func TestCreateObservation_ObservationDateIsPreserved(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Mia", 6)
	coach := createCoach(t, repos, "Coach Dane")

	when := time.Date(2025, 6, 3, 16, 30, 0, 0, time.UTC)
	obs, err := services.Observation.CreateObservation(ctx, service.CreateObservationInput{
		PlayerID:        player.ID,
		CoachID:         coach.ID,
		Content:         "midweek drills",
		ObservationDate: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, when, obs.ObservationDate)
}
