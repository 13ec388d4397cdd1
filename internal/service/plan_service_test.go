package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrReplacePlan_FirstPlan(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Ava", 6)
	coach := createCoach(t, repos, "Coach Dane")

	plan, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "Improve passing",
		Goals:    []string{"weak-side passing", "tempo control"},
	})
	require.NoError(t, err)

	assert.True(t, plan.Active)
	assert.Nil(t, plan.EndDate)
	assert.Equal(t, testNow, plan.StartDate)
	assert.Equal(t, "Improve passing", plan.Content)
}

func TestCreateOrReplacePlan_ArchivesPrevious(t *testing.T) {
	services, repos, clock := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Ben", 7)
	coach := createCoach(t, repos, "Coach Dane")

	planA, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "Improve passing",
	})
	require.NoError(t, err)

	clock.Advance(48 * time.Hour)
	archiveTime := clock.Now()

	planB, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "Improve shooting",
	})
	require.NoError(t, err)
	assert.True(t, planB.Active)

	archived, err := repos.Plan.GetByID(ctx, planA.ID)
	require.NoError(t, err)
	assert.False(t, archived.Active)
	require.NotNil(t, archived.EndDate)
	assert.Equal(t, archiveTime, *archived.EndDate)

	history, err := services.Plan.GetPlanHistory(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, planB.ID, history[0].ID, "active plan comes first")
	assert.Equal(t, planA.ID, history[1].ID)
}

func TestCreateOrReplacePlan_Validation(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Cara", 5)
	coach := createCoach(t, repos, "Coach Dane")

	var validationErr *domain.ValidationError

	_, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "   ",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Field)

	_, err = services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: uuid.New(),
		CoachID:  coach.ID,
		Content:  "Improve passing",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "playerId", validationErr.Field)

	_, err = services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  uuid.New(),
		Content:  "Improve passing",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "coachId", validationErr.Field)
}

func TestCreateOrReplacePlan_IdenticalCallsMakeDistinctPlans(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Dev", 8)
	coach := createCoach(t, repos, "Coach Dane")
	input := service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "Improve passing",
	}

	first, err := services.Plan.CreateOrReplacePlan(ctx, input)
	require.NoError(t, err)
	second, err := services.Plan.CreateOrReplacePlan(ctx, input)
	require.NoError(t, err)

	// no dedup: two plans exist, the first archived by the second
	assert.NotEqual(t, first.ID, second.ID)
	history, err := services.Plan.GetPlanHistory(ctx, player.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestGetActivePlan_NoneIsNil(t *testing.T) {
	services, repos, _ := newTestServices(t)

	player := createPlayer(t, repos, "Eli", 4)
	plan, err := services.Plan.GetActivePlan(context.Background(), player.ID)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestGetActivePlan_MultipleActiveIsInvariantViolation(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Finn", 6)
	coach := createCoach(t, repos, "Coach Dane")

	// bypass the lifecycle manager to wedge the store into a broken state
	for i := 0; i < 2; i++ {
		require.NoError(t, repos.Plan.Create(ctx, &domain.DevelopmentPlan{
			PlayerID:  player.ID,
			CoachID:   coach.ID,
			Content:   "broken",
			StartDate: testNow,
			Active:    true,
		}))
	}

	_, err := services.Plan.GetActivePlan(ctx, player.ID)
	var invariantErr *domain.InvariantViolation
	require.ErrorAs(t, err, &invariantErr)
}

func TestCreateOrReplacePlan_ConcurrentCallsKeepOneActive(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Gus", 7)
	coach := createCoach(t, repos, "Coach Dane")

	const attempts = 8
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
				PlayerID: player.ID,
				CoachID:  coach.ID,
				Content:  "Improve passing",
			})
			// a healed race reports ConflictError; anything else is a bug
			if err != nil {
				var conflictErr *domain.ConflictError
				assert.ErrorAs(t, err, &conflictErr)
			}
		}()
	}
	wg.Wait()

	active, err := services.Plan.GetActivePlan(ctx, player.ID)
	require.NoError(t, err, "active set must be healed after concurrent creates")
	require.NotNil(t, active)

	history, err := services.Plan.GetPlanHistory(ctx, player.ID)
	require.NoError(t, err)
	assert.Len(t, history, attempts)

	activeCount := 0
	for _, plan := range history {
		if plan.Active {
			activeCount++
		} else {
			assert.NotNil(t, plan.EndDate)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestUpdateProgress(t *testing.T) {
	services, repos, _ := newTestServices(t)
	ctx := context.Background()

	player := createPlayer(t, repos, "Hana", 6)
	coach := createCoach(t, repos, "Coach Dane")

	plan, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "Improve passing",
	})
	require.NoError(t, err)

	updated, err := services.Plan.UpdateProgress(ctx, plan.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)

	var validationErr *domain.ValidationError
	_, err = services.Plan.UpdateProgress(ctx, plan.ID, 101)
	require.ErrorAs(t, err, &validationErr)

	// archive the plan by replacing it, then try to touch it again
	_, err = services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
		PlayerID: player.ID,
		CoachID:  coach.ID,
		Content:  "Improve shooting",
	})
	require.NoError(t, err)

	_, err = services.Plan.UpdateProgress(ctx, plan.ID, 50)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "planId", validationErr.Field)
}
