// Command seed loads a demo roster so the dashboard has something to show.
// With -dry-run it builds the same roster in memory and prints the summary
// counters instead of touching the database.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mpb/coaching-dashboard/internal/config"
	"github.com/mpb/coaching-dashboard/internal/domain"
	"github.com/mpb/coaching-dashboard/internal/repository"
	"github.com/mpb/coaching-dashboard/internal/repository/memory"
	"github.com/mpb/coaching-dashboard/internal/repository/postgres"
	"github.com/mpb/coaching-dashboard/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type seedPlayer struct {
	name     string
	position string
	skill    float64
	planGoal string
}

var roster = []seedPlayer{
	{"Marcus Webb", "Point Guard", 8.5, "Improve decision making in pick and roll situations"},
	{"Jaylen Brooks", "Shooting Guard", 9.1, "Consistency on off-dribble three-pointers"},
	{"Devon Carter", "Small Forward", 7.2, "Movement without the ball and backdoor cuts"},
	{"Elias Romero", "Power Forward", 6.4, "Box-out technique and defensive positioning"},
	{"Tobias Nkemdi", "Center", 8.0, "Organizing help defense and frontcourt communication"},
	{"Sam Okafor", "Point Guard", 5.8, "Ball control under pressure in tight spaces"},
	{"Leo Virtanen", "Shooting Guard", 4.9, "Catch-and-shoot mechanics from the corners"},
	{"Andre Castillo", "Small Forward", 7.8, "Reading when defenders go under screens"},
}

var observationNotes = []string{
	"Strong session today. Created scoring opportunities for teammates and found open lanes.",
	"Good improvement in shooting form, though consistency from the left wing is lacking.",
	"Intelligent cuts all scrimmage, a constant scoring threat without the ball.",
	"Positioning reduced the need for spectacular efforts. Right place at the right time.",
	"Constant communication on defense, organized several steals and stops.",
}

func main() {
	dryRun := flag.Bool("dry-run", false, "seed an in-memory store and print the counters")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var repos *repository.Repositories
	if *dryRun {
		repos = memory.NewStore().Repositories()
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		repos = postgres.NewRepositories(db)
	}

	services := service.NewServices(repos, clockwork.NewRealClock())
	ctx := context.Background()

	if err := seed(ctx, repos, services); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	counters, err := services.Dashboard.GetSummaryCounters(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read counters")
	}
	log.Info().
		Int("players", counters.PlayerCount).
		Int("observationsThisWeek", counters.ObservationsThisWeek).
		Int("activePlans", counters.ActivePlanCount).
		Int("highPerformers", counters.HighPerformerCount).
		Msg("seed complete")
}

func seed(ctx context.Context, repos *repository.Repositories, services *service.Services) error {
	coaches := make([]*domain.Coach, 0, 2)
	for _, name := range []string{"Dana Whitfield", "Marco Ellis"} {
		coach := &domain.Coach{DisplayName: name}
		if err := repos.Coach.Create(ctx, coach); err != nil {
			return err
		}
		coaches = append(coaches, coach)
	}

	now := time.Now()
	for i, sp := range roster {
		player := &domain.Player{
			DisplayName: sp.name,
			Position:    sp.position,
			SkillLevel:  sp.skill,
		}
		if err := repos.Player.Create(ctx, player); err != nil {
			return err
		}
		coach := coaches[i%len(coaches)]

		// a plan started a month ago, replaced recently for half the roster
		monthAgo := now.AddDate(0, 0, -30)
		if _, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
			PlayerID:  player.ID,
			CoachID:   coach.ID,
			Content:   sp.planGoal,
			StartDate: &monthAgo,
		}); err != nil {
			return err
		}
		if i%2 == 0 {
			if _, err := services.Plan.CreateOrReplacePlan(ctx, service.CreatePlanInput{
				PlayerID: player.ID,
				CoachID:  coach.ID,
				Content:  "Next phase: " + sp.planGoal,
			}); err != nil {
				return err
			}
		}

		// observations spread over the past five weeks
		for w := 0; w < 5; w++ {
			date := now.AddDate(0, 0, -7*w-i%3)
			rating := sp.skill - 1 + float64(w%3)
			if rating > domain.MaxSkillLevel {
				rating = domain.MaxSkillLevel
			}
			if _, err := services.Observation.CreateObservation(ctx, service.CreateObservationInput{
				PlayerID:        player.ID,
				CoachID:         coach.ID,
				Content:         observationNotes[(i+w)%len(observationNotes)],
				ObservationDate: &date,
				Rating:          &rating,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
