package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/events"
	"github.com/labzang/soccer/go/internal/player"
	playerdb "github.com/labzang/soccer/go/internal/player/db"
	"github.com/labzang/soccer/go/internal/schedule"
	scheduledb "github.com/labzang/soccer/go/internal/schedule/db"
	"github.com/labzang/soccer/go/internal/search"
	"github.com/labzang/soccer/go/internal/stadium"
	stadiumdb "github.com/labzang/soccer/go/internal/stadium/db"
	"github.com/labzang/soccer/go/internal/store/memory"
	"github.com/labzang/soccer/go/internal/teams"
	teamsdb "github.com/labzang/soccer/go/internal/teams/db"
)

type Repositories struct {
	Stadiums  stadium.StadiumRepository
	Teams     teams.TeamsRepository
	Players   player.PlayerRepository
	Schedules schedule.ScheduleRepository
}

func postgresRepositories(database *sql.DB) Repositories {
	return Repositories{
		Stadiums:  stadium.NewRepository(stadiumdb.New(database), database),
		Teams:     teams.NewRepository(teamsdb.New(database), database),
		Players:   player.NewRepository(playerdb.New(database), database),
		Schedules: schedule.NewRepository(scheduledb.New(database), database),
	}
}

func memoryRepositories() Repositories {
	return Repositories{
		Stadiums:  memory.NewStadiumStore(),
		Teams:     memory.NewTeamStore(),
		Players:   memory.NewPlayerStore(),
		Schedules: memory.NewScheduleStore(),
	}
}

type Services struct {
	Stadiums  *stadium.Service
	Teams     *teams.Service
	Players   *player.Service
	Schedules *schedule.Service
	Search    *search.Service
}

// setupEmitter publishes to NATS when url is set, otherwise to the log.
// The returned func closes the connection.
func setupEmitter(url, subjectPrefix string) (*events.Emitter, func()) {
	clock := clockwork.NewRealClock()
	if url == "" {
		log.Info().Msg("NATS_URL not set, change events go to the log")
		return events.NewEmitter(events.LogPublisher{}, clock), func() {}
	}

	nc, err := events.Connect(url)
	if err != nil {
		log.Warn().Err(err).Str("nats_url", url).Msg("NATS unavailable, change events go to the log")
		return events.NewEmitter(events.LogPublisher{}, clock), func() {}
	}

	log.Info().Str("nats_url", url).Str("subject_prefix", subjectPrefix).Msg("publishing change events to NATS")
	return events.NewEmitter(events.NewNATSPublisher(nc, subjectPrefix), clock), func() {
		if err := nc.Drain(); err != nil {
			log.Warn().Err(err).Msg("failed to drain NATS connection")
		}
	}
}

func setupServices(repos Repositories, emitter *events.Emitter) *Services {
	// Wire up dependency injection chain
	// Repository layer → App layer → Service layer

	// Stadiums
	stadiumApp := stadium.NewApp(repos.Stadiums, emitter)
	stadiumService := stadium.NewService(stadiumApp)

	// Teams link stadiums
	teamsApp := teams.NewApp(repos.Teams, stadiumApp, emitter)
	teamsService := teams.NewService(teamsApp)

	// Players link teams
	playerApp := player.NewApp(repos.Players, teamsApp, emitter)
	playerService := player.NewService(playerApp)

	// Schedules link a stadium and both teams
	scheduleApp := schedule.NewApp(repos.Schedules, stadiumApp, teamsApp, emitter)
	scheduleService := schedule.NewService(scheduleApp)

	// Search
	searchApp := search.NewApp(playerApp, teamsApp, stadiumApp, scheduleApp)
	searchService := search.NewService(searchApp)

	return &Services{
		Stadiums:  stadiumService,
		Teams:     teamsService,
		Players:   playerService,
		Schedules: scheduleService,
		Search:    searchService,
	}
}
