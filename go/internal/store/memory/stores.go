package memory

import (
	"context"

	"github.com/labzang/soccer/go/internal/models"
)

// StadiumStore is an in-memory stadium repository
type StadiumStore struct {
	t *table[models.Stadium]
}

func NewStadiumStore() *StadiumStore {
	return &StadiumStore{t: newTable("stadium",
		func(s models.Stadium) int64 { return s.ID },
		func(s *models.Stadium, id int64) { s.ID = id },
		func(s models.Stadium) *string { return s.StadiumUK },
		func(*models.Stadium) {},
	)}
}

func (s *StadiumStore) CreateStadium(ctx context.Context, st models.Stadium) (*models.Stadium, error) {
	return s.t.insert(ctx, st)
}

func (s *StadiumStore) CreateStadiums(ctx context.Context, stadiums []models.Stadium) ([]models.Stadium, error) {
	return s.t.insertAll(ctx, stadiums)
}

func (s *StadiumStore) GetStadium(ctx context.Context, id int64) (*models.Stadium, error) {
	return s.t.get(ctx, id)
}

func (s *StadiumStore) GetStadiumByUK(ctx context.Context, stadiumUK string) (*models.Stadium, error) {
	return s.t.getByKey(ctx, stadiumUK)
}

func (s *StadiumStore) ListAllStadiums(ctx context.Context) ([]models.Stadium, error) {
	return s.t.list(ctx)
}

func (s *StadiumStore) UpdateStadium(ctx context.Context, st models.Stadium) (*models.Stadium, error) {
	return s.t.replace(ctx, st)
}

func (s *StadiumStore) DeleteStadium(ctx context.Context, id int64) error {
	return s.t.delete(ctx, id)
}

// TeamStore is an in-memory team repository
type TeamStore struct {
	t *table[models.Team]
}

func NewTeamStore() *TeamStore {
	return &TeamStore{t: newTable("team",
		func(t models.Team) int64 { return t.ID },
		func(t *models.Team, id int64) { t.ID = id },
		func(t models.Team) *string { return t.TeamUK },
		func(t *models.Team) { t.Stadium = nil },
	)}
}

func (s *TeamStore) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	return s.t.insert(ctx, team)
}

func (s *TeamStore) CreateTeams(ctx context.Context, teams []models.Team) ([]models.Team, error) {
	return s.t.insertAll(ctx, teams)
}

func (s *TeamStore) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	return s.t.get(ctx, id)
}

func (s *TeamStore) GetTeamByUK(ctx context.Context, teamUK string) (*models.Team, error) {
	return s.t.getByKey(ctx, teamUK)
}

func (s *TeamStore) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	return s.t.list(ctx)
}

func (s *TeamStore) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	return s.t.replace(ctx, team)
}

func (s *TeamStore) DeleteTeam(ctx context.Context, id int64) error {
	return s.t.delete(ctx, id)
}

// PlayerStore is an in-memory player repository
type PlayerStore struct {
	t *table[models.Player]
}

func NewPlayerStore() *PlayerStore {
	return &PlayerStore{t: newTable("player",
		func(p models.Player) int64 { return p.ID },
		func(p *models.Player, id int64) { p.ID = id },
		func(p models.Player) *string { return p.PlayerUK },
		func(p *models.Player) { p.Team = nil },
	)}
}

func (s *PlayerStore) CreatePlayer(ctx context.Context, p models.Player) (*models.Player, error) {
	return s.t.insert(ctx, p)
}

func (s *PlayerStore) CreatePlayers(ctx context.Context, players []models.Player) ([]models.Player, error) {
	return s.t.insertAll(ctx, players)
}

func (s *PlayerStore) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	return s.t.get(ctx, id)
}

func (s *PlayerStore) ListAllPlayers(ctx context.Context) ([]models.Player, error) {
	return s.t.list(ctx)
}

func (s *PlayerStore) UpdatePlayer(ctx context.Context, p models.Player) (*models.Player, error) {
	return s.t.replace(ctx, p)
}

func (s *PlayerStore) DeletePlayer(ctx context.Context, id int64) error {
	return s.t.delete(ctx, id)
}

// ScheduleStore is an in-memory schedule repository
type ScheduleStore struct {
	t *table[models.Schedule]
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{t: newTable("schedule",
		func(s models.Schedule) int64 { return s.ID },
		func(s *models.Schedule, id int64) { s.ID = id },
		func(models.Schedule) *string { return nil },
		func(s *models.Schedule) {
			s.Stadium = nil
			s.HomeTeam = nil
			s.AwayTeam = nil
		},
	)}
}

func (s *ScheduleStore) CreateSchedule(ctx context.Context, sc models.Schedule) (*models.Schedule, error) {
	return s.t.insert(ctx, sc)
}

func (s *ScheduleStore) CreateSchedules(ctx context.Context, schedules []models.Schedule) ([]models.Schedule, error) {
	return s.t.insertAll(ctx, schedules)
}

func (s *ScheduleStore) GetSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	return s.t.get(ctx, id)
}

func (s *ScheduleStore) ListAllSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.t.list(ctx)
}

func (s *ScheduleStore) UpdateSchedule(ctx context.Context, sc models.Schedule) (*models.Schedule, error) {
	return s.t.replace(ctx, sc)
}

func (s *ScheduleStore) DeleteSchedule(ctx context.Context, id int64) error {
	return s.t.delete(ctx, id)
}
