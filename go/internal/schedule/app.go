package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/events"
	"github.com/labzang/soccer/go/internal/models"
)

// ScheduleRepository defines what the app layer needs from the repository
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	CreateSchedules(ctx context.Context, schedules []models.Schedule) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (*models.Schedule, error)
	ListAllSchedules(ctx context.Context) ([]models.Schedule, error)
	UpdateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

type StadiumLookup interface {
	GetStadiumByUK(ctx context.Context, stadiumUK string) (*models.Stadium, error)
}

type TeamLookup interface {
	GetTeamByUK(ctx context.Context, teamUK string) (*models.Team, error)
}

// ChangeEmitter receives a notification for every committed write
type ChangeEmitter interface {
	Emit(ctx context.Context, entity, action string, entityID int64, payload any)
}

// App handles schedule business logic
type App struct {
	repo     ScheduleRepository
	stadiums StadiumLookup
	teams    TeamLookup
	emitter  ChangeEmitter
}

// NewApp creates a new schedule App. stadiums and teams may be nil, in which
// case links are never resolved.
func NewApp(repo ScheduleRepository, stadiums StadiumLookup, teams TeamLookup, emitter ChangeEmitter) *App {
	return &App{
		repo:     repo,
		stadiums: stadiums,
		teams:    teams,
		emitter:  emitter,
	}
}

// GetSchedule retrieves a schedule by ID
func (a *App) GetSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	s, err := a.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s, nil
}

// ListAllSchedules retrieves all schedules
func (a *App) ListAllSchedules(ctx context.Context) ([]models.Schedule, error) {
	schedules, err := a.repo.ListAllSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// CreateSchedule stores a new schedule
func (a *App) CreateSchedule(ctx context.Context, req models.Schedule) (*models.Schedule, error) {
	links, err := a.resolveLinks(ctx, req, models.Schedule{})
	if err != nil {
		return nil, err
	}

	req.ID = 0
	s, err := a.repo.CreateSchedule(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	links.attach(s)

	log.Info().Int64("schedule_id", s.ID).Str("sche_date", deref(s.ScheDate)).Msg("created schedule")
	a.emit(ctx, events.ActionCreated, s)
	return s, nil
}

// CreateSchedules stores a batch of schedules atomically
func (a *App) CreateSchedules(ctx context.Context, reqs []models.Schedule) ([]models.Schedule, error) {
	resolved := make([]scheduleLinks, len(reqs))
	batch := make([]models.Schedule, len(reqs))
	for i, req := range reqs {
		links, err := a.resolveLinks(ctx, req, models.Schedule{})
		if err != nil {
			return nil, err
		}
		req.ID = 0
		batch[i] = req
		resolved[i] = links
	}

	created, err := a.repo.CreateSchedules(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedules: %w", err)
	}

	log.Info().Int("count", len(created)).Msg("created schedules")
	for i := range created {
		resolved[i].attach(&created[i])
		a.emit(ctx, events.ActionCreated, &created[i])
	}
	return created, nil
}

// UpdateSchedule merges req into the stored schedule. Scores follow the same
// rule as every other field: nil keeps the stored value.
func (a *App) UpdateSchedule(ctx context.Context, id int64, req models.Schedule) (*models.Schedule, error) {
	existing, err := a.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("schedule not found: %w", err)
	}

	links, err := a.resolveLinks(ctx, req, *existing)
	if err != nil {
		return nil, err
	}

	s, err := a.repo.UpdateSchedule(ctx, mergeSchedule(*existing, req))
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	links.attach(s)

	log.Info().Int64("schedule_id", s.ID).Msg("updated schedule")
	a.emit(ctx, events.ActionUpdated, s)
	return s, nil
}

// DeleteSchedule deletes a schedule by ID
func (a *App) DeleteSchedule(ctx context.Context, id int64) error {
	s, err := a.repo.GetSchedule(ctx, id)
	if err != nil {
		return fmt.Errorf("schedule not found: %w", err)
	}

	if err := a.repo.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	log.Info().Int64("schedule_id", id).Msg("deleted schedule")
	a.emit(ctx, events.ActionDeleted, s)
	return nil
}

// SearchSchedules matches keyword against the date and both team keys
// exactly as typed, and against the category ignoring case.
func (a *App) SearchSchedules(ctx context.Context, keyword string) ([]models.Schedule, error) {
	schedules, err := a.repo.ListAllSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search schedules: %w", err)
	}

	matched := make([]models.Schedule, 0)
	for _, s := range schedules {
		if models.Contains(s.ScheDate, keyword) ||
			models.ContainsFold(s.Gubun, keyword) ||
			models.Contains(s.HomeTeamUK, keyword) ||
			models.Contains(s.AwayTeamUK, keyword) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

type scheduleLinks struct {
	stadium  *models.Stadium
	homeTeam *models.Team
	awayTeam *models.Team
}

func (l scheduleLinks) attach(s *models.Schedule) {
	s.Stadium = l.stadium
	s.HomeTeam = l.homeTeam
	s.AwayTeam = l.awayTeam
}

// resolveLinks resolves the keys on req, falling back to the keys on current
// for any link whose new key is absent or unknown.
func (a *App) resolveLinks(ctx context.Context, req, current models.Schedule) (scheduleLinks, error) {
	var (
		links scheduleLinks
		err   error
	)
	if a.stadiums != nil {
		links.stadium, err = resolve(ctx, "stadium", a.stadiums.GetStadiumByUK, req.StadiumUK, current.StadiumUK)
		if err != nil {
			return links, err
		}
	}
	if a.teams != nil {
		links.homeTeam, err = resolve(ctx, "home team", a.teams.GetTeamByUK, req.HomeTeamUK, current.HomeTeamUK)
		if err != nil {
			return links, err
		}
		links.awayTeam, err = resolve(ctx, "away team", a.teams.GetTeamByUK, req.AwayTeamUK, current.AwayTeamUK)
		if err != nil {
			return links, err
		}
	}
	return links, nil
}

func resolve[T any](ctx context.Context, kind string, lookup func(context.Context, string) (*T, error), keys ...*string) (*T, error) {
	for _, key := range keys {
		if key == nil {
			continue
		}
		found, err := lookup(ctx, *key)
		if err == nil {
			return found, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve %s %q: %w", kind, *key, err)
		}
		log.Debug().Str("kind", kind).Str("key", *key).Msg("link key did not resolve")
	}
	return nil, nil
}

func (a *App) emit(ctx context.Context, action string, s *models.Schedule) {
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(ctx, events.EntitySchedule, action, s.ID, s)
}

func mergeSchedule(existing, req models.Schedule) models.Schedule {
	return models.Schedule{
		ID:         existing.ID,
		ScheDate:   models.Coalesce(req.ScheDate, existing.ScheDate),
		StadiumUK:  models.Coalesce(req.StadiumUK, existing.StadiumUK),
		Gubun:      models.Coalesce(req.Gubun, existing.Gubun),
		HomeTeamUK: models.Coalesce(req.HomeTeamUK, existing.HomeTeamUK),
		AwayTeamUK: models.Coalesce(req.AwayTeamUK, existing.AwayTeamUK),
		HomeScore:  models.Coalesce(req.HomeScore, existing.HomeScore),
		AwayScore:  models.Coalesce(req.AwayScore, existing.AwayScore),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
