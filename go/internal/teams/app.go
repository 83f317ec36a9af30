package teams

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/events"
	"github.com/labzang/soccer/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	CreateTeams(ctx context.Context, teams []models.Team) ([]models.Team, error)
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	GetTeamByUK(ctx context.Context, teamUK string) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// StadiumLookup resolves a stadium business key
type StadiumLookup interface {
	GetStadiumByUK(ctx context.Context, stadiumUK string) (*models.Stadium, error)
}

// ChangeEmitter receives a notification for every committed write
type ChangeEmitter interface {
	Emit(ctx context.Context, entity, action string, entityID int64, payload any)
}

// App handles teams business logic
type App struct {
	repo     TeamsRepository
	stadiums StadiumLookup
	emitter  ChangeEmitter
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, stadiums StadiumLookup, emitter ChangeEmitter) *App {
	return &App{
		repo:     repo,
		stadiums: stadiums,
		emitter:  emitter,
	}
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetTeamByUK retrieves a team by its business key
func (a *App) GetTeamByUK(ctx context.Context, teamUK string) (*models.Team, error) {
	team, err := a.repo.GetTeamByUK(ctx, teamUK)
	if err != nil {
		return nil, fmt.Errorf("failed to get team by key: %w", err)
	}
	return team, nil
}

// ListAllTeams retrieves all teams
func (a *App) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all teams: %w", err)
	}
	return teams, nil
}

// CreateTeam creates a new team, linking its stadium when the key resolves
func (a *App) CreateTeam(ctx context.Context, req models.Team) (*models.Team, error) {
	stadium, err := a.linkStadium(ctx, req.StadiumUK, nil)
	if err != nil {
		return nil, err
	}

	req.ID = 0
	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Stadium = stadium

	log.Info().Int64("team_id", team.ID).Str("team_uk", deref(team.TeamUK)).Msg("created team")
	a.emit(ctx, events.ActionCreated, team)
	return team, nil
}

// CreateTeams creates a batch of teams atomically
func (a *App) CreateTeams(ctx context.Context, reqs []models.Team) ([]models.Team, error) {
	batch := make([]models.Team, len(reqs))
	links := make([]*models.Stadium, len(reqs))
	for i, req := range reqs {
		stadium, err := a.linkStadium(ctx, req.StadiumUK, nil)
		if err != nil {
			return nil, err
		}
		req.ID = 0
		batch[i] = req
		links[i] = stadium
	}

	created, err := a.repo.CreateTeams(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create teams: %w", err)
	}

	log.Info().Int("count", len(created)).Msg("created teams")
	for i := range created {
		created[i].Stadium = links[i]
		a.emit(ctx, events.ActionCreated, &created[i])
	}
	return created, nil
}

// UpdateTeam merges the supplied fields of req over the stored team.
// The stadium link is re-resolved only when req carries a stadium key.
func (a *App) UpdateTeam(ctx context.Context, id int64, req models.Team) (*models.Team, error) {
	existing, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("team not found: %w", err)
	}

	stadium, err := a.linkStadium(ctx, req.StadiumUK, existing.StadiumUK)
	if err != nil {
		return nil, err
	}

	team, err := a.repo.UpdateTeam(ctx, mergeTeam(*existing, req))
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	team.Stadium = stadium

	log.Info().Int64("team_id", team.ID).Str("team_uk", deref(team.TeamUK)).Msg("updated team")
	a.emit(ctx, events.ActionUpdated, team)
	return team, nil
}

// DeleteTeam deletes a team by ID
func (a *App) DeleteTeam(ctx context.Context, id int64) error {
	// Verify team exists
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("team not found: %w", err)
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Int64("team_id", id).Str("team_uk", deref(team.TeamUK)).Msg("deleted team")
	a.emit(ctx, events.ActionDeleted, team)
	return nil
}

// SearchTeams returns teams whose name, English name, region or owner contains keyword, ignoring case
func (a *App) SearchTeams(ctx context.Context, keyword string) ([]models.Team, error) {
	teams, err := a.repo.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}
	return a.applyKeyword(teams, keyword), nil
}

// applyKeyword filters teams client-side
func (a *App) applyKeyword(teams []models.Team, keyword string) []models.Team {
	filtered := make([]models.Team, 0)
	for _, team := range teams {
		if models.ContainsFold(team.TeamName, keyword) ||
			models.ContainsFold(team.ETeamName, keyword) ||
			models.ContainsFold(team.RegionName, keyword) ||
			models.ContainsFold(team.Owner, keyword) {
			filtered = append(filtered, team)
		}
	}
	return filtered
}

// linkStadium resolves incoming, falling back to current when incoming is
// absent or does not match any stadium. Unknown keys are not an error.
func (a *App) linkStadium(ctx context.Context, incoming, current *string) (*models.Stadium, error) {
	for _, key := range []*string{incoming, current} {
		if key == nil || a.stadiums == nil {
			continue
		}
		stadium, err := a.stadiums.GetStadiumByUK(ctx, *key)
		if err == nil {
			return stadium, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve stadium %q: %w", *key, err)
		}
		log.Debug().Str("stadium_uk", *key).Msg("stadium key did not resolve")
	}
	return nil, nil
}

func (a *App) emit(ctx context.Context, action string, team *models.Team) {
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(ctx, events.EntityTeam, action, team.ID, team)
}

// mergeTeam keeps existing values for every field req leaves nil
func mergeTeam(existing, req models.Team) models.Team {
	return models.Team{
		ID:         existing.ID,
		TeamUK:     models.Coalesce(req.TeamUK, existing.TeamUK),
		RegionName: models.Coalesce(req.RegionName, existing.RegionName),
		TeamName:   models.Coalesce(req.TeamName, existing.TeamName),
		ETeamName:  models.Coalesce(req.ETeamName, existing.ETeamName),
		OrigYYYY:   models.Coalesce(req.OrigYYYY, existing.OrigYYYY),
		ZipCode1:   models.Coalesce(req.ZipCode1, existing.ZipCode1),
		ZipCode2:   models.Coalesce(req.ZipCode2, existing.ZipCode2),
		Address:    models.Coalesce(req.Address, existing.Address),
		DDD:        models.Coalesce(req.DDD, existing.DDD),
		Tel:        models.Coalesce(req.Tel, existing.Tel),
		Fax:        models.Coalesce(req.Fax, existing.Fax),
		Homepage:   models.Coalesce(req.Homepage, existing.Homepage),
		Owner:      models.Coalesce(req.Owner, existing.Owner),
		StadiumUK:  models.Coalesce(req.StadiumUK, existing.StadiumUK),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
