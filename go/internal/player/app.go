package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/events"
	"github.com/labzang/soccer/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, p models.Player) (*models.Player, error)
	CreatePlayers(ctx context.Context, players []models.Player) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	ListAllPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, p models.Player) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int64) error
}

type TeamApp interface {
	GetTeamByUK(ctx context.Context, teamUK string) (*models.Team, error)
}

// ChangeEmitter receives a notification for every committed write
type ChangeEmitter interface {
	Emit(ctx context.Context, entity, action string, entityID int64, payload any)
}

// App handles player business logic
type App struct {
	repo    PlayerRepository
	teamApp TeamApp
	emitter ChangeEmitter
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, teamApp TeamApp, emitter ChangeEmitter) *App {
	return &App{
		repo:    repo,
		teamApp: teamApp,
		emitter: emitter,
	}
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	p, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// ListAllPlayers retrieves every player
func (a *App) ListAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := a.repo.ListAllPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// CreatePlayer stores a new player and links its team when team_uk resolves
func (a *App) CreatePlayer(ctx context.Context, req models.Player) (*models.Player, error) {
	team, err := a.resolveTeam(ctx, req.TeamUK, nil)
	if err != nil {
		return nil, err
	}

	req.ID = 0
	p, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	p.Team = team

	log.Info().Int64("player_id", p.ID).Str("team_uk", deref(p.TeamUK)).Msg("created player")
	a.emit(ctx, events.ActionCreated, p)
	return p, nil
}

// CreatePlayers stores a batch of players; nothing is stored if any insert fails
func (a *App) CreatePlayers(ctx context.Context, reqs []models.Player) ([]models.Player, error) {
	teams := make([]*models.Team, len(reqs))
	batch := make([]models.Player, len(reqs))
	for i, req := range reqs {
		team, err := a.resolveTeam(ctx, req.TeamUK, nil)
		if err != nil {
			return nil, err
		}
		req.ID = 0
		batch[i] = req
		teams[i] = team
	}

	created, err := a.repo.CreatePlayers(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create players: %w", err)
	}

	log.Info().Int("count", len(created)).Msg("created players")
	for i := range created {
		created[i].Team = teams[i]
		a.emit(ctx, events.ActionCreated, &created[i])
	}
	return created, nil
}

// UpdatePlayer merges req into the stored player
func (a *App) UpdatePlayer(ctx context.Context, id int64, req models.Player) (*models.Player, error) {
	existing, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	team, err := a.resolveTeam(ctx, req.TeamUK, existing.TeamUK)
	if err != nil {
		return nil, err
	}

	p, err := a.repo.UpdatePlayer(ctx, mergePlayer(*existing, req))
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	p.Team = team

	log.Info().Int64("player_id", p.ID).Msg("updated player")
	a.emit(ctx, events.ActionUpdated, p)
	return p, nil
}

// DeletePlayer deletes a player by ID
func (a *App) DeletePlayer(ctx context.Context, id int64) error {
	p, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("player not found: %w", err)
	}

	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	log.Info().Int64("player_id", id).Msg("deleted player")
	a.emit(ctx, events.ActionDeleted, p)
	return nil
}

// SearchPlayers matches keyword against the Korean name, English name and
// nickname, ignoring case.
func (a *App) SearchPlayers(ctx context.Context, keyword string) ([]models.Player, error) {
	players, err := a.repo.ListAllPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	matched := make([]models.Player, 0)
	for _, p := range players {
		if models.ContainsFold(p.PlayerName, keyword) ||
			models.ContainsFold(p.EPlayerName, keyword) ||
			models.ContainsFold(p.Nickname, keyword) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// resolveTeam looks up incoming first and then current. A key that matches
// no team leaves the player unlinked.
func (a *App) resolveTeam(ctx context.Context, incoming, current *string) (*models.Team, error) {
	if a.teamApp == nil {
		return nil, nil
	}
	for _, key := range []*string{incoming, current} {
		if key == nil {
			continue
		}
		team, err := a.teamApp.GetTeamByUK(ctx, *key)
		switch {
		case err == nil:
			return team, nil
		case errors.Is(err, models.ErrNotFound):
			log.Debug().Str("team_uk", *key).Msg("team key did not resolve")
		default:
			return nil, fmt.Errorf("failed to resolve team %q: %w", *key, err)
		}
	}
	return nil, nil
}

func (a *App) emit(ctx context.Context, action string, p *models.Player) {
	if a.emitter != nil {
		a.emitter.Emit(ctx, events.EntityPlayer, action, p.ID, p)
	}
}

func mergePlayer(existing, req models.Player) models.Player {
	return models.Player{
		ID:          existing.ID,
		PlayerUK:    models.Coalesce(req.PlayerUK, existing.PlayerUK),
		PlayerName:  models.Coalesce(req.PlayerName, existing.PlayerName),
		EPlayerName: models.Coalesce(req.EPlayerName, existing.EPlayerName),
		Nickname:    models.Coalesce(req.Nickname, existing.Nickname),
		JoinYYYY:    models.Coalesce(req.JoinYYYY, existing.JoinYYYY),
		Position:    models.Coalesce(req.Position, existing.Position),
		BackNo:      models.Coalesce(req.BackNo, existing.BackNo),
		Nation:      models.Coalesce(req.Nation, existing.Nation),
		BirthDate:   models.Coalesce(req.BirthDate, existing.BirthDate),
		Solar:       models.Coalesce(req.Solar, existing.Solar),
		Height:      models.Coalesce(req.Height, existing.Height),
		Weight:      models.Coalesce(req.Weight, existing.Weight),
		TeamUK:      models.Coalesce(req.TeamUK, existing.TeamUK),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
