package stadium

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/events"
	"github.com/labzang/soccer/go/internal/models"
)

// StadiumRepository defines what the app layer needs from the repository
type StadiumRepository interface {
	CreateStadium(ctx context.Context, s models.Stadium) (*models.Stadium, error)
	CreateStadiums(ctx context.Context, stadiums []models.Stadium) ([]models.Stadium, error)
	GetStadium(ctx context.Context, id int64) (*models.Stadium, error)
	GetStadiumByUK(ctx context.Context, stadiumUK string) (*models.Stadium, error)
	ListAllStadiums(ctx context.Context) ([]models.Stadium, error)
	UpdateStadium(ctx context.Context, s models.Stadium) (*models.Stadium, error)
	DeleteStadium(ctx context.Context, id int64) error
}

// ChangeEmitter receives a notification for every committed write
type ChangeEmitter interface {
	Emit(ctx context.Context, entity, action string, entityID int64, payload any)
}

// App handles stadium business logic
type App struct {
	repo    StadiumRepository
	emitter ChangeEmitter
}

// NewApp creates a new stadium App
func NewApp(repo StadiumRepository, emitter ChangeEmitter) *App {
	return &App{
		repo:    repo,
		emitter: emitter,
	}
}

// GetStadium retrieves a stadium by ID
func (a *App) GetStadium(ctx context.Context, id int64) (*models.Stadium, error) {
	s, err := a.repo.GetStadium(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stadium: %w", err)
	}
	return s, nil
}

// GetStadiumByUK retrieves a stadium by its business key
func (a *App) GetStadiumByUK(ctx context.Context, stadiumUK string) (*models.Stadium, error) {
	s, err := a.repo.GetStadiumByUK(ctx, stadiumUK)
	if err != nil {
		return nil, fmt.Errorf("failed to get stadium by key: %w", err)
	}
	return s, nil
}

// ListAllStadiums retrieves all stadiums
func (a *App) ListAllStadiums(ctx context.Context) ([]models.Stadium, error) {
	stadiums, err := a.repo.ListAllStadiums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums: %w", err)
	}
	return stadiums, nil
}

// CreateStadium stores a new stadium
func (a *App) CreateStadium(ctx context.Context, req models.Stadium) (*models.Stadium, error) {
	req.ID = 0
	s, err := a.repo.CreateStadium(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create stadium: %w", err)
	}

	log.Info().Int64("stadium_id", s.ID).Msg("created stadium")
	a.emit(ctx, events.ActionCreated, s)
	return s, nil
}

// CreateStadiums stores a batch of stadiums atomically
func (a *App) CreateStadiums(ctx context.Context, reqs []models.Stadium) ([]models.Stadium, error) {
	batch := make([]models.Stadium, len(reqs))
	for i, req := range reqs {
		req.ID = 0
		batch[i] = req
	}

	created, err := a.repo.CreateStadiums(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create stadiums: %w", err)
	}

	log.Info().Int("count", len(created)).Msg("created stadiums")
	for i := range created {
		a.emit(ctx, events.ActionCreated, &created[i])
	}
	return created, nil
}

// UpdateStadium merges the supplied fields of req over the stored stadium
func (a *App) UpdateStadium(ctx context.Context, id int64, req models.Stadium) (*models.Stadium, error) {
	existing, err := a.repo.GetStadium(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("stadium not found: %w", err)
	}

	merged := mergeStadium(*existing, req)
	s, err := a.repo.UpdateStadium(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update stadium: %w", err)
	}

	log.Info().Int64("stadium_id", s.ID).Msg("updated stadium")
	a.emit(ctx, events.ActionUpdated, s)
	return s, nil
}

// DeleteStadium deletes a stadium by ID
func (a *App) DeleteStadium(ctx context.Context, id int64) error {
	s, err := a.repo.GetStadium(ctx, id)
	if err != nil {
		return fmt.Errorf("stadium not found: %w", err)
	}

	if err := a.repo.DeleteStadium(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stadium: %w", err)
	}

	log.Info().Int64("stadium_id", id).Msg("deleted stadium")
	a.emit(ctx, events.ActionDeleted, s)
	return nil
}

// SearchStadiums returns stadiums whose name or address contains keyword, ignoring case
func (a *App) SearchStadiums(ctx context.Context, keyword string) ([]models.Stadium, error) {
	stadiums, err := a.repo.ListAllStadiums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search stadiums: %w", err)
	}

	matches := make([]models.Stadium, 0)
	for _, s := range stadiums {
		if models.ContainsFold(s.StadiumName, keyword) || models.ContainsFold(s.Address, keyword) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (a *App) emit(ctx context.Context, action string, s *models.Stadium) {
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(ctx, events.EntityStadium, action, s.ID, s)
}

// mergeStadium keeps existing values for every field req leaves nil
func mergeStadium(existing, req models.Stadium) models.Stadium {
	return models.Stadium{
		ID:          existing.ID,
		StadiumUK:   models.Coalesce(req.StadiumUK, existing.StadiumUK),
		StadiumName: models.Coalesce(req.StadiumName, existing.StadiumName),
		HomeTeamUK:  models.Coalesce(req.HomeTeamUK, existing.HomeTeamUK),
		SeatCount:   models.Coalesce(req.SeatCount, existing.SeatCount),
		Address:     models.Coalesce(req.Address, existing.Address),
		DDD:         models.Coalesce(req.DDD, existing.DDD),
		Tel:         models.Coalesce(req.Tel, existing.Tel),
	}
}
