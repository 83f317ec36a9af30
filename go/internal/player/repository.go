package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/player/db"
	"github.com/labzang/soccer/go/internal/sqlutil"
)

// Repository handles player persistence
type Repository struct {
	queries db.Querier
	db      *sql.DB
}

// NewRepository creates a new player repository
func NewRepository(queries db.Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreatePlayer inserts a single player
func (r *Repository) CreatePlayer(ctx context.Context, p models.Player) (*models.Player, error) {
	dbPlayer, err := r.queries.CreatePlayer(ctx, createParams(p))
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return dbPlayerToDomain(dbPlayer), nil
}

// CreatePlayers inserts every player in one transaction
func (r *Repository) CreatePlayers(ctx context.Context, players []models.Player) ([]models.Player, error) {
	// Start a transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // Ignore error since Commit might have succeeded
	}()

	qtx := db.New(r.db).WithTx(tx)

	created := make([]models.Player, 0, len(players))
	for _, p := range players {
		dbPlayer, err := qtx.CreatePlayer(ctx, createParams(p))
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		created = append(created, *dbPlayerToDomain(dbPlayer))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	dbPlayer, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToDomain(dbPlayer), nil
}

// ListAllPlayers retrieves all players ordered by id
func (r *Repository) ListAllPlayers(ctx context.Context) ([]models.Player, error) {
	dbPlayers, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]models.Player, 0, len(dbPlayers))
	for _, p := range dbPlayers {
		players = append(players, *dbPlayerToDomain(p))
	}
	return players, nil
}

// UpdatePlayer overwrites every column of the player row
func (r *Repository) UpdatePlayer(ctx context.Context, p models.Player) (*models.Player, error) {
	dbPlayer, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{
		ID:          p.ID,
		PlayerUk:    sqlutil.ToSqlString(p.PlayerUK),
		PlayerName:  sqlutil.ToSqlString(p.PlayerName),
		EPlayerName: sqlutil.ToSqlString(p.EPlayerName),
		Nickname:    sqlutil.ToSqlString(p.Nickname),
		JoinYyyy:    sqlutil.ToSqlString(p.JoinYYYY),
		Position:    sqlutil.ToSqlString(p.Position),
		BackNo:      sqlutil.ToSqlString(p.BackNo),
		Nation:      sqlutil.ToSqlString(p.Nation),
		BirthDate:   sqlutil.ToSqlString(p.BirthDate),
		Solar:       sqlutil.ToSqlString(p.Solar),
		Height:      sqlutil.ToSqlString(p.Height),
		Weight:      sqlutil.ToSqlString(p.Weight),
		TeamUk:      sqlutil.ToSqlString(p.TeamUK),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %d: %w", p.ID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return dbPlayerToDomain(dbPlayer), nil
}

// DeletePlayer deletes a player by ID
func (r *Repository) DeletePlayer(ctx context.Context, id int64) error {
	if err := r.queries.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

func createParams(p models.Player) db.CreatePlayerParams {
	return db.CreatePlayerParams{
		PlayerUk:    sqlutil.ToSqlString(p.PlayerUK),
		PlayerName:  sqlutil.ToSqlString(p.PlayerName),
		EPlayerName: sqlutil.ToSqlString(p.EPlayerName),
		Nickname:    sqlutil.ToSqlString(p.Nickname),
		JoinYyyy:    sqlutil.ToSqlString(p.JoinYYYY),
		Position:    sqlutil.ToSqlString(p.Position),
		BackNo:      sqlutil.ToSqlString(p.BackNo),
		Nation:      sqlutil.ToSqlString(p.Nation),
		BirthDate:   sqlutil.ToSqlString(p.BirthDate),
		Solar:       sqlutil.ToSqlString(p.Solar),
		Height:      sqlutil.ToSqlString(p.Height),
		Weight:      sqlutil.ToSqlString(p.Weight),
		TeamUk:      sqlutil.ToSqlString(p.TeamUK),
	}
}

// Helper function to convert database player to domain model
func dbPlayerToDomain(p db.Player) *models.Player {
	return &models.Player{
		ID:          p.ID,
		PlayerUK:    sqlutil.FromSqlStringPtr(p.PlayerUk),
		PlayerName:  sqlutil.FromSqlStringPtr(p.PlayerName),
		EPlayerName: sqlutil.FromSqlStringPtr(p.EPlayerName),
		Nickname:    sqlutil.FromSqlStringPtr(p.Nickname),
		JoinYYYY:    sqlutil.FromSqlStringPtr(p.JoinYyyy),
		Position:    sqlutil.FromSqlStringPtr(p.Position),
		BackNo:      sqlutil.FromSqlStringPtr(p.BackNo),
		Nation:      sqlutil.FromSqlStringPtr(p.Nation),
		BirthDate:   sqlutil.FromSqlStringPtr(p.BirthDate),
		Solar:       sqlutil.FromSqlStringPtr(p.Solar),
		Height:      sqlutil.FromSqlStringPtr(p.Height),
		Weight:      sqlutil.FromSqlStringPtr(p.Weight),
		TeamUK:      sqlutil.FromSqlStringPtr(p.TeamUk),
	}
}
