package stadium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/sqlutil"
	"github.com/labzang/soccer/go/internal/stadium/db"
)

// Repository implements stadium data access operations
type Repository struct {
	db      *sql.DB
	queries db.Querier
}

// NewRepository creates a new stadium repository
func NewRepository(queries db.Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreateStadium inserts a stadium
func (r *Repository) CreateStadium(ctx context.Context, s models.Stadium) (*models.Stadium, error) {
	dbStadium, err := r.queries.CreateStadium(ctx, createParams(s))
	if err != nil {
		return nil, fmt.Errorf("failed to create stadium: %w", err)
	}
	return dbStadiumToModel(dbStadium), nil
}

// CreateStadiums inserts all stadiums in one transaction
func (r *Repository) CreateStadiums(ctx context.Context, stadiums []models.Stadium) ([]models.Stadium, error) {
	created := make([]models.Stadium, 0, len(stadiums))
	err := sqlutil.Run(ctx, r.db, db.New(r.db).WithTx, func(q *db.Queries) error {
		for _, s := range stadiums {
			dbStadium, err := q.CreateStadium(ctx, createParams(s))
			if err != nil {
				return fmt.Errorf("failed to create stadium: %w", err)
			}
			created = append(created, *dbStadiumToModel(dbStadium))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetStadium retrieves a stadium by ID
func (r *Repository) GetStadium(ctx context.Context, id int64) (*models.Stadium, error) {
	dbStadium, err := r.queries.GetStadium(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stadium %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get stadium: %w", err)
	}
	return dbStadiumToModel(dbStadium), nil
}

// GetStadiumByUK retrieves a stadium by its business key
func (r *Repository) GetStadiumByUK(ctx context.Context, stadiumUK string) (*models.Stadium, error) {
	dbStadium, err := r.queries.GetStadiumByUk(ctx, stadiumUK)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stadium %q: %w", stadiumUK, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get stadium by key: %w", err)
	}
	return dbStadiumToModel(dbStadium), nil
}

// ListAllStadiums retrieves all stadiums ordered by ID
func (r *Repository) ListAllStadiums(ctx context.Context) ([]models.Stadium, error) {
	dbStadiums, err := r.queries.ListStadiums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums: %w", err)
	}

	stadiums := make([]models.Stadium, len(dbStadiums))
	for i, dbStadium := range dbStadiums {
		stadiums[i] = *dbStadiumToModel(dbStadium)
	}
	return stadiums, nil
}

// UpdateStadium overwrites every column of the stadium with s
func (r *Repository) UpdateStadium(ctx context.Context, s models.Stadium) (*models.Stadium, error) {
	dbStadium, err := r.queries.UpdateStadium(ctx, db.UpdateStadiumParams{
		ID:          s.ID,
		StadiumUk:   sqlutil.ToSqlString(s.StadiumUK),
		StadiumName: sqlutil.ToSqlString(s.StadiumName),
		HometeamUk:  sqlutil.ToSqlString(s.HomeTeamUK),
		SeatCount:   sqlutil.ToSqlString(s.SeatCount),
		Address:     sqlutil.ToSqlString(s.Address),
		Ddd:         sqlutil.ToSqlString(s.DDD),
		Tel:         sqlutil.ToSqlString(s.Tel),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stadium %d: %w", s.ID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update stadium: %w", err)
	}
	return dbStadiumToModel(dbStadium), nil
}

// DeleteStadium deletes a stadium by ID
func (r *Repository) DeleteStadium(ctx context.Context, id int64) error {
	if err := r.queries.DeleteStadium(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stadium: %w", err)
	}
	return nil
}

func createParams(s models.Stadium) db.CreateStadiumParams {
	return db.CreateStadiumParams{
		StadiumUk:   sqlutil.ToSqlString(s.StadiumUK),
		StadiumName: sqlutil.ToSqlString(s.StadiumName),
		HometeamUk:  sqlutil.ToSqlString(s.HomeTeamUK),
		SeatCount:   sqlutil.ToSqlString(s.SeatCount),
		Address:     sqlutil.ToSqlString(s.Address),
		Ddd:         sqlutil.ToSqlString(s.DDD),
		Tel:         sqlutil.ToSqlString(s.Tel),
	}
}

// dbStadiumToModel converts a database stadium to the API model
func dbStadiumToModel(s db.Stadium) *models.Stadium {
	return &models.Stadium{
		ID:          s.ID,
		StadiumUK:   sqlutil.FromSqlStringPtr(s.StadiumUk),
		StadiumName: sqlutil.FromSqlStringPtr(s.StadiumName),
		HomeTeamUK:  sqlutil.FromSqlStringPtr(s.HometeamUk),
		SeatCount:   sqlutil.FromSqlStringPtr(s.SeatCount),
		Address:     sqlutil.FromSqlStringPtr(s.Address),
		DDD:         sqlutil.FromSqlStringPtr(s.Ddd),
		Tel:         sqlutil.FromSqlStringPtr(s.Tel),
	}
}
