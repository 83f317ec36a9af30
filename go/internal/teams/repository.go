package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/sqlutil"
	"github.com/labzang/soccer/go/internal/teams/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id int64) (db.Team, error)
	GetTeamByUk(ctx context.Context, teamUk string) (db.Team, error)
	ListAllTeams(ctx context.Context) ([]db.Team, error)
	UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// Repository implements team data access operations
type Repository struct {
	db      *sql.DB
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: querier,
		db:      database,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, r.teamToCreateParams(team))
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// CreateTeams creates every team inside a single transaction
func (r *Repository) CreateTeams(ctx context.Context, teams []models.Team) ([]models.Team, error) {
	created := make([]models.Team, 0, len(teams))
	err := sqlutil.Run(ctx, r.db, db.New(r.db).WithTx, func(q *db.Queries) error {
		for _, team := range teams {
			dbTeam, err := q.CreateTeam(ctx, r.teamToCreateParams(team))
			if err != nil {
				return fmt.Errorf("failed to create team: %w", err)
			}
			created = append(created, *r.dbTeamToModel(dbTeam))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// GetTeamByUK retrieves a team by its business key
func (r *Repository) GetTeamByUK(ctx context.Context, teamUK string) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeamByUk(ctx, teamUK)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %q: %w", teamUK, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team by key: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// ListAllTeams retrieves all teams
func (r *Repository) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *r.dbTeamToModel(dbTeam)
	}

	return teams, nil
}

// UpdateTeam writes every column of team
func (r *Repository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	dbTeam, err := r.queries.UpdateTeam(ctx, r.teamToUpdateParams(team))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %d: %w", team.ID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// DeleteTeam deletes a team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id int64) error {
	if err := r.queries.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// teamToCreateParams converts a Team model to sqlc params
func (r *Repository) teamToCreateParams(team models.Team) db.CreateTeamParams {
	return db.CreateTeamParams{
		TeamUk:     sqlutil.ToSqlString(team.TeamUK),
		RegionName: sqlutil.ToSqlString(team.RegionName),
		TeamName:   sqlutil.ToSqlString(team.TeamName),
		ETeamName:  sqlutil.ToSqlString(team.ETeamName),
		OrigYyyy:   sqlutil.ToSqlString(team.OrigYYYY),
		ZipCode1:   sqlutil.ToSqlString(team.ZipCode1),
		ZipCode2:   sqlutil.ToSqlString(team.ZipCode2),
		Address:    sqlutil.ToSqlString(team.Address),
		Ddd:        sqlutil.ToSqlString(team.DDD),
		Tel:        sqlutil.ToSqlString(team.Tel),
		Fax:        sqlutil.ToSqlString(team.Fax),
		Homepage:   sqlutil.ToSqlString(team.Homepage),
		Owner:      sqlutil.ToSqlString(team.Owner),
		StadiumUk:  sqlutil.ToSqlString(team.StadiumUK),
	}
}

// teamToUpdateParams converts a Team model to sqlc params
func (r *Repository) teamToUpdateParams(team models.Team) db.UpdateTeamParams {
	p := r.teamToCreateParams(team)
	return db.UpdateTeamParams{
		ID:         team.ID,
		TeamUk:     p.TeamUk,
		RegionName: p.RegionName,
		TeamName:   p.TeamName,
		ETeamName:  p.ETeamName,
		OrigYyyy:   p.OrigYyyy,
		ZipCode1:   p.ZipCode1,
		ZipCode2:   p.ZipCode2,
		Address:    p.Address,
		Ddd:        p.Ddd,
		Tel:        p.Tel,
		Fax:        p.Fax,
		Homepage:   p.Homepage,
		Owner:      p.Owner,
		StadiumUk:  p.StadiumUk,
	}
}

// dbTeamToModel converts a database team to domain model
func (r *Repository) dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:         dbTeam.ID,
		TeamUK:     sqlutil.FromSqlStringPtr(dbTeam.TeamUk),
		RegionName: sqlutil.FromSqlStringPtr(dbTeam.RegionName),
		TeamName:   sqlutil.FromSqlStringPtr(dbTeam.TeamName),
		ETeamName:  sqlutil.FromSqlStringPtr(dbTeam.ETeamName),
		OrigYYYY:   sqlutil.FromSqlStringPtr(dbTeam.OrigYyyy),
		ZipCode1:   sqlutil.FromSqlStringPtr(dbTeam.ZipCode1),
		ZipCode2:   sqlutil.FromSqlStringPtr(dbTeam.ZipCode2),
		Address:    sqlutil.FromSqlStringPtr(dbTeam.Address),
		DDD:        sqlutil.FromSqlStringPtr(dbTeam.Ddd),
		Tel:        sqlutil.FromSqlStringPtr(dbTeam.Tel),
		Fax:        sqlutil.FromSqlStringPtr(dbTeam.Fax),
		Homepage:   sqlutil.FromSqlStringPtr(dbTeam.Homepage),
		Owner:      sqlutil.FromSqlStringPtr(dbTeam.Owner),
		StadiumUK:  sqlutil.FromSqlStringPtr(dbTeam.StadiumUk),
	}
}
