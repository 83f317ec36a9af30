package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/schedule/db"
	"github.com/labzang/soccer/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateSchedule(ctx context.Context, arg db.CreateScheduleParams) (db.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (db.Schedule, error)
	ListSchedules(ctx context.Context) ([]db.Schedule, error)
	UpdateSchedule(ctx context.Context, arg db.UpdateScheduleParams) (db.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

// Repository implements schedule data access operations
type Repository struct {
	db      *sql.DB
	queries Querier
}

// NewRepository creates a new schedule repository
func NewRepository(querier Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: querier,
		db:      database,
	}
}

// CreateSchedule inserts a schedule
func (r *Repository) CreateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	row, err := r.queries.CreateSchedule(ctx, toCreateParams(s))
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return toModel(row), nil
}

// CreateSchedules inserts every schedule inside a single transaction
func (r *Repository) CreateSchedules(ctx context.Context, schedules []models.Schedule) ([]models.Schedule, error) {
	created := make([]models.Schedule, 0, len(schedules))
	err := sqlutil.Run(ctx, r.db, db.New(r.db).WithTx, func(q *db.Queries) error {
		for _, s := range schedules {
			row, err := q.CreateSchedule(ctx, toCreateParams(s))
			if err != nil {
				return fmt.Errorf("failed to create schedule: %w", err)
			}
			created = append(created, *toModel(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSchedule retrieves a schedule by ID
func (r *Repository) GetSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	row, err := r.queries.GetSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return toModel(row), nil
}

// ListAllSchedules retrieves all schedules ordered by id
func (r *Repository) ListAllSchedules(ctx context.Context) ([]models.Schedule, error) {
	rows, err := r.queries.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	schedules := make([]models.Schedule, len(rows))
	for i, row := range rows {
		schedules[i] = *toModel(row)
	}
	return schedules, nil
}

// UpdateSchedule writes every column of s
func (r *Repository) UpdateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	row, err := r.queries.UpdateSchedule(ctx, db.UpdateScheduleParams{
		ID:         s.ID,
		ScheDate:   sqlutil.ToSqlString(s.ScheDate),
		StadiumUk:  sqlutil.ToSqlString(s.StadiumUK),
		Gubun:      sqlutil.ToSqlString(s.Gubun),
		HometeamUk: sqlutil.ToSqlString(s.HomeTeamUK),
		AwayteamUk: sqlutil.ToSqlString(s.AwayTeamUK),
		HomeScore:  sqlutil.ToSqlInt32(s.HomeScore),
		AwayScore:  sqlutil.ToSqlInt32(s.AwayScore),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule %d: %w", s.ID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return toModel(row), nil
}

// DeleteSchedule deletes a schedule by ID
func (r *Repository) DeleteSchedule(ctx context.Context, id int64) error {
	if err := r.queries.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func toCreateParams(s models.Schedule) db.CreateScheduleParams {
	return db.CreateScheduleParams{
		ScheDate:   sqlutil.ToSqlString(s.ScheDate),
		StadiumUk:  sqlutil.ToSqlString(s.StadiumUK),
		Gubun:      sqlutil.ToSqlString(s.Gubun),
		HometeamUk: sqlutil.ToSqlString(s.HomeTeamUK),
		AwayteamUk: sqlutil.ToSqlString(s.AwayTeamUK),
		HomeScore:  sqlutil.ToSqlInt32(s.HomeScore),
		AwayScore:  sqlutil.ToSqlInt32(s.AwayScore),
	}
}

func toModel(row db.Schedule) *models.Schedule {
	return &models.Schedule{
		ID:         row.ID,
		ScheDate:   sqlutil.FromSqlStringPtr(row.ScheDate),
		StadiumUK:  sqlutil.FromSqlStringPtr(row.StadiumUk),
		Gubun:      sqlutil.FromSqlStringPtr(row.Gubun),
		HomeTeamUK: sqlutil.FromSqlStringPtr(row.HometeamUk),
		AwayTeamUK: sqlutil.FromSqlStringPtr(row.AwayteamUk),
		HomeScore:  sqlutil.FromSqlInt32(row.HomeScore),
		AwayScore:  sqlutil.FromSqlInt32(row.AwayScore),
	}
}
