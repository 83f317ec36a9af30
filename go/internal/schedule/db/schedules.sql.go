package db

import (
	"context"
	"database/sql"
)

const scheduleColumns = `id, sche_date, stadium_uk, gubun, hometeam_uk, awayteam_uk, home_score, away_score`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (Schedule, error) {
	var i Schedule
	err := row.Scan(
		&i.ID,
		&i.ScheDate,
		&i.StadiumUk,
		&i.Gubun,
		&i.HometeamUk,
		&i.AwayteamUk,
		&i.HomeScore,
		&i.AwayScore,
	)
	return i, err
}

const createSchedule = `-- name: CreateSchedule :one
INSERT INTO schedules (
  sche_date, stadium_uk, gubun, hometeam_uk, awayteam_uk, home_score, away_score
) VALUES (
  $1, $2, $3, $4, $5, $6, $7
)
RETURNING ` + scheduleColumns

type CreateScheduleParams struct {
	ScheDate   sql.NullString
	StadiumUk  sql.NullString
	Gubun      sql.NullString
	HometeamUk sql.NullString
	AwayteamUk sql.NullString
	HomeScore  sql.NullInt32
	AwayScore  sql.NullInt32
}

func (q *Queries) CreateSchedule(ctx context.Context, arg CreateScheduleParams) (Schedule, error) {
	row := q.db.QueryRowContext(ctx, createSchedule,
		arg.ScheDate,
		arg.StadiumUk,
		arg.Gubun,
		arg.HometeamUk,
		arg.AwayteamUk,
		arg.HomeScore,
		arg.AwayScore,
	)
	return scanSchedule(row)
}

const deleteSchedule = `-- name: DeleteSchedule :exec
DELETE FROM schedules WHERE id = $1
`

func (q *Queries) DeleteSchedule(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSchedule, id)
	return err
}

const getSchedule = `-- name: GetSchedule :one
SELECT ` + scheduleColumns + ` FROM schedules
WHERE id = $1
`

func (q *Queries) GetSchedule(ctx context.Context, id int64) (Schedule, error) {
	row := q.db.QueryRowContext(ctx, getSchedule, id)
	return scanSchedule(row)
}

const listSchedules = `-- name: ListSchedules :many
SELECT ` + scheduleColumns + ` FROM schedules
ORDER BY id
`

func (q *Queries) ListSchedules(ctx context.Context) ([]Schedule, error) {
	rows, err := q.db.QueryContext(ctx, listSchedules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Schedule
	for rows.Next() {
		i, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateSchedule = `-- name: UpdateSchedule :one
UPDATE schedules SET
  sche_date = $2,
  stadium_uk = $3,
  gubun = $4,
  hometeam_uk = $5,
  awayteam_uk = $6,
  home_score = $7,
  away_score = $8
WHERE id = $1
RETURNING ` + scheduleColumns

type UpdateScheduleParams struct {
	ID         int64
	ScheDate   sql.NullString
	StadiumUk  sql.NullString
	Gubun      sql.NullString
	HometeamUk sql.NullString
	AwayteamUk sql.NullString
	HomeScore  sql.NullInt32
	AwayScore  sql.NullInt32
}

func (q *Queries) UpdateSchedule(ctx context.Context, arg UpdateScheduleParams) (Schedule, error) {
	row := q.db.QueryRowContext(ctx, updateSchedule,
		arg.ID,
		arg.ScheDate,
		arg.StadiumUk,
		arg.Gubun,
		arg.HometeamUk,
		arg.AwayteamUk,
		arg.HomeScore,
		arg.AwayScore,
	)
	return scanSchedule(row)
}
