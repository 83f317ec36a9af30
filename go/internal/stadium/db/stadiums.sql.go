package db

import (
	"context"
	"database/sql"
)

const stadiumColumns = `id, stadium_uk, stadium_name, hometeam_uk, seat_count, address, ddd, tel`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStadium(row rowScanner) (Stadium, error) {
	var i Stadium
	err := row.Scan(
		&i.ID,
		&i.StadiumUk,
		&i.StadiumName,
		&i.HometeamUk,
		&i.SeatCount,
		&i.Address,
		&i.Ddd,
		&i.Tel,
	)
	return i, err
}

const createStadium = `-- name: CreateStadium :one
INSERT INTO stadiums (
  stadium_uk, stadium_name, hometeam_uk, seat_count, address, ddd, tel
) VALUES (
  $1, $2, $3, $4, $5, $6, $7
)
RETURNING ` + stadiumColumns

type CreateStadiumParams struct {
	StadiumUk   sql.NullString
	StadiumName sql.NullString
	HometeamUk  sql.NullString
	SeatCount   sql.NullString
	Address     sql.NullString
	Ddd         sql.NullString
	Tel         sql.NullString
}

func (q *Queries) CreateStadium(ctx context.Context, arg CreateStadiumParams) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, createStadium,
		arg.StadiumUk,
		arg.StadiumName,
		arg.HometeamUk,
		arg.SeatCount,
		arg.Address,
		arg.Ddd,
		arg.Tel,
	)
	return scanStadium(row)
}

const deleteStadium = `-- name: DeleteStadium :exec
DELETE FROM stadiums WHERE id = $1
`

func (q *Queries) DeleteStadium(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteStadium, id)
	return err
}

const getStadium = `-- name: GetStadium :one
SELECT ` + stadiumColumns + ` FROM stadiums
WHERE id = $1
`

func (q *Queries) GetStadium(ctx context.Context, id int64) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, getStadium, id)
	return scanStadium(row)
}

const getStadiumByUk = `-- name: GetStadiumByUk :one
SELECT ` + stadiumColumns + ` FROM stadiums
WHERE stadium_uk = $1
ORDER BY id
LIMIT 1
`

func (q *Queries) GetStadiumByUk(ctx context.Context, stadiumUk string) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, getStadiumByUk, stadiumUk)
	return scanStadium(row)
}

const listStadiums = `-- name: ListStadiums :many
SELECT ` + stadiumColumns + ` FROM stadiums
ORDER BY id
`

func (q *Queries) ListStadiums(ctx context.Context) ([]Stadium, error) {
	rows, err := q.db.QueryContext(ctx, listStadiums)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Stadium
	for rows.Next() {
		i, err := scanStadium(rows)
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

const updateStadium = `-- name: UpdateStadium :one
UPDATE stadiums SET
  stadium_uk = $2,
  stadium_name = $3,
  hometeam_uk = $4,
  seat_count = $5,
  address = $6,
  ddd = $7,
  tel = $8
WHERE id = $1
RETURNING ` + stadiumColumns

type UpdateStadiumParams struct {
	ID          int64
	StadiumUk   sql.NullString
	StadiumName sql.NullString
	HometeamUk  sql.NullString
	SeatCount   sql.NullString
	Address     sql.NullString
	Ddd         sql.NullString
	Tel         sql.NullString
}

func (q *Queries) UpdateStadium(ctx context.Context, arg UpdateStadiumParams) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, updateStadium,
		arg.ID,
		arg.StadiumUk,
		arg.StadiumName,
		arg.HometeamUk,
		arg.SeatCount,
		arg.Address,
		arg.Ddd,
		arg.Tel,
	)
	return scanStadium(row)
}
