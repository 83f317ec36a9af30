package db

import (
	"context"
	"database/sql"
)

const playerColumns = `id, player_uk, player_name, e_player_name, nickname, join_yyyy, position, back_no,
  nation, birth_date, solar, height, weight, team_uk`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (Player, error) {
	var i Player
	err := row.Scan(
		&i.ID,
		&i.PlayerUk,
		&i.PlayerName,
		&i.EPlayerName,
		&i.Nickname,
		&i.JoinYyyy,
		&i.Position,
		&i.BackNo,
		&i.Nation,
		&i.BirthDate,
		&i.Solar,
		&i.Height,
		&i.Weight,
		&i.TeamUk,
	)
	return i, err
}

func scanPlayers(rows *sql.Rows) ([]Player, error) {
	defer rows.Close()
	var items []Player
	for rows.Next() {
		i, err := scanPlayer(rows)
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

const createPlayer = `-- name: CreatePlayer :one
INSERT INTO players (
  player_uk, player_name, e_player_name, nickname, join_yyyy, position, back_no,
  nation, birth_date, solar, height, weight, team_uk
) VALUES (
  $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
RETURNING ` + playerColumns

type CreatePlayerParams struct {
	PlayerUk    sql.NullString
	PlayerName  sql.NullString
	EPlayerName sql.NullString
	Nickname    sql.NullString
	JoinYyyy    sql.NullString
	Position    sql.NullString
	BackNo      sql.NullString
	Nation      sql.NullString
	BirthDate   sql.NullString
	Solar       sql.NullString
	Height      sql.NullString
	Weight      sql.NullString
	TeamUk      sql.NullString
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, createPlayer,
		arg.PlayerUk,
		arg.PlayerName,
		arg.EPlayerName,
		arg.Nickname,
		arg.JoinYyyy,
		arg.Position,
		arg.BackNo,
		arg.Nation,
		arg.BirthDate,
		arg.Solar,
		arg.Height,
		arg.Weight,
		arg.TeamUk,
	)
	return scanPlayer(row)
}

const deletePlayer = `-- name: DeletePlayer :exec
DELETE FROM players WHERE id = $1
`

func (q *Queries) DeletePlayer(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deletePlayer, id)
	return err
}

const getPlayer = `-- name: GetPlayer :one
SELECT ` + playerColumns + ` FROM players
WHERE id = $1
`

func (q *Queries) GetPlayer(ctx context.Context, id int64) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, id)
	return scanPlayer(row)
}

const listPlayers = `-- name: ListPlayers :many
SELECT ` + playerColumns + ` FROM players
ORDER BY id
`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	return scanPlayers(rows)
}

const updatePlayer = `-- name: UpdatePlayer :one
UPDATE players SET
  player_uk = $2,
  player_name = $3,
  e_player_name = $4,
  nickname = $5,
  join_yyyy = $6,
  position = $7,
  back_no = $8,
  nation = $9,
  birth_date = $10,
  solar = $11,
  height = $12,
  weight = $13,
  team_uk = $14
WHERE id = $1
RETURNING ` + playerColumns

type UpdatePlayerParams struct {
	ID          int64
	PlayerUk    sql.NullString
	PlayerName  sql.NullString
	EPlayerName sql.NullString
	Nickname    sql.NullString
	JoinYyyy    sql.NullString
	Position    sql.NullString
	BackNo      sql.NullString
	Nation      sql.NullString
	BirthDate   sql.NullString
	Solar       sql.NullString
	Height      sql.NullString
	Weight      sql.NullString
	TeamUk      sql.NullString
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, updatePlayer,
		arg.ID,
		arg.PlayerUk,
		arg.PlayerName,
		arg.EPlayerName,
		arg.Nickname,
		arg.JoinYyyy,
		arg.Position,
		arg.BackNo,
		arg.Nation,
		arg.BirthDate,
		arg.Solar,
		arg.Height,
		arg.Weight,
		arg.TeamUk,
	)
	return scanPlayer(row)
}
