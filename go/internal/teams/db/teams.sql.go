package db

import (
	"context"
	"database/sql"
)

const teamColumns = `id, team_uk, region_name, team_name, e_team_name, orig_yyyy, zip_code1, zip_code2,
  address, ddd, tel, fax, homepage, owner, stadium_uk`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTeam(row rowScanner) (Team, error) {
	var i Team
	err := row.Scan(
		&i.ID,
		&i.TeamUk,
		&i.RegionName,
		&i.TeamName,
		&i.ETeamName,
		&i.OrigYyyy,
		&i.ZipCode1,
		&i.ZipCode2,
		&i.Address,
		&i.Ddd,
		&i.Tel,
		&i.Fax,
		&i.Homepage,
		&i.Owner,
		&i.StadiumUk,
	)
	return i, err
}

const createTeam = `-- name: CreateTeam :one
INSERT INTO teams (
  team_uk, region_name, team_name, e_team_name, orig_yyyy, zip_code1, zip_code2,
  address, ddd, tel, fax, homepage, owner, stadium_uk
) VALUES (
  $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING ` + teamColumns

type CreateTeamParams struct {
	TeamUk     sql.NullString
	RegionName sql.NullString
	TeamName   sql.NullString
	ETeamName  sql.NullString
	OrigYyyy   sql.NullString
	ZipCode1   sql.NullString
	ZipCode2   sql.NullString
	Address    sql.NullString
	Ddd        sql.NullString
	Tel        sql.NullString
	Fax        sql.NullString
	Homepage   sql.NullString
	Owner      sql.NullString
	StadiumUk  sql.NullString
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam,
		arg.TeamUk,
		arg.RegionName,
		arg.TeamName,
		arg.ETeamName,
		arg.OrigYyyy,
		arg.ZipCode1,
		arg.ZipCode2,
		arg.Address,
		arg.Ddd,
		arg.Tel,
		arg.Fax,
		arg.Homepage,
		arg.Owner,
		arg.StadiumUk,
	)
	return scanTeam(row)
}

const deleteTeam = `-- name: DeleteTeam :exec
DELETE FROM teams WHERE id = $1
`

func (q *Queries) DeleteTeam(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTeam, id)
	return err
}

const getTeam = `-- name: GetTeam :one
SELECT ` + teamColumns + ` FROM teams
WHERE id = $1
`

func (q *Queries) GetTeam(ctx context.Context, id int64) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, id)
	return scanTeam(row)
}

const getTeamByUk = `-- name: GetTeamByUk :one
SELECT ` + teamColumns + ` FROM teams
WHERE team_uk = $1
ORDER BY id
LIMIT 1
`

func (q *Queries) GetTeamByUk(ctx context.Context, teamUk string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByUk, teamUk)
	return scanTeam(row)
}

const listAllTeams = `-- name: ListAllTeams :many
SELECT ` + teamColumns + ` FROM teams
ORDER BY id
`

func (q *Queries) ListAllTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listAllTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Team
	for rows.Next() {
		i, err := scanTeam(rows)
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

const updateTeam = `-- name: UpdateTeam :one
UPDATE teams SET
  team_uk = $2,
  region_name = $3,
  team_name = $4,
  e_team_name = $5,
  orig_yyyy = $6,
  zip_code1 = $7,
  zip_code2 = $8,
  address = $9,
  ddd = $10,
  tel = $11,
  fax = $12,
  homepage = $13,
  owner = $14,
  stadium_uk = $15
WHERE id = $1
RETURNING ` + teamColumns

type UpdateTeamParams struct {
	ID         int64
	TeamUk     sql.NullString
	RegionName sql.NullString
	TeamName   sql.NullString
	ETeamName  sql.NullString
	OrigYyyy   sql.NullString
	ZipCode1   sql.NullString
	ZipCode2   sql.NullString
	Address    sql.NullString
	Ddd        sql.NullString
	Tel        sql.NullString
	Fax        sql.NullString
	Homepage   sql.NullString
	Owner      sql.NullString
	StadiumUk  sql.NullString
}

func (q *Queries) UpdateTeam(ctx context.Context, arg UpdateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, updateTeam,
		arg.ID,
		arg.TeamUk,
		arg.RegionName,
		arg.TeamName,
		arg.ETeamName,
		arg.OrigYyyy,
		arg.ZipCode1,
		arg.ZipCode2,
		arg.Address,
		arg.Ddd,
		arg.Tel,
		arg.Fax,
		arg.Homepage,
		arg.Owner,
		arg.StadiumUk,
	)
	return scanTeam(row)
}
