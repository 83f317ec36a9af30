package db

import (
	"database/sql"
)

// Team mirrors a row of the teams table
type Team struct {
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
