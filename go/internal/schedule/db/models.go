package db

import (
	"database/sql"
)

// Schedule mirrors a row of the schedules table
type Schedule struct {
	ID         int64
	ScheDate   sql.NullString
	StadiumUk  sql.NullString
	Gubun      sql.NullString
	HometeamUk sql.NullString
	AwayteamUk sql.NullString
	HomeScore  sql.NullInt32
	AwayScore  sql.NullInt32
}
