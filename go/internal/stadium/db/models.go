package db

import (
	"database/sql"
)

// Stadium mirrors a row of the stadiums table
type Stadium struct {
	ID          int64
	StadiumUk   sql.NullString
	StadiumName sql.NullString
	HometeamUk  sql.NullString
	SeatCount   sql.NullString
	Address     sql.NullString
	Ddd         sql.NullString
	Tel         sql.NullString
}
