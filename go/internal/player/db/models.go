package db

import (
	"database/sql"
)

type Player struct {
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
