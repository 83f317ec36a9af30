package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labzang/soccer/go/internal/dbconfig"
	"github.com/labzang/soccer/go/internal/models"
)

// table describes how one asset file is written to Postgres
type table struct {
	name  string
	file  string
	query string
	rows  func(data []byte) ([][]any, error)
}

// Seeded in link order so business keys resolve for later tables.
// schedules has no unique column, so a match is skipped by (sche_date, hometeam_uk, awayteam_uk).
var tables = []table{
	{
		name: "stadiums",
		file: "stadiums.json",
		query: `
            INSERT INTO stadiums (
              stadium_uk, stadium_name, hometeam_uk, seat_count, address, ddd, tel
            ) VALUES ($1,$2,$3,$4,$5,$6,$7)
            ON CONFLICT DO NOTHING
        `,
		rows: decodeRows(func(s models.Stadium) []any {
			return []any{s.StadiumUK, s.StadiumName, s.HomeTeamUK, s.SeatCount, s.Address, s.DDD, s.Tel}
		}),
	},
	{
		name: "teams",
		file: "teams.json",
		query: `
            INSERT INTO teams (
              team_uk, region_name, team_name, e_team_name, orig_yyyy, zip_code1, zip_code2,
              address, ddd, tel, fax, homepage, owner, stadium_uk
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
            ON CONFLICT DO NOTHING
        `,
		rows: decodeRows(func(t models.Team) []any {
			return []any{
				t.TeamUK, t.RegionName, t.TeamName, t.ETeamName, t.OrigYYYY, t.ZipCode1, t.ZipCode2,
				t.Address, t.DDD, t.Tel, t.Fax, t.Homepage, t.Owner, t.StadiumUK,
			}
		}),
	},
	{
		name: "players",
		file: "players.json",
		query: `
            INSERT INTO players (
              player_uk, player_name, e_player_name, nickname, join_yyyy, position, back_no,
              nation, birth_date, solar, height, weight, team_uk
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
            ON CONFLICT DO NOTHING
        `,
		rows: decodeRows(func(p models.Player) []any {
			return []any{
				p.PlayerUK, p.PlayerName, p.EPlayerName, p.Nickname, p.JoinYYYY, p.Position, p.BackNo,
				p.Nation, p.BirthDate, p.Solar, p.Height, p.Weight, p.TeamUK,
			}
		}),
	},
	{
		name: "schedules",
		file: "schedules.json",
		query: `
            INSERT INTO schedules (
              sche_date, stadium_uk, gubun, hometeam_uk, awayteam_uk, home_score, away_score
            )
            SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::int, $7::int
            WHERE NOT EXISTS (
              SELECT 1 FROM schedules
              WHERE sche_date IS NOT DISTINCT FROM $1::text
                AND hometeam_uk IS NOT DISTINCT FROM $4::text
                AND awayteam_uk IS NOT DISTINCT FROM $5::text
            )
        `,
		rows: decodeRows(func(s models.Schedule) []any {
			return []any{s.ScheDate, s.StadiumUK, s.Gubun, s.HomeTeamUK, s.AwayTeamUK, s.HomeScore, s.AwayScore}
		}),
	},
}

// decodeRows unmarshals a JSON array of T and flattens each element to insert args
func decodeRows[T any](args func(T) []any) func([]byte) ([][]any, error) {
	return func(data []byte) ([][]any, error) {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		rows := make([][]any, len(items))
		for i, item := range items {
			rows[i] = args(item)
		}
		return rows, nil
	}
}

func main() {
	ctx := context.Background()
	dir := "go/internal/assets"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	// Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, t := range tables {
		data, err := os.ReadFile(filepath.Join(dir, t.file))
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", t.file, err)
			os.Exit(1)
		}
		rows, err := t.rows(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unmarshal %s: %v\n", t.file, err)
			os.Exit(1)
		}

		total, inserted, skipped, errs := len(rows), 0, 0, 0
		for _, args := range rows {
			tag, err := pool.Exec(ctx, t.query, args...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error inserting into %s: %v\n", t.name, err)
				errs++
				continue
			}
			if tag.RowsAffected() == 1 {
				inserted++
			} else {
				skipped++
			}
		}

		fmt.Printf(
			"%s seed: total=%d inserted=%d skipped=%d errors=%d\n",
			t.name, total, inserted, skipped, errs,
		)
	}
}
