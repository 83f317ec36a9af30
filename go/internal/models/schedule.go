package models

// Schedule represents a single match between a home and an away team
type Schedule struct {
	ID         int64   `json:"id"`
	ScheDate   *string `json:"sche_date"`
	StadiumUK  *string `json:"stadium_uk"`
	Gubun      *string `json:"gubun"` // match category, e.g. regular season or cup
	HomeTeamUK *string `json:"hometeam_uk"`
	AwayTeamUK *string `json:"awayteam_uk"`
	HomeScore  *int    `json:"home_score"`
	AwayScore  *int    `json:"away_score"`

	Stadium  *Stadium `json:"-"`
	HomeTeam *Team    `json:"-"`
	AwayTeam *Team    `json:"-"`
}
