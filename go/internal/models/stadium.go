package models

// Stadium represents a venue that hosts teams and scheduled matches
type Stadium struct {
	ID          int64   `json:"id"`
	StadiumUK   *string `json:"stadium_uk"`
	StadiumName *string `json:"stadium_name"`
	HomeTeamUK  *string `json:"hometeam_uk"`
	SeatCount   *string `json:"seat_count"`
	Address     *string `json:"address"`
	DDD         *string `json:"ddd"`
	Tel         *string `json:"tel"`
}
