package models

// Player represents a soccer player as exposed over the API
type Player struct {
	ID          int64   `json:"id"`
	PlayerUK    *string `json:"player_uk"`
	PlayerName  *string `json:"player_name"`
	EPlayerName *string `json:"e_player_name"`
	Nickname    *string `json:"nickname"`
	JoinYYYY    *string `json:"join_yyyy"`
	Position    *string `json:"position"`
	BackNo      *string `json:"back_no"`
	Nation      *string `json:"nation"`
	BirthDate   *string `json:"birth_date"`
	Solar       *string `json:"solar"`
	Height      *string `json:"height"`
	Weight      *string `json:"weight"`
	TeamUK      *string `json:"team_uk"`

	// Team is resolved from TeamUK when the player is saved or updated.
	Team *Team `json:"-"`
}
