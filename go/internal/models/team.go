package models

// Team represents a soccer club
type Team struct {
	ID         int64   `json:"id"`
	TeamUK     *string `json:"team_uk"`
	RegionName *string `json:"region_name"`
	TeamName   *string `json:"team_name"`
	ETeamName  *string `json:"e_team_name"`
	OrigYYYY   *string `json:"orig_yyyy"`
	ZipCode1   *string `json:"zip_code1"`
	ZipCode2   *string `json:"zip_code2"`
	Address    *string `json:"address"`
	DDD        *string `json:"ddd"`
	Tel        *string `json:"tel"`
	Fax        *string `json:"fax"`
	Homepage   *string `json:"homepage"`
	Owner      *string `json:"owner"`
	StadiumUK  *string `json:"stadium_uk"`

	// Stadium is resolved from StadiumUK when the team is saved or updated.
	Stadium *Stadium `json:"-"`
}
