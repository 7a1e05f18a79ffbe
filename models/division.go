package models

type Division struct {
	ID       int    `json:"id" db:"id"`
	SeasonID int    `json:"season_id" db:"season_id"`
	Name     string `json:"name" db:"name"`
	// Position orders divisions on the season page.
	Position int `json:"position" db:"position"`
}
