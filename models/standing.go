package models

// Standing is one team's regular-season line. Wins and losses count games
// (sets), not matches.
type Standing struct {
	DivisionID    int    `json:"division_id"`
	TeamID        int    `json:"team_id"`
	TeamNumber    *int   `json:"team_number,omitempty"`
	TeamName      string `json:"team_name"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	PointDiff     int    `json:"point_diff"`
	Rank          int    `json:"rank"`
}
