package models

// BracketMeta annotates a playoff match with its bracket position. A row
// without MatchID is a placeholder for a match that has not been created yet,
// e.g. an "if necessary" championship reset.
type BracketMeta struct {
	ID                int     `json:"id" db:"id"`
	DivisionID        int     `json:"division_id" db:"division_id"`
	Week              int     `json:"week" db:"week"`
	MatchNum          int     `json:"match_num" db:"match_num"`
	MatchID           *int    `json:"match_id,omitempty" db:"match_id"`
	Bracket           *string `json:"bracket,omitempty" db:"bracket"`
	HomeSource        *string `json:"home_source,omitempty" db:"home_source"`
	AwaySource        *string `json:"away_source,omitempty" db:"away_source"`
	NextMatchNum      *int    `json:"next_match_num,omitempty" db:"next_match_num"`
	NextLoserMatchNum *int    `json:"next_loser_match_num,omitempty" db:"next_loser_match_num"`
	WorkTeamID        *int    `json:"work_team_id,omitempty" db:"work_team_id"`
}
