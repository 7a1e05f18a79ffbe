package models

import "time"

// Match is one scheduled or played contest as stored by the schedule and
// result entry screens. Scores are nullable until a result is recorded.
type Match struct {
	ID           int        `json:"id" db:"id"`
	DivisionID   int        `json:"division_id" db:"division_id"`
	Week         int        `json:"week" db:"week"`
	Date         *time.Time `json:"date,omitempty" db:"date"`
	Time         *string    `json:"time,omitempty" db:"time"`
	Court        *string    `json:"court,omitempty" db:"court"`
	HomeTeamID   *int       `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID   *int       `json:"away_team_id,omitempty" db:"away_team_id"`
	HomeScore    *int       `json:"home_score,omitempty" db:"home_score"`
	AwayScore    *int       `json:"away_score,omitempty" db:"away_score"`
	HomeSet1     *int       `json:"home_set1_score,omitempty" db:"home_set1_score"`
	AwaySet1     *int       `json:"away_set1_score,omitempty" db:"away_set1_score"`
	HomeSet2     *int       `json:"home_set2_score,omitempty" db:"home_set2_score"`
	AwaySet2     *int       `json:"away_set2_score,omitempty" db:"away_set2_score"`
	HomeSet3     *int       `json:"home_set3_score,omitempty" db:"home_set3_score"`
	AwaySet3     *int       `json:"away_set3_score,omitempty" db:"away_set3_score"`
	WinnerTeamID *int       `json:"winner_team_id,omitempty" db:"winner_team_id"`
	IsPlayoff    bool       `json:"is_playoff" db:"is_playoff"`
}
