package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/volleyball-league/models"
)

type Side string

const (
	SideNone Side = ""
	SideHome Side = "home"
	SideAway Side = "away"
)

func (s Side) Opposite() Side {
	switch s {
	case SideHome:
		return SideAway
	case SideAway:
		return SideHome
	default:
		return SideNone
	}
}

type SetScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameResult is the outcome of a match as far as it can be determined from
// the recorded scores. WinnerTeamID is nil when the match is unplayed or
// undecided; that is a normal state, not an error.
type GameResult struct {
	Sets         []SetScore `json:"sets"`
	HomeGames    int        `json:"home_games"`
	AwayGames    int        `json:"away_games"`
	HasScores    bool       `json:"has_scores"`
	WinnerSide   Side       `json:"winner_side,omitempty"`
	WinnerTeamID *int       `json:"winner_team_id,omitempty"`
	LoserTeamID  *int       `json:"loser_team_id,omitempty"`
}

// RecordedSets returns the set scores where both sides have a value, in set
// order. A set with only one side filled in is skipped.
func RecordedSets(m *models.Match) []SetScore {
	if m == nil {
		return nil
	}
	pairs := [][2]*int{
		{m.HomeSet1, m.AwaySet1},
		{m.HomeSet2, m.AwaySet2},
		{m.HomeSet3, m.AwaySet3},
	}
	sets := make([]SetScore, 0, len(pairs))
	for _, p := range pairs {
		if p[0] == nil || p[1] == nil {
			continue
		}
		sets = append(sets, SetScore{Home: *p[0], Away: *p[1]})
	}
	return sets
}

// ResolveGames computes game wins and the winner/loser of a match. An
// aggregate home/away score is taken as the game count directly (leagues
// that record total games); otherwise each strictly won set is one game.
func ResolveGames(m *models.Match) GameResult {
	res := GameResult{Sets: RecordedSets(m)}
	if m == nil {
		return res
	}

	if m.HomeScore != nil || m.AwayScore != nil {
		res.HomeGames = derefInt(m.HomeScore)
		res.AwayGames = derefInt(m.AwayScore)
		res.HasScores = true
	} else {
		for _, s := range res.Sets {
			switch {
			case s.Home > s.Away:
				res.HomeGames++
			case s.Away > s.Home:
				res.AwayGames++
			}
		}
		res.HasScores = len(res.Sets) > 0
	}

	switch {
	case m.WinnerTeamID != nil:
		winner := *m.WinnerTeamID
		res.WinnerTeamID = &winner
		if m.HomeTeamID != nil && *m.HomeTeamID == winner {
			res.WinnerSide = SideHome
		} else if m.AwayTeamID != nil && *m.AwayTeamID == winner {
			res.WinnerSide = SideAway
		}
	case res.HomeGames > res.AwayGames:
		res.WinnerSide = SideHome
		res.WinnerTeamID = copyInt(m.HomeTeamID)
	case res.AwayGames > res.HomeGames:
		res.WinnerSide = SideAway
		res.WinnerTeamID = copyInt(m.AwayTeamID)
	}

	if res.WinnerTeamID != nil && m.HomeTeamID != nil && m.AwayTeamID != nil {
		res.LoserTeamID = copyInt(sideTeam(m, res.WinnerSide.Opposite()))
	}
	return res
}

func sideTeam(m *models.Match, side Side) *int {
	if m == nil {
		return nil
	}
	switch side {
	case SideHome:
		return m.HomeTeamID
	case SideAway:
		return m.AwayTeamID
	default:
		return nil
	}
}

// Games returns the game count credited to one side.
func (r GameResult) Games(side Side) int {
	switch side {
	case SideHome:
		return r.HomeGames
	case SideAway:
		return r.AwayGames
	default:
		return 0
	}
}

// Decided reports whether a winner is known.
func (r GameResult) Decided() bool {
	return r.WinnerTeamID != nil
}

// FormatSets renders the set scores with the winner's score first when the
// winning side is known, home-away otherwise. "-" means no sets recorded.
func FormatSets(r GameResult) string {
	if len(r.Sets) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(r.Sets))
	for _, s := range r.Sets {
		if r.WinnerSide == SideAway {
			parts = append(parts, fmt.Sprintf("%d-%d", s.Away, s.Home))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", s.Home, s.Away))
		}
	}
	return strings.Join(parts, ", ")
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intPtr(v int) *int {
	return &v
}
