package brackets

import (
	"github.com/Dosada05/volleyball-league/models"
)

func ptr[T any](v T) *T { return &v }

func meta(num int, home, away string) models.BracketMeta {
	return models.BracketMeta{
		ID:         num,
		DivisionID: 1,
		MatchNum:   num,
		HomeSource: ptr(home),
		AwaySource: ptr(away),
	}
}

func played(id, home, away, homeGames, awayGames int) models.Match {
	return models.Match{
		ID:         id,
		DivisionID: 1,
		IsPlayoff:  true,
		HomeTeamID: ptr(home),
		AwayTeamID: ptr(away),
		HomeScore:  ptr(homeGames),
		AwayScore:  ptr(awayGames),
	}
}

func leagueTeams() []models.Team {
	return []models.Team{
		{ID: 1, DivisionID: 1, Number: ptr(1), Name: "Aces"},
		{ID: 2, DivisionID: 1, Number: ptr(2), Name: "Blockers"},
		{ID: 3, DivisionID: 1, Number: ptr(3), Name: "Diggers"},
		{ID: 4, DivisionID: 1, Number: ptr(4), Name: "Setters"},
	}
}

// doubleElimination is a finished four-team double-elimination bracket up
// to the championship; match 7 is the unplayed reset game.
//
//	M1 S1 v S4    M2 S2 v S3    M3 W1 v W2
//	M4 L1 v L2    M5 L3 v W4
//	M6 W3 v W5    M7 W6 v L6
func doubleElimination() ([]models.Match, []models.BracketMeta) {
	matches := []models.Match{
		played(101, 1, 4, 2, 0),
		played(102, 2, 3, 1, 2),
		played(103, 1, 3, 1, 2),
		played(104, 4, 2, 0, 2),
		played(105, 1, 2, 2, 1),
		played(106, 3, 1, 0, 2),
	}
	metas := []models.BracketMeta{
		meta(1, "S1", "S4"),
		meta(2, "S2", "S3"),
		meta(3, "W1", "W2"),
		meta(4, "L1", "L2"),
		meta(5, "L3", "W4"),
		meta(6, "W3", "W5"),
		meta(7, "W6", "L6"),
	}
	for i := 0; i < 6; i++ {
		metas[i].MatchID = ptr(matches[i].ID)
	}
	return matches, metas
}

func byNumber(matches []*PlayoffMatch) map[int]*PlayoffMatch {
	out := make(map[int]*PlayoffMatch)
	for _, pm := range matches {
		if n := pm.MatchNum(); n != nil {
			out[*n] = pm
		}
	}
	return out
}
