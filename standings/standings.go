package standings

import (
	"sort"
	"strings"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/models"
)

// Compute builds the regular-season table for one division. Playoff matches
// and matches without a recorded score are ignored. Wins and losses are game
// counts from brackets.ResolveGames; points come from set scores.
//
// Teams are ordered by wins, then head-to-head games between the two teams
// being compared, head-to-head points, overall point differential, points
// scored, team number and name. The head-to-head record is recomputed for
// every comparison.
func Compute(divisionID int, teams []models.Team, matches []models.Match) []models.Standing {
	regular := RegularSeason(matches)

	rows := make([]models.Standing, 0, len(teams))
	index := make(map[int]int, len(teams))
	for _, t := range teams {
		if _, dup := index[t.ID]; dup {
			continue
		}
		index[t.ID] = len(rows)
		rows = append(rows, models.Standing{
			DivisionID: divisionID,
			TeamID:     t.ID,
			TeamNumber: t.Number,
			TeamName:   t.Name,
		})
	}

	for i := range regular {
		m := &regular[i]
		res := brackets.ResolveGames(m)
		if !res.HasScores {
			continue
		}
		hi, okH := index[*m.HomeTeamID]
		ai, okA := index[*m.AwayTeamID]
		homePts, awayPts := setPoints(res.Sets)
		if okH {
			accumulate(&rows[hi], res.HomeGames, res.AwayGames, homePts, awayPts)
		}
		if okA {
			accumulate(&rows[ai], res.AwayGames, res.HomeGames, awayPts, homePts)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TeamID < rows[j].TeamID })
	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i], rows[j], regular)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// RegularSeason keeps the non-playoff matches that have both teams set.
func RegularSeason(matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.IsPlayoff || m.HomeTeamID == nil || m.AwayTeamID == nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

func accumulate(row *models.Standing, won, lost, pointsFor, pointsAgainst int) {
	row.MatchesPlayed++
	row.Wins += won
	row.Losses += lost
	row.PointsFor += pointsFor
	row.PointsAgainst += pointsAgainst
	row.PointDiff = row.PointsFor - row.PointsAgainst
}

func setPoints(sets []brackets.SetScore) (home, away int) {
	for _, s := range sets {
		home += s.Home
		away += s.Away
	}
	return home, away
}

// HeadToHead is the record of team A against team B.
type HeadToHead struct {
	WinsA, WinsB     int
	PointsA, PointsB int
}

// HeadToHeadRecord totals the games and set points between two teams over
// regular-season matches.
func HeadToHeadRecord(a, b int, matches []models.Match) HeadToHead {
	var h HeadToHead
	for i := range matches {
		m := &matches[i]
		if m.HomeTeamID == nil || m.AwayTeamID == nil {
			continue
		}
		home, away := *m.HomeTeamID, *m.AwayTeamID
		var aIsHome bool
		switch {
		case home == a && away == b:
			aIsHome = true
		case home == b && away == a:
			aIsHome = false
		default:
			continue
		}
		res := brackets.ResolveGames(m)
		homePts, awayPts := setPoints(res.Sets)
		if aIsHome {
			h.WinsA += res.HomeGames
			h.WinsB += res.AwayGames
			h.PointsA += homePts
			h.PointsB += awayPts
		} else {
			h.WinsA += res.AwayGames
			h.WinsB += res.HomeGames
			h.PointsA += awayPts
			h.PointsB += homePts
		}
	}
	return h
}

// Less reports whether a ranks above b.
func Less(a, b models.Standing, matches []models.Match) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}

	h2h := HeadToHeadRecord(a.TeamID, b.TeamID, matches)
	if h2h.WinsA != h2h.WinsB {
		return h2h.WinsA > h2h.WinsB
	}
	if h2h.PointsA != h2h.PointsB {
		return h2h.PointsA > h2h.PointsB
	}

	if a.PointDiff != b.PointDiff {
		return a.PointDiff > b.PointDiff
	}
	if a.PointsFor != b.PointsFor {
		return a.PointsFor > b.PointsFor
	}

	switch {
	case a.TeamNumber != nil && b.TeamNumber != nil && *a.TeamNumber != *b.TeamNumber:
		return *a.TeamNumber < *b.TeamNumber
	case a.TeamNumber != nil && b.TeamNumber == nil:
		return true
	case a.TeamNumber == nil && b.TeamNumber != nil:
		return false
	}

	if na, nb := strings.ToLower(a.TeamName), strings.ToLower(b.TeamName); na != nb {
		return na < nb
	}
	return a.TeamID < b.TeamID
}
