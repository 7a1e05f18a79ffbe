package brackets

import (
	"fmt"

	"github.com/Dosada05/volleyball-league/models"
)

const LabelTBD = "TBD"

// Labeler turns match sides into display labels. It is built once per
// division from the team list and the combined playoff matches.
type Labeler struct {
	teams     map[int]models.Team
	byNumber  map[int]int
	seedTeams map[int]int
	matches   []*PlayoffMatch
	byNum     map[int]int
}

func NewLabeler(teams []models.Team, matches []*PlayoffMatch) *Labeler {
	l := &Labeler{
		teams:     make(map[int]models.Team, len(teams)),
		byNumber:  make(map[int]int, len(teams)),
		seedTeams: make(map[int]int),
		matches:   matches,
		byNum:     indexByNum(matches),
	}
	for _, t := range teams {
		if _, dup := l.teams[t.ID]; dup {
			continue
		}
		l.teams[t.ID] = t
		if t.Number != nil {
			if _, taken := l.byNumber[*t.Number]; !taken {
				l.byNumber[*t.Number] = t.ID
			}
		}
	}
	// A seed token names a team once any match shows which team played
	// from that seed.
	for _, pm := range matches {
		for _, side := range []Side{SideHome, SideAway} {
			ref := pm.Ref(side)
			id := pm.TeamID(side)
			if ref.Kind != RefSeed || id == nil {
				continue
			}
			if _, ok := l.seedTeams[ref.N]; !ok {
				l.seedTeams[ref.N] = *id
			}
		}
	}
	return l
}

// TeamLabel formats a team as "#<number> <name>", or just the name when the
// team has no number. ok is false for an unknown team id.
func (l *Labeler) TeamLabel(teamID int) (string, bool) {
	t, ok := l.teams[teamID]
	if !ok {
		return "", false
	}
	return FormatTeam(t), true
}

func FormatTeam(t models.Team) string {
	if t.Number != nil {
		return fmt.Sprintf("#%d %s", *t.Number, t.Name)
	}
	return t.Name
}

// SideLabel resolves the label for one side of a match.
func (l *Labeler) SideLabel(pm *PlayoffMatch, side Side) string {
	if id := pm.TeamID(side); id != nil {
		if label, ok := l.TeamLabel(*id); ok {
			return label
		}
	}
	return l.RefLabel(pm.Ref(side))
}

// RefLabel resolves a source reference without a known team on the side.
func (l *Labeler) RefLabel(ref SourceRef) string {
	switch ref.Kind {
	case RefSeed:
		if id, ok := l.seedTeams[ref.N]; ok {
			if label, ok := l.TeamLabel(id); ok {
				return label
			}
		}
		return fmt.Sprintf("Seed %d", ref.N)
	case RefTeam:
		if id, ok := l.byNumber[ref.N]; ok {
			if label, ok := l.TeamLabel(id); ok {
				return label
			}
		}
		return fmt.Sprintf("Team #%d", ref.N)
	case RefWinner, RefLoser:
		if id := l.resultTeam(ref); id != nil {
			if label, ok := l.TeamLabel(*id); ok {
				return label
			}
		}
		if ref.Kind == RefWinner {
			return fmt.Sprintf("Winner #%d", ref.N)
		}
		return fmt.Sprintf("Loser #%d", ref.N)
	case RefUnknown:
		return ref.Raw
	default:
		return LabelTBD
	}
}

// resultTeam returns the winner or loser team id of the referenced match.
func (l *Labeler) resultTeam(ref SourceRef) *int {
	i, ok := l.byNum[ref.N]
	if !ok {
		return nil
	}
	res := l.matches[i].Result()
	if ref.Kind == RefWinner {
		return res.WinnerTeamID
	}
	return res.LoserTeamID
}

// WorkTeamLabel returns the label of the team assigned to work the match, or
// an empty string when none is assigned.
func (l *Labeler) WorkTeamLabel(pm *PlayoffMatch) string {
	if pm.Meta == nil || pm.Meta.WorkTeamID == nil {
		return ""
	}
	if label, ok := l.TeamLabel(*pm.Meta.WorkTeamID); ok {
		return label
	}
	return ""
}
