package brackets

import (
	"fmt"
	"sort"
	"strconv"
)

const (
	StateScheduled = "SCHEDULED"
	StateScoreDone = "SCORE_DONE"
	StateWalkOver  = "WALK_OVER"

	participantPlayed = "PLAYED"
	byeName           = "BYE"
)

// Participant is one side of a rendered bracket match.
type Participant struct {
	ID         string  `json:"id"`
	TeamID     *int    `json:"teamId,omitempty"`
	Name       string  `json:"name"`
	ResultText *string `json:"resultText"`
	IsWinner   bool    `json:"isWinner"`
	Status     *string `json:"status"`
}

// BracketNode is a match in the shape a double-elimination layout renderer
// consumes. Positive ids are match numbers, negative ids are synthetic byes.
type BracketNode struct {
	ID                  int           `json:"id"`
	Name                string        `json:"name"`
	NextMatchID         *int          `json:"nextMatchId"`
	NextLoserMatchID    *int          `json:"nextLoserMatchId"`
	TournamentRoundText string        `json:"tournamentRoundText"`
	StartTime           string        `json:"startTime"`
	State               string        `json:"state"`
	Section             Section       `json:"section"`
	Round               int           `json:"round"`
	IsBye               bool          `json:"isBye,omitempty"`
	Participants        []Participant `json:"participants"`
}

type BracketView struct {
	Upper    []BracketNode `json:"upper"`
	Lower    []BracketNode `json:"lower"`
	Warnings []string      `json:"warnings,omitempty"`
}

// Synthesize builds the upper (winners and championship) and lower (losers)
// halves from classified, rounded matches. Winners matches that pair a
// directly seeded side with the winner of another match get a synthetic bye
// match feeding them, so every column holds half the matches of the previous
// one. Forward pointers to matches that are not
// in the output are cleared. Returns nil when no match has a match number.
func Synthesize(matches []*PlayoffMatch, labeler *Labeler) *BracketView {
	numbered := make([]*PlayoffMatch, 0, len(matches))
	for _, pm := range matches {
		if pm.MatchNum() != nil {
			numbered = append(numbered, pm)
		}
	}
	if len(numbered) == 0 {
		return nil
	}
	sort.SliceStable(numbered, func(i, j int) bool {
		a, b := numbered[i], numbered[j]
		if sectionRank(a.Section) != sectionRank(b.Section) {
			return sectionRank(a.Section) < sectionRank(b.Section)
		}
		if a.Round != b.Round {
			return a.Round < b.Round
		}
		return *a.MatchNum() < *b.MatchNum()
	})

	view := &BracketView{Upper: []BracketNode{}, Lower: []BracketNode{}}
	ids := make(map[int]bool, len(numbered))
	var byes []BracketNode
	nextByeID := -1

	for _, pm := range numbered {
		node := buildNode(pm, numbered, labeler)
		ids[node.ID] = true

		if pm.Section == SectionWinners {
			if side, ok := byeSide(pm); ok {
				bye := buildBye(nextByeID, pm, side, labeler)
				nextByeID--
				ids[bye.ID] = true
				byes = append(byes, bye)
			}
		}

		if pm.Section == SectionLosers {
			view.Lower = append(view.Lower, node)
		} else {
			view.Upper = append(view.Upper, node)
		}
	}
	view.Upper = append(byes, view.Upper...)

	sanitizePointers(view.Upper, ids)
	sanitizePointers(view.Lower, ids)
	view.Warnings = bracketWarnings(numbered)
	return view
}

func sectionRank(s Section) int {
	switch s {
	case SectionWinners:
		return 0
	case SectionLosers:
		return 1
	case SectionChampionship:
		return 2
	default:
		return 3
	}
}

// byeSide returns the direct side of a match whose other side is the winner
// of a previous match.
func byeSide(pm *PlayoffMatch) (Side, bool) {
	switch {
	case pm.Home.IsDirect() && pm.Away.Kind == RefWinner:
		return SideHome, true
	case pm.Away.IsDirect() && pm.Home.Kind == RefWinner:
		return SideAway, true
	}
	return SideNone, false
}

func buildNode(pm *PlayoffMatch, all []*PlayoffMatch, labeler *Labeler) BracketNode {
	num := *pm.MatchNum()
	res := pm.Result()

	node := BracketNode{
		ID:                  num,
		Name:                fmt.Sprintf("Match %d", num),
		NextMatchID:         nextPointer(pm, all, RefWinner),
		NextLoserMatchID:    nextPointer(pm, all, RefLoser),
		TournamentRoundText: strconv.Itoa(pm.Round),
		StartTime:           startTime(pm),
		State:               StateScheduled,
		Section:             pm.Section,
		Round:               pm.Round,
	}
	if res.Decided() {
		node.State = StateScoreDone
	}

	for _, side := range []Side{SideHome, SideAway} {
		p := Participant{
			ID:     participantID(pm, side, num),
			TeamID: copyInt(pm.TeamID(side)),
			Name:   labeler.SideLabel(pm, side),
		}
		if res.HasScores {
			text := strconv.Itoa(res.Games(side))
			p.ResultText = &text
		}
		if res.Decided() {
			status := participantPlayed
			p.Status = &status
			p.IsWinner = res.WinnerSide == side
		}
		node.Participants = append(node.Participants, p)
	}
	return node
}

func buildBye(id int, target *PlayoffMatch, side Side, labeler *Labeler) BracketNode {
	targetNum := *target.MatchNum()
	round := target.Round - 1
	if round < 1 {
		round = 1
	}
	status := participantPlayed
	return BracketNode{
		ID:                  id,
		Name:                byeName,
		NextMatchID:         intPtr(targetNum),
		TournamentRoundText: strconv.Itoa(round),
		State:               StateWalkOver,
		Section:             SectionWinners,
		Round:               round,
		IsBye:               true,
		Participants: []Participant{
			{
				ID:       participantID(target, side, targetNum),
				TeamID:   copyInt(target.TeamID(side)),
				Name:     labeler.SideLabel(target, side),
				IsWinner: true,
				Status:   &status,
			},
			{
				ID:   fmt.Sprintf("bye%d", -id),
				Name: byeName,
			},
		},
	}
}

// nextPointer returns the match that takes this match's winner (or loser).
// Explicit metadata wins; otherwise the first match whose source token names
// this match is used.
func nextPointer(pm *PlayoffMatch, all []*PlayoffMatch, kind RefKind) *int {
	if kind == RefWinner && pm.Meta.NextMatchNum != nil {
		return copyInt(pm.Meta.NextMatchNum)
	}
	if kind == RefLoser && pm.Meta.NextLoserMatchNum != nil {
		return copyInt(pm.Meta.NextLoserMatchNum)
	}
	num := *pm.MatchNum()
	var found *int
	for _, other := range all {
		if other == pm {
			continue
		}
		for _, ref := range []SourceRef{other.Home, other.Away} {
			if ref.Kind == kind && ref.N == num {
				n := *other.MatchNum()
				if found == nil || n < *found {
					found = intPtr(n)
				}
			}
		}
	}
	return found
}

func sanitizePointers(nodes []BracketNode, ids map[int]bool) {
	for i := range nodes {
		if p := nodes[i].NextMatchID; p != nil && !ids[*p] {
			nodes[i].NextMatchID = nil
		}
		if p := nodes[i].NextLoserMatchID; p != nil && !ids[*p] {
			nodes[i].NextLoserMatchID = nil
		}
	}
}

func participantID(pm *PlayoffMatch, side Side, num int) string {
	if id := pm.TeamID(side); id != nil {
		return strconv.Itoa(*id)
	}
	return fmt.Sprintf("m%d-%s", num, side)
}

func startTime(pm *PlayoffMatch) string {
	if pm.IsPlaceholder() {
		return ""
	}
	var out string
	if pm.Match.Date != nil {
		out = pm.Match.Date.Format("2006-01-02")
	}
	if pm.Match.Time != nil && *pm.Match.Time != "" {
		if out != "" {
			out += " "
		}
		out += *pm.Match.Time
	}
	return out
}

// bracketWarnings flags shapes the bye compensation does not handle.
func bracketWarnings(numbered []*PlayoffMatch) []string {
	byNum := indexByNum(numbered)
	var warnings []string
	for _, pm := range numbered {
		num := *pm.MatchNum()
		switch pm.Section {
		case SectionWinners:
			if pm.Home.Kind != RefWinner || pm.Away.Kind != RefWinner {
				continue
			}
			hi, okH := byNum[pm.Home.N]
			ai, okA := byNum[pm.Away.N]
			if !okH || !okA {
				continue
			}
			h, a := numbered[hi], numbered[ai]
			if h.Section == SectionWinners && a.Section == SectionWinners && h.Round != a.Round {
				warnings = append(warnings, fmt.Sprintf("match %d: feeders %d (round %d) and %d (round %d) are in different rounds", num, pm.Home.N, h.Round, pm.Away.N, a.Round))
			}
		case SectionLosers:
			homeRef, awayRef := pm.Home.IsMatchRef(), pm.Away.IsMatchRef()
			if homeRef != awayRef {
				warnings = append(warnings, fmt.Sprintf("match %d: losers bracket bye is not balanced", num))
			}
		}
	}
	return warnings
}
