package brackets

import (
	"sort"

	"github.com/Dosada05/volleyball-league/models"
)

type PlayoffInput struct {
	DivisionID int
	Matches    []models.Match
	Metas      []models.BracketMeta
	Teams      []models.Team
}

type RoundGroup struct {
	Round   int        `json:"round"`
	Matches []LineItem `json:"matches"`
}

type SectionGroup struct {
	Section Section      `json:"section"`
	Rounds  []RoundGroup `json:"rounds"`
}

// PlayoffView is everything the playoff page renders for one division.
// Bracket is nil when no match carries a bracket match number.
type PlayoffView struct {
	DivisionID int            `json:"division_id"`
	Schedule   []LineItem     `json:"schedule"`
	Sections   []SectionGroup `json:"sections"`
	Bracket    *BracketView   `json:"bracket"`
	Champion   *string        `json:"champion"`
}

// Assemble runs the whole playoff pipeline over one division's rows. It
// works on its own copies of the input and never fails; empty input gives an
// empty view with no bracket.
func Assemble(in PlayoffInput) *PlayoffView {
	matches := append([]models.Match(nil), in.Matches...)
	metas := append([]models.BracketMeta(nil), in.Metas...)

	combined := Combine(matches, metas)
	Prepare(combined)
	labeler := NewLabeler(in.Teams, combined)

	view := &PlayoffView{
		DivisionID: in.DivisionID,
		Schedule:   make([]LineItem, 0, len(combined)),
		Sections:   []SectionGroup{},
	}
	for _, pm := range combined {
		view.Schedule = append(view.Schedule, newLineItem(pm, labeler, true))
	}
	SortLineItems(view.Schedule)

	view.Sections = groupSections(combined, labeler)
	view.Bracket = Synthesize(combined, labeler)
	view.Champion = Champion(combined, labeler)
	return view
}

func groupSections(combined []*PlayoffMatch, labeler *Labeler) []SectionGroup {
	groups := make([]SectionGroup, 0, 3)
	for _, sec := range []Section{SectionWinners, SectionLosers, SectionChampionship} {
		byRound := make(map[int][]LineItem)
		for _, pm := range combined {
			if pm.Section != sec {
				continue
			}
			byRound[pm.Round] = append(byRound[pm.Round], newLineItem(pm, labeler, true))
		}
		if len(byRound) == 0 {
			continue
		}
		rounds := make([]int, 0, len(byRound))
		for r := range byRound {
			rounds = append(rounds, r)
		}
		sort.Ints(rounds)

		group := SectionGroup{Section: sec}
		for _, r := range rounds {
			group.Rounds = append(group.Rounds, RoundGroup{Round: r, Matches: byRound[r]})
		}
		groups = append(groups, group)
	}
	return groups
}

// Champion returns the label of the latest decided winner in the
// championship section. Without a championship section it falls back to the
// winner of the highest-numbered match. Nil means no champion yet.
func Champion(combined []*PlayoffMatch, labeler *Labeler) *string {
	var final []*PlayoffMatch
	for _, pm := range combined {
		if pm.Section == SectionChampionship {
			final = append(final, pm)
		}
	}

	if len(final) > 0 {
		sort.SliceStable(final, func(i, j int) bool {
			if final[i].Round != final[j].Round {
				return final[i].Round > final[j].Round
			}
			return numOrZero(final[i]) > numOrZero(final[j])
		})
		for _, pm := range final {
			if label := winnerLabel(pm, labeler); label != nil {
				return label
			}
		}
		return nil
	}

	var last *PlayoffMatch
	for _, pm := range combined {
		if pm.MatchNum() == nil {
			continue
		}
		if last == nil || *pm.MatchNum() > *last.MatchNum() {
			last = pm
		}
	}
	if last == nil {
		return nil
	}
	return winnerLabel(last, labeler)
}

func winnerLabel(pm *PlayoffMatch, labeler *Labeler) *string {
	res := pm.Result()
	if !res.Decided() {
		return nil
	}
	if label, ok := labeler.TeamLabel(*res.WinnerTeamID); ok {
		return &label
	}
	if res.WinnerSide != SideNone {
		label := labeler.SideLabel(pm, res.WinnerSide)
		return &label
	}
	return nil
}

func numOrZero(pm *PlayoffMatch) int {
	if n := pm.MatchNum(); n != nil {
		return *n
	}
	return 0
}
