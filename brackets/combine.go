package brackets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dosada05/volleyball-league/models"
)

type Section string

const (
	SectionUnclassified Section = ""
	SectionWinners      Section = "winners"
	SectionLosers       Section = "losers"
	SectionChampionship Section = "championship"
)

// PlayoffMatch is the working record for one bracket position: a played or
// scheduled match, its bracket metadata, or a metadata-only placeholder.
// Section and Round are filled in by Classify and AssignRounds.
type PlayoffMatch struct {
	Key   string
	Match *models.Match
	Meta  *models.BracketMeta

	Home SourceRef
	Away SourceRef

	Section Section
	Round   int
}

// MatchNum returns the bracket match number, or nil when the match has no
// metadata.
func (pm *PlayoffMatch) MatchNum() *int {
	if pm.Meta == nil {
		return nil
	}
	return intPtr(pm.Meta.MatchNum)
}

// IsPlaceholder reports whether the match exists only as bracket metadata.
func (pm *PlayoffMatch) IsPlaceholder() bool {
	return pm.Match == nil
}

func (pm *PlayoffMatch) TeamID(side Side) *int {
	return sideTeam(pm.Match, side)
}

func (pm *PlayoffMatch) Ref(side Side) SourceRef {
	if side == SideAway {
		return pm.Away
	}
	return pm.Home
}

func (pm *PlayoffMatch) Result() GameResult {
	return ResolveGames(pm.Match)
}

// metaLabel returns the explicit "winners"/"losers" label from metadata, or
// unclassified for anything else.
func (pm *PlayoffMatch) metaLabel() Section {
	if pm.Meta == nil || pm.Meta.Bracket == nil {
		return SectionUnclassified
	}
	switch strings.ToLower(strings.TrimSpace(*pm.Meta.Bracket)) {
	case string(SectionWinners):
		return SectionWinners
	case string(SectionLosers):
		return SectionLosers
	default:
		return SectionUnclassified
	}
}

// Combine joins playoff matches with their bracket metadata. Only the first
// metadata row per match id and per match number is used. Metadata rows that
// point at no known match become placeholders. The result is ordered by match
// number (matches without one last), then key, so every later pass sees the
// same order for the same input.
func Combine(matches []models.Match, metas []models.BracketMeta) []*PlayoffMatch {
	seenNums := make(map[int]bool)
	metaByMatchID := make(map[int]*models.BracketMeta)
	accepted := make([]*models.BracketMeta, 0, len(metas))
	for i := range metas {
		meta := &metas[i]
		if seenNums[meta.MatchNum] {
			continue
		}
		if meta.MatchID != nil {
			if _, dup := metaByMatchID[*meta.MatchID]; dup {
				continue
			}
			metaByMatchID[*meta.MatchID] = meta
		}
		seenNums[meta.MatchNum] = true
		accepted = append(accepted, meta)
	}

	combined := make([]*PlayoffMatch, 0, len(matches)+len(accepted))
	usedMeta := make(map[*models.BracketMeta]bool)
	seenMatches := make(map[int]bool)
	for i := range matches {
		m := &matches[i]
		if seenMatches[m.ID] {
			continue
		}
		meta := metaByMatchID[m.ID]
		if meta == nil && !m.IsPlayoff {
			continue
		}
		seenMatches[m.ID] = true
		pm := &PlayoffMatch{
			Key:   fmt.Sprintf("match:%d", m.ID),
			Match: m,
			Meta:  meta,
			Round: 1,
		}
		if meta != nil {
			usedMeta[meta] = true
		}
		combined = append(combined, pm)
	}

	for _, meta := range accepted {
		if usedMeta[meta] {
			continue
		}
		combined = append(combined, &PlayoffMatch{
			Key:   fmt.Sprintf("meta:%d", meta.ID),
			Meta:  meta,
			Round: 1,
		})
	}

	for _, pm := range combined {
		if pm.Meta != nil {
			pm.Home = ParseSourcePtr(pm.Meta.HomeSource)
			pm.Away = ParseSourcePtr(pm.Meta.AwaySource)
		} else {
			pm.Home = SourceRef{Kind: RefNone}
			pm.Away = SourceRef{Kind: RefNone}
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		a, b := combined[i].MatchNum(), combined[j].MatchNum()
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return combined[i].Key < combined[j].Key
	})
	return combined
}

// indexByNum maps match numbers to positions in the combined slice.
func indexByNum(matches []*PlayoffMatch) map[int]int {
	idx := make(map[int]int, len(matches))
	for i, pm := range matches {
		if n := pm.MatchNum(); n != nil {
			if _, ok := idx[*n]; !ok {
				idx[*n] = i
			}
		}
	}
	return idx
}
