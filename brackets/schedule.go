package brackets

import (
	"cmp"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/volleyball-league/models"
)

const (
	StatusScheduled = "scheduled"
	StatusFinal     = "final"
	StatusNoResult  = "no_result"
)

// LineItem is one row of a division's schedule/results table.
type LineItem struct {
	Key        string     `json:"key"`
	MatchID    *int       `json:"match_id,omitempty"`
	MatchNum   *int       `json:"match_num,omitempty"`
	Week       int        `json:"week"`
	Date       *time.Time `json:"date,omitempty"`
	Time       string     `json:"time,omitempty"`
	Court      string     `json:"court,omitempty"`
	HomeTeamID *int       `json:"home_team_id,omitempty"`
	AwayTeamID *int       `json:"away_team_id,omitempty"`
	Home       string     `json:"home"`
	Away       string     `json:"away"`
	WorkTeam   string     `json:"work_team,omitempty"`
	Section    Section    `json:"section,omitempty"`
	Round      int        `json:"round,omitempty"`
	HomeGames  int        `json:"home_games"`
	AwayGames  int        `json:"away_games"`
	Sets       string     `json:"sets"`
	Winner     string     `json:"winner,omitempty"`
	Status     string     `json:"status"`
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock parses "H:MM" or "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 23 || mins > 59 {
		return 0, false
	}
	return h*60 + mins, true
}

// BuildSchedule returns line items for plain (non-bracket) matches such as
// the regular season, in schedule order.
func BuildSchedule(matches []models.Match, teams []models.Team) []LineItem {
	pms := make([]*PlayoffMatch, 0, len(matches))
	for i := range matches {
		pms = append(pms, &PlayoffMatch{
			Key:   fmt.Sprintf("match:%d", matches[i].ID),
			Match: &matches[i],
			Home:  SourceRef{Kind: RefNone},
			Away:  SourceRef{Kind: RefNone},
		})
	}
	labeler := NewLabeler(teams, pms)
	items := make([]LineItem, 0, len(pms))
	for _, pm := range pms {
		items = append(items, newLineItem(pm, labeler, false))
	}
	SortLineItems(items)
	return items
}

func newLineItem(pm *PlayoffMatch, labeler *Labeler, bracket bool) LineItem {
	item := LineItem{
		Key:      pm.Key,
		MatchNum: pm.MatchNum(),
		Home:     labeler.SideLabel(pm, SideHome),
		Away:     labeler.SideLabel(pm, SideAway),
		WorkTeam: labeler.WorkTeamLabel(pm),
		Status:   StatusScheduled,
		Sets:     "-",
	}
	if bracket {
		item.Section = pm.Section
		item.Round = pm.Round
	}
	if pm.Meta != nil {
		item.Week = pm.Meta.Week
	}
	if m := pm.Match; m != nil {
		item.MatchID = intPtr(m.ID)
		item.Week = m.Week
		item.Date = m.Date
		if m.Time != nil {
			item.Time = strings.TrimSpace(*m.Time)
		}
		if m.Court != nil {
			item.Court = strings.TrimSpace(*m.Court)
		}
		item.HomeTeamID = copyInt(m.HomeTeamID)
		item.AwayTeamID = copyInt(m.AwayTeamID)

		res := pm.Result()
		item.HomeGames = res.HomeGames
		item.AwayGames = res.AwayGames
		item.Sets = FormatSets(res)
		switch {
		case res.Decided():
			item.Status = StatusFinal
			if label, ok := labeler.TeamLabel(*res.WinnerTeamID); ok {
				item.Winner = label
			}
		case res.HasScores:
			item.Status = StatusNoResult
		}
	}
	return item
}

// SortLineItems orders items by week, time of day, court and match number.
// Items without a parseable time sort after timed ones in the same week.
func SortLineItems(items []LineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		ta, okA := ParseClock(a.Time)
		tb, okB := ParseClock(b.Time)
		if okA != okB {
			return okA
		}
		if okA && ta != tb {
			return ta < tb
		}
		if c := compareCourts(a.Court, b.Court); c != 0 {
			return c < 0
		}
		switch {
		case a.MatchNum != nil && b.MatchNum != nil && *a.MatchNum != *b.MatchNum:
			return *a.MatchNum < *b.MatchNum
		case a.MatchNum != nil && b.MatchNum == nil:
			return true
		case a.MatchNum == nil && b.MatchNum != nil:
			return false
		}
		return a.Key < b.Key
	})
}

// compareCourts orders numbered courts numerically, then named courts
// case-insensitively, then empty courts.
func compareCourts(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
