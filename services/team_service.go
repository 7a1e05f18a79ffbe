package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

type TeamSearchResult struct {
	Team     models.Team `json:"team"`
	Label    string      `json:"label"`
	Distance int         `json:"distance"`
}

type TeamService interface {
	SearchTeams(ctx context.Context, seasonID int, query string, limit int) ([]TeamSearchResult, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

// SearchTeams fuzzy-matches query against the display labels ("#7 Net
// Results") of every team in the season. Closer matches come first.
func (s *teamService) SearchTeams(ctx context.Context, seasonID int, query string, limit int) ([]TeamSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrSearchQueryRequired
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for season %d: %w", seasonID, err)
	}

	labels := make([]string, len(teams))
	for i, t := range teams {
		labels[i] = brackets.FormatTeam(t)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}

	results := make([]TeamSearchResult, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, TeamSearchResult{
			Team:     teams[r.OriginalIndex],
			Label:    r.Target,
			Distance: r.Distance,
		})
	}
	return results, nil
}
