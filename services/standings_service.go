package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
	"github.com/Dosada05/volleyball-league/standings"
	"golang.org/x/sync/errgroup"
)

type DivisionStandings struct {
	Division  models.Division   `json:"division"`
	Standings []models.Standing `json:"standings"`
}

type StandingsService interface {
	GetDivisionStandings(ctx context.Context, divisionID int) (*DivisionStandings, error)
	GetSeasonStandings(ctx context.Context, seasonID int) ([]DivisionStandings, error)
}

type standingsService struct {
	divisionRepo repositories.DivisionRepository
	matchRepo    repositories.MatchRepository
	teamRepo     repositories.TeamRepository
}

func NewStandingsService(
	divisionRepo repositories.DivisionRepository,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
) StandingsService {
	return &standingsService{
		divisionRepo: divisionRepo,
		matchRepo:    matchRepo,
		teamRepo:     teamRepo,
	}
}

func (s *standingsService) GetDivisionStandings(ctx context.Context, divisionID int) (*DivisionStandings, error) {
	var (
		division *models.Division
		matches  []models.Match
		teams    []models.Team
	)
	regularOnly := false

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.divisionRepo.GetByID(gCtx, divisionID)
		if err != nil {
			return handleRepositoryError(err, "failed to get division")
		}
		division = d
		return nil
	})
	g.Go(func() error {
		m, err := s.matchRepo.ListByDivision(gCtx, divisionID, repositories.MatchFilter{Playoff: &regularOnly})
		if err != nil {
			return fmt.Errorf("failed to list matches for division %d: %w", divisionID, err)
		}
		matches = m
		return nil
	})
	g.Go(func() error {
		t, err := s.teamRepo.ListByDivision(gCtx, divisionID)
		if err != nil {
			return fmt.Errorf("failed to list teams for division %d: %w", divisionID, err)
		}
		teams = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DivisionStandings{
		Division:  *division,
		Standings: standings.Compute(divisionID, teams, matches),
	}, nil
}

// GetSeasonStandings computes every division of the season from two bulk
// loads rather than one round trip per division.
func (s *standingsService) GetSeasonStandings(ctx context.Context, seasonID int) ([]DivisionStandings, error) {
	divisions, err := s.divisionRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, handleRepositoryError(err, "failed to list divisions")
	}
	if len(divisions) == 0 {
		return nil, ErrSeasonNotFound
	}

	ids := make([]int, len(divisions))
	for i, d := range divisions {
		ids[i] = d.ID
	}

	var (
		matches []models.Match
		teams   []models.Team
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.matchRepo.ListByDivisions(gCtx, ids)
		if err != nil {
			return fmt.Errorf("failed to list matches for season %d: %w", seasonID, err)
		}
		matches = m
		return nil
	})
	g.Go(func() error {
		t, err := s.teamRepo.ListBySeason(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list teams for season %d: %w", seasonID, err)
		}
		teams = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byDivisionMatches := matchesByDivision(matches)
	byDivisionTeams := teamsByDivision(teams)

	out := make([]DivisionStandings, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, DivisionStandings{
			Division:  d,
			Standings: standings.Compute(d.ID, byDivisionTeams[d.ID], byDivisionMatches[d.ID]),
		})
	}
	return out, nil
}
