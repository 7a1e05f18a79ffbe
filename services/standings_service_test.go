package services

import (
	"context"
	"testing"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsService_GetDivisionStandings(t *testing.T) {
	d, m, _, tm := finalDivisionRepos()
	var gotFilter repositories.MatchFilter
	m.ListByDivisionFunc = func(ctx context.Context, divisionID int, filter repositories.MatchFilter) ([]models.Match, error) {
		gotFilter = filter
		return []models.Match{
			{ID: 1, DivisionID: 7, HomeTeamID: intPtr(1), AwayTeamID: intPtr(2),
				HomeSet1: intPtr(25), AwaySet1: intPtr(20), HomeSet2: intPtr(18), AwaySet2: intPtr(25), HomeSet3: intPtr(15), AwaySet3: intPtr(10)},
		}, nil
	}
	svc := NewStandingsService(d, m, tm)

	result, err := svc.GetDivisionStandings(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, gotFilter.Playoff)
	assert.False(t, *gotFilter.Playoff)

	assert.Equal(t, "Coed A", result.Division.Name)
	require.Len(t, result.Standings, 2)
	top := result.Standings[0]
	assert.Equal(t, 1, top.TeamID)
	assert.Equal(t, 2, top.Wins)
	assert.Equal(t, 1, top.Losses)
	assert.Equal(t, 58, top.PointsFor)
	assert.Equal(t, 55, top.PointsAgainst)
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, 2, result.Standings[1].Rank)
}

func TestStandingsService_GetDivisionStandingsNotFound(t *testing.T) {
	d, m, _, tm := finalDivisionRepos()
	svc := NewStandingsService(d, m, tm)

	_, err := svc.GetDivisionStandings(context.Background(), 3)
	assert.ErrorIs(t, err, ErrDivisionNotFound)
}

func TestStandingsService_GetSeasonStandings(t *testing.T) {
	divisions := &mockDivisionRepo{
		ListBySeasonFunc: func(ctx context.Context, seasonID int) ([]models.Division, error) {
			if seasonID != 2 {
				return nil, nil
			}
			return []models.Division{
				{ID: 10, SeasonID: 2, Name: "Upper", Position: 1},
				{ID: 11, SeasonID: 2, Name: "Lower", Position: 2},
			}, nil
		},
	}
	var gotIDs []int
	matches := &mockMatchRepo{
		ListByDivisionsFunc: func(ctx context.Context, divisionIDs []int) ([]models.Match, error) {
			gotIDs = divisionIDs
			return []models.Match{
				{ID: 1, DivisionID: 10, HomeTeamID: intPtr(1), AwayTeamID: intPtr(2), HomeScore: intPtr(0), AwayScore: intPtr(2)},
				{ID: 2, DivisionID: 11, HomeTeamID: intPtr(3), AwayTeamID: intPtr(4), HomeScore: intPtr(2), AwayScore: intPtr(0)},
				{ID: 3, DivisionID: 11, IsPlayoff: true, HomeTeamID: intPtr(4), AwayTeamID: intPtr(3), HomeScore: intPtr(2), AwayScore: intPtr(0)},
			}, nil
		},
	}
	teams := &mockTeamRepo{
		ListBySeasonFunc: func(ctx context.Context, seasonID int) ([]models.Team, error) {
			return []models.Team{
				{ID: 1, DivisionID: 10, Name: "A"},
				{ID: 2, DivisionID: 10, Name: "B"},
				{ID: 3, DivisionID: 11, Name: "C"},
				{ID: 4, DivisionID: 11, Name: "D"},
			}, nil
		},
	}
	svc := NewStandingsService(divisions, matches, teams)

	result, err := svc.GetSeasonStandings(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, gotIDs)
	require.Len(t, result, 2)

	assert.Equal(t, "Upper", result[0].Division.Name)
	assert.Equal(t, 2, result[0].Standings[0].TeamID)

	assert.Equal(t, "Lower", result[1].Division.Name)
	assert.Equal(t, 3, result[1].Standings[0].TeamID)
	assert.Equal(t, 2, result[1].Standings[0].Wins, "playoff results do not count")

	_, err = svc.GetSeasonStandings(context.Background(), 5)
	assert.ErrorIs(t, err, ErrSeasonNotFound)
}
