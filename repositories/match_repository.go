package repositories

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/lib/pq"
)

// MatchFilter narrows a division's match list. A nil Playoff returns both
// regular-season and playoff matches.
type MatchFilter struct {
	Playoff *bool
	Week    *int
}

type MatchRepository interface {
	ListByDivision(ctx context.Context, divisionID int, filter MatchFilter) ([]models.Match, error)
	ListByDivisions(ctx context.Context, divisionIDs []int) ([]models.Match, error)
}

type postgresMatchRepository struct {
	db SQLExecutor
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, division_id, week, date, time, court, home_team_id, away_team_id,
	home_score, away_score,
	home_set1_score, away_set1_score, home_set2_score, away_set2_score, home_set3_score, away_set3_score,
	winner_team_id, is_playoff`

func scanMatch(row rowScanner) (models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID, &m.DivisionID, &m.Week, &m.Date, &m.Time, &m.Court, &m.HomeTeamID, &m.AwayTeamID,
		&m.HomeScore, &m.AwayScore,
		&m.HomeSet1, &m.AwaySet1, &m.HomeSet2, &m.AwaySet2, &m.HomeSet3, &m.AwaySet3,
		&m.WinnerTeamID, &m.IsPlayoff,
	)
	return m, err
}

func (r *postgresMatchRepository) ListByDivision(ctx context.Context, divisionID int, filter MatchFilter) ([]models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT` + matchColumns + `
		FROM matches
		WHERE division_id = $1`)

	args := []interface{}{divisionID}
	placeholderIndex := 2

	if filter.Playoff != nil {
		queryBuilder.WriteString(" AND is_playoff = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Playoff)
		placeholderIndex++
	}
	if filter.Week != nil {
		queryBuilder.WriteString(" AND week = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Week)
		placeholderIndex++
	}
	queryBuilder.WriteString(" ORDER BY week ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, wrapQueryError("list matches", err)
	}
	matches, err := collectRows(rows, scanMatch)
	return matches, wrapQueryError("scan matches", err)
}

func (r *postgresMatchRepository) ListByDivisions(ctx context.Context, divisionIDs []int) ([]models.Match, error) {
	if len(divisionIDs) == 0 {
		return []models.Match{}, nil
	}
	query := `SELECT` + matchColumns + `
		FROM matches
		WHERE division_id = ANY($1)
		ORDER BY division_id ASC, week ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(divisionIDs))
	if err != nil {
		return nil, wrapQueryError("list matches for divisions", err)
	}
	matches, err := collectRows(rows, scanMatch)
	return matches, wrapQueryError("scan matches", err)
}
