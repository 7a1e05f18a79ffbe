package repositories

import (
	"context"
	"database/sql"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/lib/pq"
)

type BracketRepository interface {
	ListByDivision(ctx context.Context, divisionID int) ([]models.BracketMeta, error)
	ListByDivisions(ctx context.Context, divisionIDs []int) ([]models.BracketMeta, error)
}

type postgresBracketRepository struct {
	db SQLExecutor
}

func NewPostgresBracketRepository(db *sql.DB) BracketRepository {
	return &postgresBracketRepository{db: db}
}

const bracketColumns = `
	id, division_id, week, match_num, match_id, bracket, home_source, away_source,
	next_match_num, next_loser_match_num, work_team_id`

func scanBracketMeta(row rowScanner) (models.BracketMeta, error) {
	var b models.BracketMeta
	err := row.Scan(
		&b.ID, &b.DivisionID, &b.Week, &b.MatchNum, &b.MatchID, &b.Bracket, &b.HomeSource, &b.AwaySource,
		&b.NextMatchNum, &b.NextLoserMatchNum, &b.WorkTeamID,
	)
	return b, err
}

// ListByDivision returns bracket rows in id order. The order matters: the
// engine keeps the first row it sees per match and per match number.
func (r *postgresBracketRepository) ListByDivision(ctx context.Context, divisionID int) ([]models.BracketMeta, error) {
	query := `SELECT` + bracketColumns + `
		FROM bracket_matches
		WHERE division_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, divisionID)
	if err != nil {
		return nil, wrapQueryError("list bracket matches", err)
	}
	metas, err := collectRows(rows, scanBracketMeta)
	return metas, wrapQueryError("scan bracket matches", err)
}

func (r *postgresBracketRepository) ListByDivisions(ctx context.Context, divisionIDs []int) ([]models.BracketMeta, error) {
	if len(divisionIDs) == 0 {
		return []models.BracketMeta{}, nil
	}
	query := `SELECT` + bracketColumns + `
		FROM bracket_matches
		WHERE division_id = ANY($1)
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(divisionIDs))
	if err != nil {
		return nil, wrapQueryError("list bracket matches for divisions", err)
	}
	metas, err := collectRows(rows, scanBracketMeta)
	return metas, wrapQueryError("scan bracket matches", err)
}
