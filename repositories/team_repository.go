package repositories

import (
	"context"
	"database/sql"

	"github.com/Dosada05/volleyball-league/models"
)

type TeamRepository interface {
	ListByDivision(ctx context.Context, divisionID int) ([]models.Team, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error)
}

type postgresTeamRepository struct {
	db SQLExecutor
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func scanTeam(row rowScanner) (models.Team, error) {
	var t models.Team
	err := row.Scan(&t.ID, &t.DivisionID, &t.Number, &t.Name)
	return t, err
}

func (r *postgresTeamRepository) ListByDivision(ctx context.Context, divisionID int) ([]models.Team, error) {
	query := `
		SELECT id, division_id, number, name
		FROM teams
		WHERE division_id = $1
		ORDER BY number ASC NULLS LAST, name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, divisionID)
	if err != nil {
		return nil, wrapQueryError("list teams", err)
	}
	teams, err := collectRows(rows, scanTeam)
	return teams, wrapQueryError("scan teams", err)
}

func (r *postgresTeamRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.division_id, t.number, t.name
		FROM teams t
		JOIN divisions d ON d.id = t.division_id
		WHERE d.season_id = $1
		ORDER BY d.position ASC, t.number ASC NULLS LAST, t.name ASC, t.id ASC`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, wrapQueryError("list season teams", err)
	}
	teams, err := collectRows(rows, scanTeam)
	return teams, wrapQueryError("scan teams", err)
}
