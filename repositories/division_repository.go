package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/volleyball-league/models"
)

var ErrDivisionNotFound = errors.New("division not found")

type DivisionRepository interface {
	GetByID(ctx context.Context, id int) (*models.Division, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Division, error)
}

type postgresDivisionRepository struct {
	db SQLExecutor
}

func NewPostgresDivisionRepository(db *sql.DB) DivisionRepository {
	return &postgresDivisionRepository{db: db}
}

func scanDivision(row rowScanner) (models.Division, error) {
	var d models.Division
	err := row.Scan(&d.ID, &d.SeasonID, &d.Name, &d.Position)
	return d, err
}

func (r *postgresDivisionRepository) GetByID(ctx context.Context, id int) (*models.Division, error) {
	query := `
		SELECT id, season_id, name, position
		FROM divisions
		WHERE id = $1`

	d, err := scanDivision(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDivisionNotFound
		}
		return nil, wrapQueryError("get division", err)
	}
	return &d, nil
}

func (r *postgresDivisionRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Division, error) {
	query := `
		SELECT id, season_id, name, position
		FROM divisions
		WHERE season_id = $1
		ORDER BY position ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, wrapQueryError("list divisions", err)
	}
	divisions, err := collectRows(rows, scanDivision)
	return divisions, wrapQueryError("scan divisions", err)
}
