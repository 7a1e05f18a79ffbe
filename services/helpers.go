package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
)

func handleRepositoryError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrDivisionNotFound) {
		return ErrDivisionNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func matchesByDivision(matches []models.Match) map[int][]models.Match {
	out := make(map[int][]models.Match)
	for _, m := range matches {
		out[m.DivisionID] = append(out[m.DivisionID], m)
	}
	return out
}

func teamsByDivision(teams []models.Team) map[int][]models.Team {
	out := make(map[int][]models.Team)
	for _, t := range teams {
		out[t.DivisionID] = append(out[t.DivisionID], t)
	}
	return out
}
