package services

import (
	"context"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
)

type DivisionService interface {
	GetDivision(ctx context.Context, divisionID int) (*models.Division, error)
	ListDivisions(ctx context.Context, seasonID int) ([]models.Division, error)
}

type divisionService struct {
	divisionRepo repositories.DivisionRepository
}

func NewDivisionService(divisionRepo repositories.DivisionRepository) DivisionService {
	return &divisionService{divisionRepo: divisionRepo}
}

func (s *divisionService) GetDivision(ctx context.Context, divisionID int) (*models.Division, error) {
	division, err := s.divisionRepo.GetByID(ctx, divisionID)
	if err != nil {
		return nil, handleRepositoryError(err, "failed to get division")
	}
	return division, nil
}

// ListDivisions returns the season's divisions in display order. A season
// without divisions is reported as not found; seasons have no table of
// their own.
func (s *divisionService) ListDivisions(ctx context.Context, seasonID int) ([]models.Division, error) {
	divisions, err := s.divisionRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, handleRepositoryError(err, "failed to list divisions")
	}
	if len(divisions) == 0 {
		return nil, ErrSeasonNotFound
	}
	return divisions, nil
}
