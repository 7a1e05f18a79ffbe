package brackets

import (
	"context"

	"github.com/Dosada05/volleyball-league/models"
)

type GenerateBracketParams struct {
	DivisionID int
	Week       int
	Teams      int
}

// BracketGenerator produces bracket metadata templates that organisers fill
// in with real matches.
type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]models.BracketMeta, error)

	GetName() string
}
