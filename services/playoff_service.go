package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/models"
	"github.com/Dosada05/volleyball-league/repositories"
	"golang.org/x/sync/errgroup"
)

type PlayoffService interface {
	GetPlayoffView(ctx context.Context, divisionID int) (*brackets.PlayoffView, error)
	GetSchedule(ctx context.Context, divisionID int) ([]brackets.LineItem, error)
	PreviewTemplate(ctx context.Context, teams int) (*TemplatePreview, error)
}

// TemplatePreview is a generated bracket template together with the view the
// engine builds from it.
type TemplatePreview struct {
	Generator string                `json:"generator"`
	Teams     int                   `json:"teams"`
	Metas     []models.BracketMeta  `json:"metas"`
	View      *brackets.PlayoffView `json:"view"`
}

type playoffService struct {
	divisionRepo repositories.DivisionRepository
	matchRepo    repositories.MatchRepository
	bracketRepo  repositories.BracketRepository
	teamRepo     repositories.TeamRepository
	generator    brackets.BracketGenerator
	logger       *slog.Logger
}

func NewPlayoffService(
	divisionRepo repositories.DivisionRepository,
	matchRepo repositories.MatchRepository,
	bracketRepo repositories.BracketRepository,
	teamRepo repositories.TeamRepository,
	generator brackets.BracketGenerator,
	logger *slog.Logger,
) PlayoffService {
	if generator == nil {
		generator = brackets.NewSeededWinnersGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &playoffService{
		divisionRepo: divisionRepo,
		matchRepo:    matchRepo,
		bracketRepo:  bracketRepo,
		teamRepo:     teamRepo,
		generator:    generator,
		logger:       logger,
	}
}

// divisionRows is everything stored for one division.
type divisionRows struct {
	division *models.Division
	matches  []models.Match
	metas    []models.BracketMeta
	teams    []models.Team
}

func (s *playoffService) loadDivision(ctx context.Context, divisionID int, withMetas bool) (*divisionRows, error) {
	rows := &divisionRows{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		division, err := s.divisionRepo.GetByID(gCtx, divisionID)
		if err != nil {
			return handleRepositoryError(err, "failed to get division")
		}
		rows.division = division
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByDivision(gCtx, divisionID, repositories.MatchFilter{})
		if err != nil {
			return fmt.Errorf("failed to list matches for division %d: %w", divisionID, err)
		}
		rows.matches = matches
		return nil
	})

	if withMetas {
		g.Go(func() error {
			metas, err := s.bracketRepo.ListByDivision(gCtx, divisionID)
			if err != nil {
				return fmt.Errorf("failed to list bracket rows for division %d: %w", divisionID, err)
			}
			rows.metas = metas
			return nil
		})
	}

	g.Go(func() error {
		teams, err := s.teamRepo.ListByDivision(gCtx, divisionID)
		if err != nil {
			return fmt.Errorf("failed to list teams for division %d: %w", divisionID, err)
		}
		rows.teams = teams
		return nil
	})

	if err := g.Wait(); err != nil {
		if !errors.Is(err, ErrDivisionNotFound) {
			s.logger.Error("failed to load division rows", slog.Int("division_id", divisionID), slog.Any("error", err))
		}
		return nil, err
	}
	return rows, nil
}

func (s *playoffService) GetPlayoffView(ctx context.Context, divisionID int) (*brackets.PlayoffView, error) {
	rows, err := s.loadDivision(ctx, divisionID, true)
	if err != nil {
		return nil, err
	}

	view := brackets.Assemble(brackets.PlayoffInput{
		DivisionID: divisionID,
		Matches:    rows.matches,
		Metas:      rows.metas,
		Teams:      rows.teams,
	})
	if view.Bracket != nil && len(view.Bracket.Warnings) > 0 {
		s.logger.Warn("bracket has unsupported shapes",
			slog.Int("division_id", divisionID), slog.Any("warnings", view.Bracket.Warnings))
	}
	return view, nil
}

func (s *playoffService) GetSchedule(ctx context.Context, divisionID int) ([]brackets.LineItem, error) {
	rows, err := s.loadDivision(ctx, divisionID, false)
	if err != nil {
		return nil, err
	}
	regular := make([]models.Match, 0, len(rows.matches))
	for _, m := range rows.matches {
		if !m.IsPlayoff {
			regular = append(regular, m)
		}
	}
	return brackets.BuildSchedule(regular, rows.teams), nil
}

func (s *playoffService) PreviewTemplate(ctx context.Context, teams int) (*TemplatePreview, error) {
	metas, err := s.generator.GenerateBracket(ctx, brackets.GenerateBracketParams{Week: 1, Teams: teams})
	if err != nil {
		if errors.Is(err, brackets.ErrTooFewTeams) || errors.Is(err, brackets.ErrTooManyTeams) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTeamCount, err)
		}
		return nil, fmt.Errorf("failed to generate bracket template: %w", err)
	}

	return &TemplatePreview{
		Generator: s.generator.GetName(),
		Teams:     teams,
		Metas:     metas,
		View:      brackets.Assemble(brackets.PlayoffInput{Metas: metas}),
	}, nil
}
