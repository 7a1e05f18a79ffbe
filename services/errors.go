package services

import "errors"

var (
	ErrDivisionNotFound = errors.New("division not found")
	ErrSeasonNotFound   = errors.New("season not found or has no divisions")

	ErrInvalidTeamCount    = errors.New("invalid team count for bracket template")
	ErrSearchQueryRequired = errors.New("search query is required")
)
