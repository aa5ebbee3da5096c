// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrGameNotFound is returned when a game is not found.
var ErrGameNotFound = errors.New("game not found")

// GameFilter narrows catalog listings. Zero values mean "no filter".
type GameFilter struct {
	SearchTerm string           // Substring match on the title.
	GenreID    *int64           // Restrict to one genre.
	FreeOnly   bool             // Only zero-priced games; overrides the price bounds.
	MinPrice   *decimal.Decimal // Inclusive lower price bound.
	MaxPrice   *decimal.Decimal // Inclusive upper price bound.
}

// GameRepository defines read-only catalog lookups.
type GameRepository interface {
	// FindGameByID retrieves a game by its identity.
	FindGameByID(ctx context.Context, id int64) (*entity.Game, error)

	// ListGames retrieves games matching the filter, ordered by title.
	ListGames(ctx context.Context, filter GameFilter) ([]*entity.Game, error)
}
