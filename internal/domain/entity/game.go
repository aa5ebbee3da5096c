// Package entity contains the core domain objects of the storefront.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game is a catalog item. Price is the undiscounted list price.
type Game struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	GenreID     *int64          `json:"genre_id"`
	GenreName   string          `json:"genre_name"` // Resolved for listings, empty otherwise.
	Price       decimal.Decimal `json:"price"`
	Rating      *float64        `json:"rating"`
	ReleaseDate *time.Time      `json:"release_date"`
	IsAvailable bool            `json:"is_available"`
}

// IsFree reports whether the game has a zero list price.
func (g *Game) IsFree() bool {
	return g.Price.IsZero()
}
