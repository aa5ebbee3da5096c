package usecase

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// GameListing is a catalog row annotated for the browsing user.
type GameListing struct {
	*entity.Game
	LibraryStatus       entity.LibraryStatus `json:"library_status"`
	BestDiscountPercent decimal.Decimal      `json:"best_discount_percent"` // Highest active percent, zero when none.
}

// CatalogUsecase covers read-only catalog browsing.
type CatalogUsecase interface {
	// BrowseGames lists games matching the filter. When userID is non-zero,
	// each listing carries that user's library status; the best currently
	// active discount percent is annotated either way.
	BrowseGames(ctx context.Context, userID int64, filter repository.GameFilter) ([]*GameListing, error)

	// GetGame retrieves a single game by identity.
	GetGame(ctx context.Context, gameID int64) (*entity.Game, error)
}
