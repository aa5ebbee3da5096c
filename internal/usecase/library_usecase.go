package usecase

import (
	"context"

	"gamehub/internal/domain/entity"
)

// LibraryUsecase covers the wishlist collaborators and library state queries.
// These writers only ever create or remove wishlisted entries; flipping an
// entry to owned is the purchase orchestrator's exclusive right.
type LibraryUsecase interface {
	// StatusOf reports the user's relationship to a game.
	StatusOf(ctx context.Context, userID, gameID int64) (entity.LibraryStatus, error)

	// AddToWishlist creates a wishlisted entry for the pair. Rejected when an
	// entry already exists in any state.
	AddToWishlist(ctx context.Context, userID, gameID int64) (*entity.LibraryEntry, error)

	// RemoveFromWishlist removes the user's entry. Owned entries are never
	// removable through this path.
	RemoveFromWishlist(ctx context.Context, userID, libraryID int64) error

	// ListLibrary retrieves the user's entries, most recently purchased first.
	ListLibrary(ctx context.Context, userID int64) ([]*entity.LibraryEntry, error)
}
