package impl

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/errors"
	"gamehub/internal/usecase"

	"go.uber.org/fx"
)

type libraryService struct {
	libraryRepo repository.LibraryRepository
	gameRepo    repository.GameRepository
	userRepo    repository.UserRepository
}

// LibraryServiceParams holds dependencies for LibraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	LibraryRepo repository.LibraryRepository
	GameRepo    repository.GameRepository
	UserRepo    repository.UserRepository
}

// NewLibraryService creates a new library service instance.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	return &libraryService{
		libraryRepo: params.LibraryRepo,
		gameRepo:    params.GameRepo,
		userRepo:    params.UserRepo,
	}
}

// StatusOf reports the user's relationship to a game.
func (s *libraryService) StatusOf(ctx context.Context, userID, gameID int64) (entity.LibraryStatus, error) {
	entry, err := s.libraryRepo.FindEntryByUserAndGame(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrLibraryEntryNotFound) {
			return entity.LibraryStatusNone, nil
		}

		return entity.LibraryStatusNone, errors.Wrap(err, "failed to find library entry")
	}

	return entry.Status(), nil
}

// AddToWishlist creates a wishlisted entry for the (user, game) pair.
func (s *libraryService) AddToWishlist(ctx context.Context, userID, gameID int64) (*entity.LibraryEntry, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if _, err := s.gameRepo.FindGameByID(ctx, gameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game")
	}

	entry := entity.NewWishlistEntry(userID, gameID)
	if err := s.libraryRepo.CreateEntry(ctx, entry); err != nil {
		// The unique index on (user_id, game_id) rejects a second entry
		// regardless of its state, so an owned game cannot be re-wishlisted.
		if errors.Is(err, repository.ErrDuplicateLibraryEntry) {
			return nil, domainerrors.ErrAlreadyInLibrary
		}

		return nil, errors.Wrap(err, "failed to create library entry")
	}

	return entry, nil
}

// RemoveFromWishlist removes the user's entry unless it is owned. Ownership
// is terminal; purchased games never leave the library through this path.
func (s *libraryService) RemoveFromWishlist(ctx context.Context, userID, libraryID int64) error {
	entry, err := s.libraryRepo.FindEntryByID(ctx, libraryID)
	if err != nil {
		if errors.Is(err, repository.ErrLibraryEntryNotFound) {
			return domainerrors.ErrLibraryEntryNotFound
		}

		return errors.Wrap(err, "failed to find library entry")
	}

	if entry.UserID != userID {
		return domainerrors.ErrLibraryOwnershipViolation
	}

	if entry.Status() == entity.LibraryStatusOwned {
		return domainerrors.ErrCannotRemoveOwned
	}

	if err := s.libraryRepo.DeleteEntry(ctx, entry.ID); err != nil {
		return errors.Wrap(err, "failed to delete library entry")
	}

	return nil
}

// ListLibrary retrieves the user's entries, most recently purchased first.
func (s *libraryService) ListLibrary(ctx context.Context, userID int64) ([]*entity.LibraryEntry, error) {
	entries, err := s.libraryRepo.ListEntriesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list library entries")
	}

	return entries, nil
}
