package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"
)

// Domain-specific errors for library persistence.
var (
	// ErrLibraryEntryNotFound is returned when a library entry is not found.
	ErrLibraryEntryNotFound = errors.New("library entry not found")
	// ErrDuplicateLibraryEntry is returned when an entry already exists for the (user, game) pair.
	ErrDuplicateLibraryEntry = errors.New("library entry already exists for user and game")
	// ErrDuplicateActivationCode is returned when the activation code is already issued.
	ErrDuplicateActivationCode = errors.New("activation code already issued")
)

// LibraryRepository defines library-entry database operations.
type LibraryRepository interface {
	// CreateEntry persists a new library entry (wishlisted or owned).
	CreateEntry(ctx context.Context, entry *entity.LibraryEntry) error

	// FindEntryByID retrieves an entry by its identity.
	FindEntryByID(ctx context.Context, id int64) (*entity.LibraryEntry, error)

	// FindEntryByUserAndGame retrieves the entry for the (user, game) pair.
	FindEntryByUserAndGame(ctx context.Context, userID, gameID int64) (*entity.LibraryEntry, error)

	// UpdateEntry persists the entry's purchase date and activation code.
	UpdateEntry(ctx context.Context, entry *entity.LibraryEntry) error

	// DeleteEntry removes an entry by its identity.
	DeleteEntry(ctx context.Context, id int64) error

	// ListEntriesByUser retrieves all entries for a user, most recently
	// purchased first, with game titles resolved.
	ListEntriesByUser(ctx context.Context, userID int64) ([]*entity.LibraryEntry, error)

	// StatusesByUser returns the library status per game for a user.
	StatusesByUser(ctx context.Context, userID int64) (map[int64]entity.LibraryStatus, error)

	// ActivationCodeExists reports whether the code has already been issued.
	ActivationCodeExists(ctx context.Context, code string) (bool, error)
}
