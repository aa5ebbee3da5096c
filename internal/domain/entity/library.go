package entity

import (
	"time"

	"gamehub/internal/errors"
)

// LibraryStatus is the tagged state of a user's relationship to a game.
// It is derived from the library entry's nullable fields in exactly one place
// (Status below) so the derivation rule is never duplicated.
type LibraryStatus string

const (
	// LibraryStatusNone means no library entry exists for the (user, game) pair.
	LibraryStatusNone LibraryStatus = "none"
	// LibraryStatusWishlisted means an entry exists but the game has not been purchased.
	LibraryStatusWishlisted LibraryStatus = "wishlisted"
	// LibraryStatusOwned means the game has been purchased. Owned is terminal.
	LibraryStatusOwned LibraryStatus = "owned"
)

// ErrAlreadyOwnedEntry is returned when attempting to re-own an owned entry.
var ErrAlreadyOwnedEntry = errors.New("library entry is already owned")

// LibraryEntry is the per-(user, game) ownership record. At most one entry
// exists per pair; the purchase orchestrator is the only writer allowed to
// flip an entry to owned.
type LibraryEntry struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	GameID         int64      `json:"game_id"`
	PurchaseDate   *time.Time `json:"purchase_date"`   // Set iff owned.
	ActivationCode *string    `json:"activation_code"` // Set iff owned.
	GameTitle      string     `json:"game_title"`      // Resolved for listings, empty otherwise.
}

// Status derives the entry's state from its nullable fields.
func (e *LibraryEntry) Status() LibraryStatus {
	if e.PurchaseDate != nil && e.ActivationCode != nil {
		return LibraryStatusOwned
	}

	return LibraryStatusWishlisted
}

// StatusOf derives the library status for a possibly absent entry.
func StatusOf(e *LibraryEntry) LibraryStatus {
	if e == nil {
		return LibraryStatusNone
	}

	return e.Status()
}

// NewWishlistEntry creates an entry in the wishlisted state.
func NewWishlistEntry(userID, gameID int64) *LibraryEntry {
	return &LibraryEntry{
		UserID: userID,
		GameID: gameID,
	}
}

// MarkOwned transitions the entry to owned. Owned is terminal: marking an
// already-owned entry is rejected rather than overwriting the original
// purchase date or activation code.
func (e *LibraryEntry) MarkOwned(purchasedAt time.Time, activationCode string) error {
	if e.Status() == LibraryStatusOwned {
		return ErrAlreadyOwnedEntry
	}

	e.PurchaseDate = &purchasedAt
	e.ActivationCode = &activationCode

	return nil
}
