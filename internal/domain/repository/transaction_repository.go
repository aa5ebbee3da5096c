package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"
)

// ErrDuplicateTransaction is returned when a purchase record already exists
// for the (user, game) pair. The table carries a unique index on the pair, so
// two concurrent purchases cannot both commit.
var ErrDuplicateTransaction = errors.New("transaction already exists for user and game")

// TransactionRepository defines purchase-record database operations. The
// table is an append-only ledger: rows are created once and never mutated.
type TransactionRepository interface {
	// CreateTransaction persists a new purchase record.
	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error

	// ExistsForUserAndGame reports whether a purchase record exists for the pair.
	ExistsForUserAndGame(ctx context.Context, userID, gameID int64) (bool, error)
}
