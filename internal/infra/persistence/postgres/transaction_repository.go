package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements the repository.TransactionRepository
// interface. The table is append-only; there is no update or delete path.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateTransaction persists a new purchase record. The unique index on
// (user_id, game_id) turns a concurrent double purchase into
// ErrDuplicateTransaction for the loser.
func (repo *transactionRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransaction
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("unknown user or game reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID

	return nil
}

// ExistsForUserAndGame reports whether a purchase record exists for the pair.
func (repo *transactionRepository) ExistsForUserAndGame(ctx context.Context, userID, gameID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count transactions for user and game")
	}

	return count > 0, nil
}

// fromTransactionDomain converts a domain entity to a persistence model.
func fromTransactionDomain(transaction *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		GameID:          transaction.GameID,
		PurchaseDate:    transaction.PurchaseDate,
		PricePaid:       transaction.PricePaid,
		DiscountPercent: transaction.DiscountPercent,
		PaymentMethod:   transaction.PaymentMethod,
	}
}
