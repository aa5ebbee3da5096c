// Package impl contains the services implementing the use case interfaces.
package impl

import (
	"context"
	"log/slog"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/pricing"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"
	"gamehub/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type purchaseService struct {
	userRepo   repository.UserRepository
	gameRepo   repository.GameRepository
	txnRepo    repository.TransactionRepository
	discountUC usecase.DiscountUsecase
	txManager  repository.TransactionManager
	codeGen    service.ActivationCodeGenerator
	clock      service.Clock
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	GameRepo   repository.GameRepository
	TxnRepo    repository.TransactionRepository
	DiscountUC usecase.DiscountUsecase
	TxManager  repository.TransactionManager
	CodeGen    service.ActivationCodeGenerator
	Clock      service.Clock
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewPurchaseService creates the purchase orchestrator.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		userRepo:   params.UserRepo,
		gameRepo:   params.GameRepo,
		txnRepo:    params.TxnRepo,
		discountUC: params.DiscountUC,
		txManager:  params.TxManager,
		codeGen:    params.CodeGen,
		clock:      params.Clock,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// Purchase fulfills a purchase request.
//
// Preconditions run in order: both references must resolve, and no prior
// transaction may exist for the (user, game) pair. Discount resolution and
// pricing follow; a missing discount degrades to full price. The writes,
// transaction insert, library-entry upsert, activation-code mint, run inside
// a single database transaction, re-checking the idempotency guard against
// the transaction's snapshot. The unique index on transactions(user_id,
// game_id) makes the guard hold under concurrency: of two simultaneous
// purchases for the same pair, one commits and the other surfaces as
// ErrAlreadyOwned.
func (s *purchaseService) Purchase(ctx context.Context, input usecase.PurchaseInput) (*usecase.Receipt, error) {
	user, err := s.userRepo.FindUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidReference.WithDetails("unknown user")
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	game, err := s.gameRepo.FindGameByID(ctx, input.GameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrInvalidReference.WithDetails("unknown game")
		}

		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}

	// Idempotency pre-check. Cheap rejection before any pricing work; the
	// authoritative check is repeated inside the transaction below.
	alreadyPurchased, err := s.txnRepo.ExistsForUserAndGame(ctx, user.ID, game.ID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}
	if alreadyPurchased {
		return nil, domainerrors.ErrAlreadyOwned
	}

	percent := decimal.Zero
	discount, err := s.discountUC.ResolveDiscount(ctx, input.DiscountCode, game.ID)
	if err != nil {
		return nil, domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}
	if discount != nil {
		percent = discount.Percent
	}

	quote := pricing.Compute(game.Price, percent)

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.DefaultPaymentMethod
	}

	now := s.clock.Now()
	transaction := &entity.Transaction{
		UserID:          user.ID,
		GameID:          game.ID,
		PurchaseDate:    now,
		PricePaid:       quote.FinalPrice,
		DiscountPercent: percent,
		PaymentMethod:   paymentMethod,
	}

	var activationCode string
	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		txnRepo := txRepos.NewTransactionRepository()
		libraryRepo := txRepos.NewLibraryRepository()

		exists, err := txnRepo.ExistsForUserAndGame(ctx, user.ID, game.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check prior transaction")
		}
		if exists {
			return repository.ErrDuplicateTransaction
		}

		if err := txnRepo.CreateTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		activationCode, err = s.codeGen.Generate(ctx, libraryRepo.ActivationCodeExists)
		if err != nil {
			return errors.Wrap(err, "failed to generate activation code")
		}

		entry, err := libraryRepo.FindEntryByUserAndGame(ctx, user.ID, game.ID)
		switch {
		case err == nil:
			// Wishlisted entry exists: flip it to owned in place, never
			// insert a duplicate row.
			if err := entry.MarkOwned(now, activationCode); err != nil {
				return err
			}
			if err := libraryRepo.UpdateEntry(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to update library entry")
			}
		case errors.Is(err, repository.ErrLibraryEntryNotFound):
			entry = entity.NewWishlistEntry(user.ID, game.ID)
			if err := entry.MarkOwned(now, activationCode); err != nil {
				return err
			}
			if err := libraryRepo.CreateEntry(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to create library entry")
			}
		default:
			return errors.Wrap(err, "failed to find library entry")
		}

		return nil
	})
	if err != nil {
		return nil, s.classifyPurchaseError(err)
	}

	s.publishPurchaseCompleted(ctx, transaction, game)

	return &usecase.Receipt{
		TransactionID:   transaction.ID,
		UserID:          user.ID,
		GameID:          game.ID,
		GameTitle:       game.Title,
		OriginalPrice:   game.Price,
		DiscountPercent: percent,
		DiscountAmount:  quote.DiscountAmount,
		FinalPrice:      quote.FinalPrice,
		ActivationCode:  activationCode,
		PurchasedAt:     now,
	}, nil
}

// classifyPurchaseError folds transaction-scope failures into the purchase
// failure taxonomy. Duplicate-key rejections from the unique indexes count as
// the idempotent AlreadyOwned outcome: the other writer won the race and this
// request has nothing left to do.
func (s *purchaseService) classifyPurchaseError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateTransaction),
		errors.Is(err, entity.ErrAlreadyOwnedEntry),
		errors.Is(err, repository.ErrDuplicateLibraryEntry):
		return domainerrors.ErrAlreadyOwned
	case errors.Is(err, service.ErrActivationCodeSpaceExhausted):
		s.logger.Error("activation code space exhausted", slog.Any("error", err))

		return domainerrors.ErrCodeSpaceExhausted
	default:
		s.logger.Error("purchase transaction failed", slog.Any("error", err))

		return domainerrors.ErrPersistenceFailure.WithDetails(err.Error())
	}
}

// publishPurchaseCompleted emits the post-commit event. Best-effort: the
// purchase already committed, so a publish failure is logged and swallowed.
func (s *purchaseService) publishPurchaseCompleted(ctx context.Context, transaction *entity.Transaction, game *entity.Game) {
	event := &service.PurchaseCompletedEvent{
		TransactionID:   transaction.ID,
		UserID:          transaction.UserID,
		GameID:          transaction.GameID,
		GameTitle:       game.Title,
		PricePaid:       transaction.PricePaid,
		DiscountPercent: transaction.DiscountPercent,
		PurchasedAt:     transaction.PurchaseDate,
	}

	if err := s.publisher.PublishPurchaseCompleted(ctx, event); err != nil {
		s.logger.Warn("failed to publish purchase completed event",
			slog.Int64("transaction_id", transaction.ID),
			slog.Any("error", err),
		)
	}
}
