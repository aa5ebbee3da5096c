package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	mockRepo "gamehub/internal/mocks/repository"
	"gamehub/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const executeFnType = "func(repository.RepositoryFactory) error"

// expectTransaction wires the mock transaction manager to run the purchase
// callback against transaction-scoped repository mocks, the way the real
// manager hands out repositories bound to one database transaction.
func expectTransaction(t *testing.T, mocks *purchaseMocks, ctx context.Context) (*mockRepo.MockTransactionRepository, *mockRepo.MockLibraryRepository) {
	t.Helper()

	txTxnRepo := mockRepo.NewMockTransactionRepository(t)
	txLibraryRepo := mockRepo.NewMockLibraryRepository(t)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(executeFnType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewTransactionRepository().Return(txTxnRepo)
			factory.EXPECT().NewLibraryRepository().Return(txLibraryRepo)

			return fn(factory)
		})

	return txTxnRepo, txLibraryRepo
}

func requireAppError(t *testing.T, err error, errorCode string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorCode, appErr.ErrorCode())
}

func TestPurchaseService_Purchase_FullPrice(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "59.99")
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, txLibraryRepo := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, transaction *entity.Transaction) {
			transaction.ID = 500
		}).
		Return(nil)
	mocks.codeGen.EXPECT().Generate(ctx, mock.Anything).Return("A1B2C3D4E5F60718", nil)
	txLibraryRepo.EXPECT().
		FindEntryByUserAndGame(ctx, user.ID, game.ID).
		Return(nil, repository.ErrLibraryEntryNotFound)
	txLibraryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).
		Run(func(_ context.Context, entry *entity.LibraryEntry) {
			require.Equal(t, entity.LibraryStatusOwned, entry.Status())
			require.NotNil(t, entry.ActivationCode)
			assert.Equal(t, "A1B2C3D4E5F60718", *entry.ActivationCode)
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishPurchaseCompleted(ctx, mock.AnythingOfType("*service.PurchaseCompletedEvent")).
		Return(nil)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	require.NoError(t, err)
	assert.Equal(t, int64(500), receipt.TransactionID)
	assert.Equal(t, game.Title, receipt.GameTitle)
	assert.True(t, receipt.OriginalPrice.Equal(decimal.RequireFromString("59.99")))
	assert.True(t, receipt.DiscountPercent.IsZero())
	assert.True(t, receipt.DiscountAmount.IsZero())
	assert.True(t, receipt.FinalPrice.Equal(decimal.RequireFromString("59.99")))
	assert.Equal(t, "A1B2C3D4E5F60718", receipt.ActivationCode)
	assert.Equal(t, now, receipt.PurchasedAt)
}

func TestPurchaseService_Purchase_WithDiscount(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "100.00")
	discount := testDiscount(3, "SUMMER15", "15", game.ID)
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "SUMMER15", game.ID).Return(discount, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, txLibraryRepo := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, transaction *entity.Transaction) {
			transaction.ID = 501
			assert.True(t, transaction.PricePaid.Equal(decimal.RequireFromString("85.00")))
			assert.True(t, transaction.DiscountPercent.Equal(decimal.RequireFromString("15")))
			assert.Equal(t, entity.DefaultPaymentMethod, transaction.PaymentMethod)
		}).
		Return(nil)
	mocks.codeGen.EXPECT().Generate(ctx, mock.Anything).Return("FFFFFFFF00000000", nil)
	txLibraryRepo.EXPECT().
		FindEntryByUserAndGame(ctx, user.ID, game.ID).
		Return(nil, repository.ErrLibraryEntryNotFound)
	txLibraryRepo.EXPECT().CreateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).Return(nil)
	mocks.publisher.EXPECT().
		PublishPurchaseCompleted(ctx, mock.AnythingOfType("*service.PurchaseCompletedEvent")).
		Return(nil)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{
		UserID:       user.ID,
		GameID:       game.ID,
		DiscountCode: "SUMMER15",
	})

	require.NoError(t, err)
	assert.True(t, receipt.DiscountAmount.Equal(decimal.RequireFromString("15.00")))
	assert.True(t, receipt.FinalPrice.Equal(decimal.RequireFromString("85.00")))
}

func TestPurchaseService_Purchase_WishlistedFlipsToOwned(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "20.00")
	now := fixedTime()
	wishlisted := entity.NewWishlistEntry(user.ID, game.ID)
	wishlisted.ID = 77

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, txLibraryRepo := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	mocks.codeGen.EXPECT().Generate(ctx, mock.Anything).Return("0123456789ABCDEF", nil)
	txLibraryRepo.EXPECT().FindEntryByUserAndGame(ctx, user.ID, game.ID).Return(wishlisted, nil)
	// The wishlisted row is updated in place; no second row appears.
	txLibraryRepo.EXPECT().
		UpdateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).
		Run(func(_ context.Context, entry *entity.LibraryEntry) {
			assert.Equal(t, int64(77), entry.ID)
			assert.Equal(t, entity.LibraryStatusOwned, entry.Status())
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishPurchaseCompleted(ctx, mock.AnythingOfType("*service.PurchaseCompletedEvent")).
		Return(nil)

	_, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	require.NoError(t, err)
}

func TestPurchaseService_Purchase_UnknownUser(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	mocks.userRepo.EXPECT().FindUserByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: 99, GameID: 10})

	assert.Nil(t, receipt)
	requireAppError(t, err, "INVALID_REFERENCE")
}

func TestPurchaseService_Purchase_UnknownGame(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, int64(404)).Return(nil, repository.ErrGameNotFound)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: 404})

	assert.Nil(t, receipt)
	requireAppError(t, err, "INVALID_REFERENCE")
}

func TestPurchaseService_Purchase_AlreadyOwnedPreCheck(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "10.00")

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(true, nil)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	assert.Nil(t, receipt)
	requireAppError(t, err, "ALREADY_OWNED")
}

func TestPurchaseService_Purchase_AlreadyOwnedInsideTransaction(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "10.00")
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	// A concurrent purchase committed between the pre-check and the
	// transaction snapshot. The re-check catches it.
	txTxnRepo := mockRepo.NewMockTransactionRepository(t)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(executeFnType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewTransactionRepository().Return(txTxnRepo)
			factory.EXPECT().NewLibraryRepository().Return(mockRepo.NewMockLibraryRepository(t))

			return fn(factory)
		})
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(true, nil)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	assert.Nil(t, receipt)
	requireAppError(t, err, "ALREADY_OWNED")
}

func TestPurchaseService_Purchase_CodeSpaceExhausted(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "10.00")
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, _ := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	mocks.codeGen.EXPECT().
		Generate(ctx, mock.Anything).
		Return("", service.ErrActivationCodeSpaceExhausted)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	assert.Nil(t, receipt)
	requireAppError(t, err, "CODE_SPACE_EXHAUSTED")
}

func TestPurchaseService_Purchase_TransactionFailureRollsUp(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "10.00")
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, _ := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Return(assert.AnError)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	assert.Nil(t, receipt)
	requireAppError(t, err, "PERSISTENCE_FAILURE")
}

func TestPurchaseService_Purchase_PublishFailureDoesNotFailPurchase(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "10.00")
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, txLibraryRepo := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	mocks.codeGen.EXPECT().Generate(ctx, mock.Anything).Return("0123456789ABCDEF", nil)
	txLibraryRepo.EXPECT().
		FindEntryByUserAndGame(ctx, user.ID, game.ID).
		Return(nil, repository.ErrLibraryEntryNotFound)
	txLibraryRepo.EXPECT().CreateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).Return(nil)
	mocks.publisher.EXPECT().
		PublishPurchaseCompleted(ctx, mock.AnythingOfType("*service.PurchaseCompletedEvent")).
		Return(assert.AnError)

	receipt, err := svc.Purchase(ctx, usecase.PurchaseInput{UserID: user.ID, GameID: game.ID})

	require.NoError(t, err)
	require.NotNil(t, receipt)
}

func TestPurchaseService_Purchase_CustomPaymentMethod(t *testing.T) {
	svc, mocks := newPurchaseService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "10.00")
	now := fixedTime()

	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	mocks.txnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	mocks.discountUC.EXPECT().ResolveDiscount(ctx, "", game.ID).Return(nil, nil)
	mocks.clock.EXPECT().Now().Return(now)

	txTxnRepo, txLibraryRepo := expectTransaction(t, mocks, ctx)
	txTxnRepo.EXPECT().ExistsForUserAndGame(ctx, user.ID, game.ID).Return(false, nil)
	txTxnRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, transaction *entity.Transaction) {
			assert.Equal(t, "PayPal", transaction.PaymentMethod)
		}).
		Return(nil)
	mocks.codeGen.EXPECT().Generate(ctx, mock.Anything).Return("0123456789ABCDEF", nil)
	txLibraryRepo.EXPECT().
		FindEntryByUserAndGame(ctx, user.ID, game.ID).
		Return(nil, repository.ErrLibraryEntryNotFound)
	txLibraryRepo.EXPECT().CreateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).Return(nil)
	mocks.publisher.EXPECT().
		PublishPurchaseCompleted(ctx, mock.AnythingOfType("*service.PurchaseCompletedEvent")).
		Return(nil)

	_, err := svc.Purchase(ctx, usecase.PurchaseInput{
		UserID:        user.ID,
		GameID:        game.ID,
		PaymentMethod: "PayPal",
	})

	require.NoError(t, err)
}
