package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"
	mockRepo "gamehub/internal/mocks/repository"
	mockSvc "gamehub/internal/mocks/service"
	"gamehub/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscountService(t *testing.T) (usecase.DiscountUsecase, *mockRepo.MockDiscountRepository, *mockRepo.MockGameRepository, *mockSvc.MockClock) {
	t.Helper()

	discountRepo := mockRepo.NewMockDiscountRepository(t)
	gameRepo := mockRepo.NewMockGameRepository(t)
	clock := mockSvc.NewMockClock(t)

	svc := NewDiscountService(DiscountServiceParams{
		DiscountRepo: discountRepo,
		GameRepo:     gameRepo,
		Clock:        clock,
	})

	return svc, discountRepo, gameRepo, clock
}

func TestDiscountService_ResolveDiscount_BlankCodeSkipsStorage(t *testing.T) {
	svc, _, _, _ := newDiscountService(t)

	for _, code := range []string{"", "   ", "\t"} {
		discount, err := svc.ResolveDiscount(context.Background(), code, 10)

		require.NoError(t, err)
		assert.Nil(t, discount)
	}
}

func TestDiscountService_ResolveDiscount_TrimsCode(t *testing.T) {
	svc, discountRepo, _, clock := newDiscountService(t)

	ctx := context.Background()
	now := fixedTime()
	discount := testDiscount(3, "SUMMER15", "15", 10)

	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().FindActiveByCodeAndGame(ctx, "SUMMER15", int64(10), now).Return(discount, nil)

	resolved, err := svc.ResolveDiscount(ctx, "  SUMMER15  ", 10)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, int64(3), resolved.ID)
}

func TestDiscountService_ResolveDiscount_MissIsNotAnError(t *testing.T) {
	svc, discountRepo, _, clock := newDiscountService(t)

	ctx := context.Background()
	now := fixedTime()

	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().
		FindActiveByCodeAndGame(ctx, "NOPE", int64(10), now).
		Return(nil, repository.ErrDiscountNotFound)

	resolved, err := svc.ResolveDiscount(ctx, "NOPE", 10)

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestDiscountService_ResolveDiscount_StorageErrorPropagates(t *testing.T) {
	svc, discountRepo, _, clock := newDiscountService(t)

	ctx := context.Background()
	now := fixedTime()

	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().
		FindActiveByCodeAndGame(ctx, "SUMMER15", int64(10), now).
		Return(nil, assert.AnError)

	resolved, err := svc.ResolveDiscount(ctx, "SUMMER15", 10)

	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resolved)
}

func TestDiscountService_Quote_WithDiscount(t *testing.T) {
	svc, discountRepo, gameRepo, clock := newDiscountService(t)

	ctx := context.Background()
	now := fixedTime()
	game := testGame(10, "100.00")
	discount := testDiscount(3, "SUMMER15", "15", 10)

	gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().FindActiveByCodeAndGame(ctx, "SUMMER15", game.ID, now).Return(discount, nil)

	quote, err := svc.Quote(ctx, game.ID, "SUMMER15")

	require.NoError(t, err)
	assert.Equal(t, "SUMMER15", quote.DiscountCode)
	assert.True(t, quote.DiscountAmount.Equal(decimal.RequireFromString("15.00")))
	assert.True(t, quote.FinalPrice.Equal(decimal.RequireFromString("85.00")))
}

func TestDiscountService_Quote_NoCodeIsFullPrice(t *testing.T) {
	svc, _, gameRepo, _ := newDiscountService(t)

	ctx := context.Background()
	game := testGame(10, "59.99")

	gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)

	quote, err := svc.Quote(ctx, game.ID, "")

	require.NoError(t, err)
	assert.Empty(t, quote.DiscountCode)
	assert.True(t, quote.DiscountPercent.IsZero())
	assert.True(t, quote.FinalPrice.Equal(game.Price))
}

func TestDiscountService_Quote_UnknownGame(t *testing.T) {
	svc, _, gameRepo, _ := newDiscountService(t)

	ctx := context.Background()
	gameRepo.EXPECT().FindGameByID(ctx, int64(404)).Return(nil, repository.ErrGameNotFound)

	quote, err := svc.Quote(ctx, 404, "")

	assert.Nil(t, quote)
	requireAppError(t, err, "GAME_NOT_FOUND")
}

func TestDiscountService_CreateDiscount_Success(t *testing.T) {
	svc, discountRepo, _, _ := newDiscountService(t)

	ctx := context.Background()
	discountRepo.EXPECT().
		CreateDiscount(ctx, mock.AnythingOfType("*entity.Discount")).
		Run(func(_ context.Context, discount *entity.Discount) {
			discount.ID = 42
			assert.Equal(t, "SUMMER15", discount.Name)
		}).
		Return(nil)

	created, err := svc.CreateDiscount(ctx, usecase.CreateDiscountInput{
		Name:    "  SUMMER15  ",
		Percent: decimal.RequireFromString("15"),
		GameIDs: []int64{10, 11},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestDiscountService_CreateDiscount_RequiresName(t *testing.T) {
	svc, _, _, _ := newDiscountService(t)

	created, err := svc.CreateDiscount(context.Background(), usecase.CreateDiscountInput{
		Name:    "   ",
		Percent: decimal.RequireFromString("15"),
	})

	assert.Nil(t, created)
	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestDiscountService_CreateDiscount_PercentBounds(t *testing.T) {
	svc, _, _, _ := newDiscountService(t)

	for _, percent := range []string{"-1", "100.01"} {
		created, err := svc.CreateDiscount(context.Background(), usecase.CreateDiscountInput{
			Name:    "SALE",
			Percent: decimal.RequireFromString(percent),
		})

		assert.Nil(t, created)
		requireAppError(t, err, "INVALID_DISCOUNT_PERCENT")
	}
}

func TestDiscountService_CreateDiscount_DuplicateName(t *testing.T) {
	svc, discountRepo, _, _ := newDiscountService(t)

	ctx := context.Background()
	discountRepo.EXPECT().
		CreateDiscount(ctx, mock.AnythingOfType("*entity.Discount")).
		Return(repository.ErrDuplicateDiscountName)

	created, err := svc.CreateDiscount(ctx, usecase.CreateDiscountInput{
		Name:    "SUMMER15",
		Percent: decimal.RequireFromString("15"),
	})

	assert.Nil(t, created)
	requireAppError(t, err, "DISCOUNT_NAME_TAKEN")
}

func TestDiscountService_GetDiscount_NotFound(t *testing.T) {
	svc, discountRepo, _, _ := newDiscountService(t)

	ctx := context.Background()
	discountRepo.EXPECT().FindDiscountByID(ctx, int64(404)).Return(nil, repository.ErrDiscountNotFound)

	discount, err := svc.GetDiscount(ctx, 404)

	assert.Nil(t, discount)
	requireAppError(t, err, "DISCOUNT_NOT_FOUND")
}
