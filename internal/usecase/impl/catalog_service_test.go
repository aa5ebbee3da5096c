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
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockGameRepository, *mockRepo.MockLibraryRepository, *mockRepo.MockDiscountRepository, *mockSvc.MockClock) {
	t.Helper()

	gameRepo := mockRepo.NewMockGameRepository(t)
	libraryRepo := mockRepo.NewMockLibraryRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	clock := mockSvc.NewMockClock(t)

	svc := NewCatalogService(CatalogServiceParams{
		GameRepo:     gameRepo,
		LibraryRepo:  libraryRepo,
		DiscountRepo: discountRepo,
		Clock:        clock,
	})

	return svc, gameRepo, libraryRepo, discountRepo, clock
}

func TestCatalogService_BrowseGames_AnnotatesStatusAndDiscount(t *testing.T) {
	svc, gameRepo, libraryRepo, discountRepo, clock := newCatalogService(t)

	ctx := context.Background()
	now := fixedTime()
	games := []*entity.Game{
		testGame(10, "100.00"),
		testGame(11, "20.00"),
		testGame(12, "5.00"),
	}

	gameRepo.EXPECT().ListGames(ctx, repository.GameFilter{}).Return(games, nil)
	libraryRepo.EXPECT().StatusesByUser(ctx, int64(1)).Return(map[int64]entity.LibraryStatus{
		10: entity.LibraryStatusOwned,
		11: entity.LibraryStatusWishlisted,
	}, nil)
	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().ListActiveAt(ctx, now).Return([]*entity.Discount{
		testDiscount(1, "SALE10", "10", 10),
		testDiscount(2, "SALE25", "25", 10, 12),
	}, nil)

	listings, err := svc.BrowseGames(ctx, 1, repository.GameFilter{})

	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, entity.LibraryStatusOwned, listings[0].LibraryStatus)
	// Highest active percent wins per game.
	assert.True(t, listings[0].BestDiscountPercent.Equal(decimal.RequireFromString("25")))

	assert.Equal(t, entity.LibraryStatusWishlisted, listings[1].LibraryStatus)
	assert.True(t, listings[1].BestDiscountPercent.IsZero())

	assert.Equal(t, entity.LibraryStatusNone, listings[2].LibraryStatus)
	assert.True(t, listings[2].BestDiscountPercent.Equal(decimal.RequireFromString("25")))
}

func TestCatalogService_BrowseGames_AnonymousSkipsLibraryLookup(t *testing.T) {
	svc, gameRepo, _, discountRepo, clock := newCatalogService(t)

	ctx := context.Background()
	now := fixedTime()

	gameRepo.EXPECT().ListGames(ctx, repository.GameFilter{}).Return([]*entity.Game{testGame(10, "10.00")}, nil)
	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().ListActiveAt(ctx, now).Return(nil, nil)

	listings, err := svc.BrowseGames(ctx, 0, repository.GameFilter{})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, entity.LibraryStatusNone, listings[0].LibraryStatus)
}

func TestCatalogService_BrowseGames_FilterPassesThrough(t *testing.T) {
	svc, gameRepo, _, discountRepo, clock := newCatalogService(t)

	ctx := context.Background()
	now := fixedTime()
	genreID := int64(3)
	filter := repository.GameFilter{SearchTerm: "hollow", GenreID: &genreID}

	gameRepo.EXPECT().ListGames(ctx, filter).Return(nil, nil)
	clock.EXPECT().Now().Return(now)
	discountRepo.EXPECT().ListActiveAt(ctx, now).Return(nil, nil)

	listings, err := svc.BrowseGames(ctx, 0, filter)

	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCatalogService_GetGame_NotFound(t *testing.T) {
	svc, gameRepo, _, _, _ := newCatalogService(t)

	ctx := context.Background()
	gameRepo.EXPECT().FindGameByID(ctx, int64(404)).Return(nil, repository.ErrGameNotFound)

	game, err := svc.GetGame(ctx, 404)

	assert.Nil(t, game)
	requireAppError(t, err, "GAME_NOT_FOUND")
}
