package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/repository"
	mockRepo "gamehub/internal/mocks/repository"
	"gamehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLibraryService(t *testing.T) (usecase.LibraryUsecase, *mockRepo.MockLibraryRepository, *mockRepo.MockGameRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	libraryRepo := mockRepo.NewMockLibraryRepository(t)
	gameRepo := mockRepo.NewMockGameRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewLibraryService(LibraryServiceParams{
		LibraryRepo: libraryRepo,
		GameRepo:    gameRepo,
		UserRepo:    userRepo,
	})

	return svc, libraryRepo, gameRepo, userRepo
}

func TestLibraryService_StatusOf(t *testing.T) {
	ctx := context.Background()
	now := fixedTime()
	code := "0123456789ABCDEF"

	tests := []struct {
		name  string
		entry *entity.LibraryEntry
		err   error
		want  entity.LibraryStatus
	}{
		{
			name: "no entry means none",
			err:  repository.ErrLibraryEntryNotFound,
			want: entity.LibraryStatusNone,
		},
		{
			name:  "wishlisted entry",
			entry: entity.NewWishlistEntry(1, 10),
			want:  entity.LibraryStatusWishlisted,
		},
		{
			name:  "owned entry",
			entry: &entity.LibraryEntry{UserID: 1, GameID: 10, PurchaseDate: &now, ActivationCode: &code},
			want:  entity.LibraryStatusOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, libraryRepo, _, _ := newLibraryService(t)
			libraryRepo.EXPECT().FindEntryByUserAndGame(ctx, int64(1), int64(10)).Return(tt.entry, tt.err)

			status, err := svc.StatusOf(ctx, 1, 10)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestLibraryService_AddToWishlist_Success(t *testing.T) {
	svc, libraryRepo, gameRepo, userRepo := newLibraryService(t)

	ctx := context.Background()
	user := testUser(1)
	game := testGame(10, "20.00")

	userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	gameRepo.EXPECT().FindGameByID(ctx, game.ID).Return(game, nil)
	libraryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).
		Run(func(_ context.Context, entry *entity.LibraryEntry) {
			entry.ID = 7
			assert.Equal(t, entity.LibraryStatusWishlisted, entry.Status())
		}).
		Return(nil)

	entry, err := svc.AddToWishlist(ctx, user.ID, game.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
}

func TestLibraryService_AddToWishlist_UnknownReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _, userRepo := newLibraryService(t)
		userRepo.EXPECT().FindUserByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

		entry, err := svc.AddToWishlist(ctx, 99, 10)

		assert.Nil(t, entry)
		requireAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("unknown game", func(t *testing.T) {
		svc, _, gameRepo, userRepo := newLibraryService(t)
		userRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(testUser(1), nil)
		gameRepo.EXPECT().FindGameByID(ctx, int64(404)).Return(nil, repository.ErrGameNotFound)

		entry, err := svc.AddToWishlist(ctx, 1, 404)

		assert.Nil(t, entry)
		requireAppError(t, err, "GAME_NOT_FOUND")
	})
}

func TestLibraryService_AddToWishlist_Duplicate(t *testing.T) {
	svc, libraryRepo, gameRepo, userRepo := newLibraryService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(testUser(1), nil)
	gameRepo.EXPECT().FindGameByID(ctx, int64(10)).Return(testGame(10, "20.00"), nil)
	libraryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.LibraryEntry")).
		Return(repository.ErrDuplicateLibraryEntry)

	entry, err := svc.AddToWishlist(ctx, 1, 10)

	assert.Nil(t, entry)
	requireAppError(t, err, "ALREADY_IN_LIBRARY")
}

func TestLibraryService_RemoveFromWishlist_Success(t *testing.T) {
	svc, libraryRepo, _, _ := newLibraryService(t)

	ctx := context.Background()
	entry := entity.NewWishlistEntry(1, 10)
	entry.ID = 7

	libraryRepo.EXPECT().FindEntryByID(ctx, entry.ID).Return(entry, nil)
	libraryRepo.EXPECT().DeleteEntry(ctx, entry.ID).Return(nil)

	err := svc.RemoveFromWishlist(ctx, 1, entry.ID)

	require.NoError(t, err)
}

func TestLibraryService_RemoveFromWishlist_WrongUser(t *testing.T) {
	svc, libraryRepo, _, _ := newLibraryService(t)

	ctx := context.Background()
	entry := entity.NewWishlistEntry(2, 10)
	entry.ID = 7

	libraryRepo.EXPECT().FindEntryByID(ctx, entry.ID).Return(entry, nil)

	err := svc.RemoveFromWishlist(ctx, 1, entry.ID)

	requireAppError(t, err, "LIBRARY_OWNERSHIP_VIOLATION")
}

func TestLibraryService_RemoveFromWishlist_OwnedIsTerminal(t *testing.T) {
	svc, libraryRepo, _, _ := newLibraryService(t)

	ctx := context.Background()
	now := fixedTime()
	code := "0123456789ABCDEF"
	entry := &entity.LibraryEntry{ID: 7, UserID: 1, GameID: 10, PurchaseDate: &now, ActivationCode: &code}

	libraryRepo.EXPECT().FindEntryByID(ctx, entry.ID).Return(entry, nil)

	err := svc.RemoveFromWishlist(ctx, 1, entry.ID)

	requireAppError(t, err, "CANNOT_REMOVE_OWNED")
}

func TestLibraryService_RemoveFromWishlist_NotFound(t *testing.T) {
	svc, libraryRepo, _, _ := newLibraryService(t)

	ctx := context.Background()
	libraryRepo.EXPECT().FindEntryByID(ctx, int64(404)).Return(nil, repository.ErrLibraryEntryNotFound)

	err := svc.RemoveFromWishlist(ctx, 1, 404)

	requireAppError(t, err, "LIBRARY_ENTRY_NOT_FOUND")
}

func TestLibraryService_ListLibrary(t *testing.T) {
	svc, libraryRepo, _, _ := newLibraryService(t)

	ctx := context.Background()
	entries := []*entity.LibraryEntry{
		entity.NewWishlistEntry(1, 10),
		entity.NewWishlistEntry(1, 11),
	}

	libraryRepo.EXPECT().ListEntriesByUser(ctx, int64(1)).Return(entries, nil)

	got, err := svc.ListLibrary(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
