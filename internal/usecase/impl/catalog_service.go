package impl

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"
	"gamehub/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type catalogService struct {
	gameRepo     repository.GameRepository
	libraryRepo  repository.LibraryRepository
	discountRepo repository.DiscountRepository
	clock        service.Clock
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	GameRepo     repository.GameRepository
	LibraryRepo  repository.LibraryRepository
	DiscountRepo repository.DiscountRepository
	Clock        service.Clock
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		gameRepo:     params.GameRepo,
		libraryRepo:  params.LibraryRepo,
		discountRepo: params.DiscountRepo,
		clock:        params.Clock,
	}
}

// BrowseGames lists games matching the filter, annotated with the caller's
// library status and the best currently-active discount percent per game.
func (s *catalogService) BrowseGames(ctx context.Context, userID int64, filter repository.GameFilter) ([]*usecase.GameListing, error) {
	games, err := s.gameRepo.ListGames(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	statuses := map[int64]entity.LibraryStatus{}
	if userID > 0 {
		statuses, err = s.libraryRepo.StatusesByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load library statuses")
		}
	}

	bestDiscounts, err := s.bestActiveDiscounts(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]*usecase.GameListing, 0, len(games))
	for _, game := range games {
		status, ok := statuses[game.ID]
		if !ok {
			status = entity.LibraryStatusNone
		}

		percent, ok := bestDiscounts[game.ID]
		if !ok {
			percent = decimal.Zero
		}

		listings = append(listings, &usecase.GameListing{
			Game:                game,
			LibraryStatus:       status,
			BestDiscountPercent: percent,
		})
	}

	return listings, nil
}

// GetGame retrieves a single game by identity.
func (s *catalogService) GetGame(ctx context.Context, gameID int64) (*entity.Game, error) {
	game, err := s.gameRepo.FindGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game")
	}

	return game, nil
}

// bestActiveDiscounts maps game ID to the highest active discount percent.
func (s *catalogService) bestActiveDiscounts(ctx context.Context) (map[int64]decimal.Decimal, error) {
	discounts, err := s.discountRepo.ListActiveAt(ctx, s.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active discounts")
	}

	best := make(map[int64]decimal.Decimal, len(discounts))
	for _, discount := range discounts {
		for _, gameID := range discount.GameIDs {
			if current, ok := best[gameID]; !ok || current.LessThan(discount.Percent) {
				best[gameID] = discount.Percent
			}
		}
	}

	return best, nil
}
