package impl

import (
	"context"
	"strings"

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

var oneHundred = decimal.NewFromInt(100)

type discountService struct {
	discountRepo repository.DiscountRepository
	gameRepo     repository.GameRepository
	clock        service.Clock
}

// DiscountServiceParams holds dependencies for DiscountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	DiscountRepo repository.DiscountRepository
	GameRepo     repository.GameRepository
	Clock        service.Clock
}

// NewDiscountService creates a new discount service instance.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		discountRepo: params.DiscountRepo,
		gameRepo:     params.GameRepo,
		clock:        params.Clock,
	}
}

// ResolveDiscount returns the discount active for (code, game) now, or nil.
//
// A blank code short-circuits without querying storage. Matching is exact and
// case-sensitive on the discount name; the window bounds are inclusive; the
// discount must be associated with the game. When several discounts match,
// the repository returns the lowest identity. A miss is a normal outcome.
func (s *discountService) ResolveDiscount(ctx context.Context, code string, gameID int64) (*entity.Discount, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	discount, err := s.discountRepo.FindActiveByCodeAndGame(ctx, code, gameID, s.clock.Now())
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve discount")
	}

	return discount, nil
}

// Quote computes a read-only checkout preview.
func (s *discountService) Quote(ctx context.Context, gameID int64, discountCode string) (*usecase.CheckoutQuote, error) {
	game, err := s.gameRepo.FindGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game")
	}

	percent := decimal.Zero
	matchedCode := ""
	discount, err := s.ResolveDiscount(ctx, discountCode, game.ID)
	if err != nil {
		return nil, err
	}
	if discount != nil {
		percent = discount.Percent
		matchedCode = discount.Name
	}

	priced := pricing.Compute(game.Price, percent)

	return &usecase.CheckoutQuote{
		GameID:          game.ID,
		GameTitle:       game.Title,
		OriginalPrice:   game.Price,
		DiscountCode:    matchedCode,
		DiscountPercent: percent,
		DiscountAmount:  priced.DiscountAmount,
		FinalPrice:      priced.FinalPrice,
	}, nil
}

// CreateDiscount persists a new discount with its game associations.
func (s *discountService) CreateDiscount(ctx context.Context, input usecase.CreateDiscountInput) (*entity.Discount, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discount name is required")
	}
	if input.Percent.IsNegative() || input.Percent.GreaterThan(oneHundred) {
		return nil, domainerrors.ErrInvalidDiscountPercent
	}

	discount := &entity.Discount{
		Name:      name,
		Percent:   input.Percent,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		GameIDs:   input.GameIDs,
	}

	if err := s.discountRepo.CreateDiscount(ctx, discount); err != nil {
		if errors.Is(err, repository.ErrDuplicateDiscountName) {
			return nil, domainerrors.ErrDiscountNameTaken
		}

		return nil, errors.Wrap(err, "failed to create discount")
	}

	return discount, nil
}

// GetDiscount retrieves a discount by identity.
func (s *discountService) GetDiscount(ctx context.Context, id int64) (*entity.Discount, error) {
	discount, err := s.discountRepo.FindDiscountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	return discount, nil
}

// ListDiscounts retrieves all discounts.
func (s *discountService) ListDiscounts(ctx context.Context) ([]*entity.Discount, error) {
	discounts, err := s.discountRepo.ListDiscounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discounts")
	}

	return discounts, nil
}
