package postgres

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// FindActiveByCodeAndGame retrieves the discount whose name equals code,
// whose window contains at, and which is associated with the game. Name
// matching is exact and case-sensitive; the window bounds are inclusive and a
// missing bound is unbounded. The lowest ID wins when several match.
func (repo *discountRepository) FindActiveByCodeAndGame(ctx context.Context, code string, gameID int64, at time.Time) (*entity.Discount, error) {
	var discountM model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Games").
		Joins("JOIN discount_games ON discount_games.discount_model_id = discounts.id").
		Where("discount_games.game_model_id = ?", gameID).
		Where("discounts.name = ?", code).
		Where("discounts.start_date IS NULL OR discounts.start_date <= ?", at).
		Where("discounts.end_date IS NULL OR discounts.end_date >= ?", at).
		Order("discounts.id ASC").
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find active discount by code and game")
	}

	return toDiscountDomain(&discountM), nil
}

// ListActiveAt retrieves all discounts whose window contains at.
func (repo *discountRepository) ListActiveAt(ctx context.Context, at time.Time) ([]*entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Games").
		Where("start_date IS NULL OR start_date <= ?", at).
		Where("end_date IS NULL OR end_date >= ?", at).
		Order("id ASC").
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active discounts")
	}

	return toDiscountDomainSlice(discountModels), nil
}

// CreateDiscount persists a new discount and its game associations.
func (repo *discountRepository) CreateDiscount(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)

	// Omit the association upsert; only the join rows are written, so a
	// bogus game ID fails on the join table's foreign key.
	if err := repo.db.WithContext(ctx).
		Omit("Games.*").
		Create(discountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDiscountName
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("unknown game in discount associations")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	discount.ID = discountM.ID

	return nil
}

// FindDiscountByID retrieves a discount and its game associations.
func (repo *discountRepository) FindDiscountByID(ctx context.Context, id int64) (*entity.Discount, error) {
	var discountM model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Games").
		Where("id = ?", id).
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount by ID")
	}

	return toDiscountDomain(&discountM), nil
}

// ListDiscounts retrieves all discounts ordered by identity.
func (repo *discountRepository) ListDiscounts(ctx context.Context) ([]*entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Games").
		Order("id ASC").
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list discounts")
	}

	return toDiscountDomainSlice(discountModels), nil
}

// toDiscountDomain converts a persistence model to a domain entity.
func toDiscountDomain(discountM *model.DiscountModel) *entity.Discount {
	gameIDs := make([]int64, 0, len(discountM.Games))
	for _, gameM := range discountM.Games {
		gameIDs = append(gameIDs, gameM.ID)
	}

	return &entity.Discount{
		ID:        discountM.ID,
		Name:      discountM.Name,
		Percent:   discountM.Percent,
		StartDate: discountM.StartDate,
		EndDate:   discountM.EndDate,
		GameIDs:   gameIDs,
	}
}

func toDiscountDomainSlice(discountModels []*model.DiscountModel) []*entity.Discount {
	discounts := make([]*entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts
}

// fromDiscountDomain converts a domain entity to a persistence model.
func fromDiscountDomain(discount *entity.Discount) *model.DiscountModel {
	games := make([]model.GameModel, 0, len(discount.GameIDs))
	for _, gameID := range discount.GameIDs {
		games = append(games, model.GameModel{ID: gameID})
	}

	return &model.DiscountModel{
		ID:        discount.ID,
		Name:      discount.Name,
		Percent:   discount.Percent,
		StartDate: discount.StartDate,
		EndDate:   discount.EndDate,
		Games:     games,
	}
}
