package repository

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"
)

// Domain-specific errors for discount persistence.
var (
	// ErrDiscountNotFound is returned when a discount is not found.
	ErrDiscountNotFound = errors.New("discount not found")
	// ErrDuplicateDiscountName is returned when a discount name is already taken.
	ErrDuplicateDiscountName = errors.New("discount name already exists")
)

// DiscountRepository defines discount-related database operations.
type DiscountRepository interface {
	// FindActiveByCodeAndGame retrieves the discount whose name equals code
	// (exact, case-sensitive), whose window contains at (inclusive bounds,
	// missing bound unbounded), and which is associated with gameID. When
	// several discounts match, the one with the lowest identity wins.
	FindActiveByCodeAndGame(ctx context.Context, code string, gameID int64, at time.Time) (*entity.Discount, error)

	// ListActiveAt retrieves all discounts whose window contains at, with
	// their associated game sets loaded.
	ListActiveAt(ctx context.Context, at time.Time) ([]*entity.Discount, error)

	// CreateDiscount persists a new discount and its game associations.
	CreateDiscount(ctx context.Context, discount *entity.Discount) error

	// FindDiscountByID retrieves a discount and its game associations.
	FindDiscountByID(ctx context.Context, id int64) (*entity.Discount, error)

	// ListDiscounts retrieves all discounts ordered by identity.
	ListDiscounts(ctx context.Context) ([]*entity.Discount, error)
}
