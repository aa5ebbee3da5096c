package usecase

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CheckoutQuote is a read-only price preview for a game with an optional
// discount code applied. Nothing is written.
type CheckoutQuote struct {
	GameID          int64           `json:"game_id"`
	GameTitle       string          `json:"game_title"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountCode    string          `json:"discount_code,omitempty"` // The code that matched, empty when none.
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalPrice      decimal.Decimal `json:"final_price"`
}

// CreateDiscountInput carries the fields for creating a discount.
type CreateDiscountInput struct {
	Name      string          // Display name and redemption code.
	Percent   decimal.Decimal // 0-100.
	StartDate *time.Time
	EndDate   *time.Time
	GameIDs   []int64 // Games the discount applies to.
}

// DiscountUsecase covers discount resolution and the minimal administration
// needed for discounts to exist.
type DiscountUsecase interface {
	// ResolveDiscount returns the single discount active for (code, game) at
	// the current time, or nil when none matches. A blank or whitespace code
	// short-circuits to nil without touching storage. An unmatched code is a
	// normal "no discount" outcome, not an error.
	ResolveDiscount(ctx context.Context, code string, gameID int64) (*entity.Discount, error)

	// Quote computes a checkout preview for the game with the optional code.
	Quote(ctx context.Context, gameID int64, discountCode string) (*CheckoutQuote, error)

	// CreateDiscount persists a new discount with its game associations.
	CreateDiscount(ctx context.Context, input CreateDiscountInput) (*entity.Discount, error)

	// GetDiscount retrieves a discount by identity.
	GetDiscount(ctx context.Context, id int64) (*entity.Discount, error)

	// ListDiscounts retrieves all discounts.
	ListDiscounts(ctx context.Context) ([]*entity.Discount, error)
}
