// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInput carries the explicit parameters of a purchase request. There
// is no ambient "current user"; the caller passes the user identity.
type PurchaseInput struct {
	UserID        int64
	GameID        int64
	PaymentMethod string // Free-text label; defaults to entity.DefaultPaymentMethod when blank.
	DiscountCode  string // Optional; blank or unmatched degrades to full price.
}

// Receipt is the successful-purchase result.
type Receipt struct {
	TransactionID   int64           `json:"transaction_id"`
	UserID          int64           `json:"user_id"`
	GameID          int64           `json:"game_id"`
	GameTitle       string          `json:"game_title"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	ActivationCode  string          `json:"activation_code"`
	PurchasedAt     time.Time       `json:"purchased_at"`
}

// PurchaseUsecase is the purchase fulfillment engine's single entry point.
type PurchaseUsecase interface {
	// Purchase validates the references, resolves an optional discount,
	// computes the final price, and atomically records the transaction and
	// flips the library entry to owned, minting a unique activation code.
	// Failure kinds are the AppErrors in internal/domain/errors:
	// ErrInvalidReference, ErrAlreadyOwned, ErrPersistenceFailure,
	// ErrCodeSpaceExhausted.
	Purchase(ctx context.Context, input PurchaseInput) (*Receipt, error)
}
