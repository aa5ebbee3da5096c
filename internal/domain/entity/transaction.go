package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is recorded when the buyer does not supply a payment
// method label. The label is free text kept for record-keeping only; no
// payment gateway is involved.
const DefaultPaymentMethod = "Card"

// Transaction is a purchase record. Rows are created exactly once per
// successful purchase and never mutated afterward; the existence of a row for
// a (user, game) pair is the source of truth for "already purchased".
type Transaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	GameID          int64           `json:"game_id"`
	PurchaseDate    time.Time       `json:"purchase_date"` // UTC.
	PricePaid       decimal.Decimal `json:"price_paid"`
	DiscountPercent decimal.Decimal `json:"discount_percent"` // Zero when no discount applied.
	PaymentMethod   string          `json:"payment_method"`
}
