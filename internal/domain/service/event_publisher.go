package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseCompletedEvent is emitted after a purchase commits. Consumers
// (receipt mailers, analytics) act on it asynchronously; the activation code
// itself is not carried, only the transaction that references it.
type PurchaseCompletedEvent struct {
	RequestID       string          `json:"request_id,omitempty"` // For distributed tracing.
	TransactionID   int64           `json:"transaction_id"`
	UserID          int64           `json:"user_id"`
	GameID          int64           `json:"game_id"`
	GameTitle       string          `json:"game_title"`
	PricePaid       decimal.Decimal `json:"price_paid"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	PurchasedAt     time.Time       `json:"purchased_at"`
}

// EventPublisher defines the interface for publishing storefront events to a
// message queue. Publishing is best-effort: a failure is logged by the caller
// and never fails the purchase that produced the event.
type EventPublisher interface {
	// PublishPurchaseCompleted publishes a purchase-completed event for async processing.
	PublishPurchaseCompleted(ctx context.Context, event *PurchaseCompletedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
