// Package pricing implements the pure price computation used at checkout.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Quote is the outcome of applying a percentage discount to a base price.
type Quote struct {
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
}

// Compute applies percent to basePrice.
//
// percent is clamped to a minimum of zero so malformed data can never raise
// the price. Rounding is half-up (away from zero) to 2 decimal places and is
// used consistently for both the discount amount and the final price. The
// final price is floored at zero so a >100% discount yields a free purchase,
// never a negative charge.
func Compute(basePrice, percent decimal.Decimal) Quote {
	if percent.IsNegative() {
		percent = decimal.Zero
	}

	discountAmount := basePrice.Mul(percent).Div(hundred).Round(2)
	finalPrice := basePrice.Sub(discountAmount).Round(2)
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}

	return Quote{
		DiscountAmount: discountAmount,
		FinalPrice:     finalPrice,
	}
}
