package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		basePrice      string
		percent        string
		wantDiscount   string
		wantFinalPrice string
	}{
		{name: "fifteen percent off 100", basePrice: "100.00", percent: "15", wantDiscount: "15.00", wantFinalPrice: "85.00"},
		{name: "no discount", basePrice: "100.00", percent: "0", wantDiscount: "0.00", wantFinalPrice: "100.00"},
		{name: "negative percent is clamped", basePrice: "100.00", percent: "-25", wantDiscount: "0.00", wantFinalPrice: "100.00"},
		{name: "over one hundred percent floors at zero", basePrice: "59.99", percent: "150", wantDiscount: "89.99", wantFinalPrice: "0.00"},
		{name: "full discount", basePrice: "19.99", percent: "100", wantDiscount: "19.99", wantFinalPrice: "0.00"},
		{name: "free game", basePrice: "0.00", percent: "50", wantDiscount: "0.00", wantFinalPrice: "0.00"},
		{name: "rounds half up", basePrice: "9.99", percent: "12.5", wantDiscount: "1.25", wantFinalPrice: "8.74"},
		{name: "fractional percent", basePrice: "49.99", percent: "33", wantDiscount: "16.50", wantFinalPrice: "33.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := Compute(dec(tt.basePrice), dec(tt.percent))

			assert.True(t, dec(tt.wantDiscount).Equal(quote.DiscountAmount),
				"discount amount: want %s, got %s", tt.wantDiscount, quote.DiscountAmount)
			assert.True(t, dec(tt.wantFinalPrice).Equal(quote.FinalPrice),
				"final price: want %s, got %s", tt.wantFinalPrice, quote.FinalPrice)
		})
	}
}

func TestCompute_FinalPriceNeverExceedsBase(t *testing.T) {
	prices := []string{"0", "0.01", "9.99", "100.00", "1999.99"}
	percents := []string{"0", "0.5", "10", "50", "99.9", "100"}

	for _, p := range prices {
		for _, d := range percents {
			quote := Compute(dec(p), dec(d))

			require.False(t, quote.FinalPrice.IsNegative(),
				"price %s percent %s produced negative final price", p, d)
			require.True(t, quote.FinalPrice.LessThanOrEqual(dec(p)),
				"price %s percent %s produced final price above base", p, d)
		}
	}
}
