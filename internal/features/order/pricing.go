package order

import "github.com/shopspring/decimal"

// Quote is the priced breakdown of a single line item: one catalog item times
// a quantity, plus the flat delivery fee. Values stay exact; rounding to two
// decimal places happens only when a display string is requested.
type Quote struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// NewQuote computes subtotal = unitPrice * quantity and
// total = subtotal + deliveryFee.
func NewQuote(unitPrice decimal.Decimal, quantity uint, deliveryFee decimal.Decimal) Quote {
	subtotal := unitPrice.Mul(
		decimal.NewFromInt(int64(quantity)),
	)

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(deliveryFee),
	}
}

// Summary renders the quote for display, rounded to 2 decimal places.
func (q Quote) Summary() PricingSummary {
	return PricingSummary{
		Subtotal:    q.Subtotal.StringFixed(2),
		DeliveryFee: q.DeliveryFee.StringFixed(2),
		Total:       q.Total.StringFixed(2),
	}
}

// ClampQuantity enforces the quantity >= 1 invariant. Decrementing below one
// clamps instead of failing validation.
func ClampQuantity(quantity int) uint {
	if quantity < 1 {
		return 1
	}

	return uint(quantity)
}
