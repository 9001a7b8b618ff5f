package pricing

import "github.com/shopspring/decimal"

// DefaultTaxRate is the storefront's flat sales tax.
var DefaultTaxRate = decimal.New(8, -2) // 8%

// Quote is the priced view of a cart. All fields are full-precision;
// rounding to cents happens only when a value is formatted for display.
type Quote struct {
	Subtotal           decimal.Decimal
	Discount           decimal.Decimal
	DiscountedSubtotal decimal.Decimal
	Tax                decimal.Decimal
	Total              decimal.Decimal
}

// Engine computes quotes for a fixed tax rate.
type Engine struct {
	taxRate decimal.Decimal
}

func NewEngine(taxRate decimal.Decimal) *Engine {
	return &Engine{taxRate: taxRate}
}

func (e *Engine) TaxRate() decimal.Decimal {
	return e.taxRate
}

// Quote prices a subtotal with the given discount amount. The discount is
// clamped so the discounted subtotal never goes negative; tax applies after
// the discount.
func (e *Engine) Quote(subtotal, discount decimal.Decimal) Quote {
	discounted := subtotal.Sub(discount)
	if discounted.IsNegative() {
		discounted = decimal.Zero
	}
	tax := discounted.Mul(e.taxRate)
	return Quote{
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountedSubtotal: discounted,
		Tax:                tax,
		Total:              discounted.Add(tax),
	}
}
